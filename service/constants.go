package service

const (
	CigarettesPerPack   = 20
	PacksPerCarton      = 10
	CigarettesPerCarton = CigarettesPerPack * PacksPerCarton // 200

	DaysPerWeek  = 7
	DaysPerMonth = 30 // custom periods only

	// Range of the derived value passed to the resolver
	MinCigarettesPerDay = 1
	MaxCigarettesPerDay = 200

	NicotineMgPerCigarette        = 1.5
	SupervisionThresholdPerDay    = 60
	lowestBucketOverrideThreshold = 10
)
