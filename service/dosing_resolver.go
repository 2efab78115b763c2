package service

import (
	"math"

	"nrt-dosing/domain"
)

// ResolveDosing selects the first bucket whose threshold is at or above
// cigarettesPerDay. Callers must pass a value of at least 1.
func ResolveDosing(cigarettesPerDay int) domain.DosingRecommendation {
	bucket := selectBucket(cigarettesPerDay)

	return domain.DosingRecommendation{
		CigarettesPerDay:          cigarettesPerDay,
		EstimatedNicotineNeedMg:   estimateNicotineNeedMg(cigarettesPerDay),
		PatchRecommendation:       bucket.PatchRecommendation,
		ShortActingRecommendation: bucket.ShortActingRecommendation,
		SupervisionRequired:       cigarettesPerDay >= SupervisionThresholdPerDay,
	}
}

func selectBucket(cigarettesPerDay int) domain.DosingBucket {
	selected := dosingTable[len(dosingTable)-1]
	for _, bucket := range dosingTable {
		if cigarettesPerDay <= bucket.ThresholdCigarettesPerDay {
			selected = bucket
			break
		}
	}
	if cigarettesPerDay < lowestBucketOverrideThreshold {
		selected = dosingTable[0]
	}
	return selected
}

// The bucket's own NicotineNeedMg is table reference data only.
func estimateNicotineNeedMg(cigarettesPerDay int) int {
	return int(math.Round(float64(cigarettesPerDay) * NicotineMgPerCigarette))
}
