package domain

type DosingBucket struct {
	ThresholdCigarettesPerDay int    `json:"threshold_cigarettes_per_day" msgpack:"threshold"`
	NicotineNeedMg            int    `json:"nicotine_need_mg" msgpack:"need_mg"`
	PatchRecommendation       string `json:"patch_recommendation" msgpack:"patches"`
	ShortActingRecommendation string `json:"short_acting_recommendation" msgpack:"short_acting"`
}

type DosingRecommendation struct {
	CigarettesPerDay          int    `json:"cigarettes_per_day" msgpack:"cigs"`
	EstimatedNicotineNeedMg   int    `json:"estimated_nicotine_need_mg" msgpack:"need_mg"`
	PatchRecommendation       string `json:"patch_recommendation" msgpack:"patches"`
	ShortActingRecommendation string `json:"short_acting_recommendation" msgpack:"short_acting"`
	SupervisionRequired       bool   `json:"supervision_required" msgpack:"supervision"`
}

type SupervisionLevel string

const (
	SupervisionRecommended         SupervisionLevel = "Recommended"
	SupervisionStronglyRecommended SupervisionLevel = "Strongly Recommended"
	SupervisionRequired            SupervisionLevel = "Required"
)

// HeavySmokerRow is reference data for intakes of three packs a day and up.
// TotalNicotineMg is a string because some rows give a range ("63-84").
type HeavySmokerRow struct {
	Level           string           `json:"level"`
	NicotineNeedMg  int              `json:"nicotine_need_mg"`
	Patches         string           `json:"patches"`
	TotalNicotineMg string           `json:"total_nicotine_mg"`
	Support         string           `json:"support"`
	Supervision     SupervisionLevel `json:"supervision"`
	StatusClass     string           `json:"status_class"`
}

type VersionInfo struct {
	Version     string `json:"version"`
	LastUpdated string `json:"last_updated"`
}
