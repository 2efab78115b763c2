package domain

type UnitKind string

const (
	UnitCigarettesPerDay     UnitKind = "cigs_per_day"
	UnitPacksPerDay          UnitKind = "packs_per_day"
	UnitCartonsPerOneWeek    UnitKind = "cartons_per_1_week"
	UnitCartonsPerTwoWeeks   UnitKind = "cartons_per_2_weeks"
	UnitCartonsPerThreeWeeks UnitKind = "cartons_per_3_weeks"
	UnitCartonsPerFourWeeks  UnitKind = "cartons_per_4_weeks"
	UnitCartonsPerCustom     UnitKind = "cartons_per_custom"
)

type PeriodUnit string

const (
	PeriodDays   PeriodUnit = "days"
	PeriodWeeks  PeriodUnit = "weeks"
	PeriodMonths PeriodUnit = "months"
)

type CustomPeriod struct {
	Amount float64    `json:"amount"`
	Unit   PeriodUnit `json:"unit"`
}

// IntakeInput is what the user typed. CustomPeriod is only read when Unit
// is UnitCartonsPerCustom.
type IntakeInput struct {
	Amount       float64       `json:"amount"`
	Unit         UnitKind      `json:"unit"`
	CustomPeriod *CustomPeriod `json:"custom_period,omitempty"`
}

// IntakeResult is empty when the intake could not be converted.
type IntakeResult struct {
	DerivedCigarettesPerDay *int                  `json:"derived_cigarettes_per_day"`
	Recommendation          *DosingRecommendation `json:"recommendation"`
}

func (r IntakeResult) HasResult() bool {
	return r.DerivedCigarettesPerDay != nil
}
