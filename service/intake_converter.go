package service

import (
	"math"

	"nrt-dosing/domain"
)

var fixedPeriodDays = map[domain.UnitKind]float64{
	domain.UnitCartonsPerOneWeek:    7,
	domain.UnitCartonsPerTwoWeeks:   14,
	domain.UnitCartonsPerThreeWeeks: 21,
	domain.UnitCartonsPerFourWeeks:  28,
}

// ConvertToCigarettesPerDay normalizes an intake to cigarettes per day. The
// second value is false for invalid input; a valid zero returns (0, true).
func ConvertToCigarettesPerDay(input domain.IntakeInput) (float64, bool) {
	amount := input.Amount
	if !isFinite(amount) || amount < 0 {
		return 0, false
	}

	switch input.Unit {
	case domain.UnitCigarettesPerDay:
		return amount, true
	case domain.UnitPacksPerDay:
		return amount * CigarettesPerPack, true
	case domain.UnitCartonsPerOneWeek,
		domain.UnitCartonsPerTwoWeeks,
		domain.UnitCartonsPerThreeWeeks,
		domain.UnitCartonsPerFourWeeks:
		return amount * CigarettesPerCarton / fixedPeriodDays[input.Unit], true
	case domain.UnitCartonsPerCustom:
		periodDays, ok := customPeriodDays(input.CustomPeriod)
		if !ok {
			return 0, false
		}
		return amount * CigarettesPerCarton / periodDays, true
	default:
		return 0, false
	}
}

func customPeriodDays(period *domain.CustomPeriod) (float64, bool) {
	if period == nil {
		return 0, false
	}
	if !isFinite(period.Amount) || period.Amount <= 0 {
		return 0, false
	}

	daysPer := float64(DaysPerMonth)
	switch period.Unit {
	case domain.PeriodDays:
		daysPer = 1
	case domain.PeriodWeeks:
		daysPer = DaysPerWeek
	}

	days := period.Amount * daysPer
	if days <= 0 || !isFinite(days) {
		return 0, false
	}
	return days, true
}

// DeriveCigarettesPerDay rounds the converted value and clamps it to
// [MinCigarettesPerDay, MaxCigarettesPerDay]. A value that rounds to zero or
// below has no result rather than being raised to the minimum. +Inf, from an
// overflowing conversion, clamps to the maximum.
func DeriveCigarettesPerDay(raw float64) (int, bool) {
	if math.IsNaN(raw) {
		return 0, false
	}
	rounded := math.Round(raw)
	if rounded <= 0 {
		return 0, false
	}
	return int(math.Min(rounded, MaxCigarettesPerDay)), true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
