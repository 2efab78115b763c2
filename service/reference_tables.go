package service

import (
	"strings"

	"nrt-dosing/domain"
)

// dosingTable is ordered by ascending threshold and never mutated.
var dosingTable = [...]domain.DosingBucket{
	{ThresholdCigarettesPerDay: 10, NicotineNeedMg: 15, PatchRecommendation: "1 x 21mg", ShortActingRecommendation: "2-4mg gum/lozenge every 1-2 hours as needed"},
	{ThresholdCigarettesPerDay: 20, NicotineNeedMg: 30, PatchRecommendation: "1-2 x 21mg", ShortActingRecommendation: "2-4mg gum/lozenge every 1-2 hours as needed"},
	{ThresholdCigarettesPerDay: 30, NicotineNeedMg: 45, PatchRecommendation: "1-2 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1-2 hours as needed"},
	{ThresholdCigarettesPerDay: 40, NicotineNeedMg: 60, PatchRecommendation: "1-2 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1-2 hours as needed"},
	{ThresholdCigarettesPerDay: 50, NicotineNeedMg: 75, PatchRecommendation: "2-3 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1 hour as needed"},
	{ThresholdCigarettesPerDay: 60, NicotineNeedMg: 90, PatchRecommendation: "2-3 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1 hour as needed"},
	{ThresholdCigarettesPerDay: 70, NicotineNeedMg: 105, PatchRecommendation: "3-4 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1 hour as needed"},
	{ThresholdCigarettesPerDay: 80, NicotineNeedMg: 120, PatchRecommendation: "3-4 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1 hour as needed"},
	{ThresholdCigarettesPerDay: 90, NicotineNeedMg: 135, PatchRecommendation: "3-4 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1 hour as needed"},
	{ThresholdCigarettesPerDay: 100, NicotineNeedMg: 150, PatchRecommendation: "3-4 x 21mg", ShortActingRecommendation: "4mg gum/lozenge every 1 hour as needed"},
}

var heavySmokerTable = [...]domain.HeavySmokerRow{
	{Level: "3.0 packs/day (60 cigs)", NicotineNeedMg: 90, Patches: "3 x 21mg patches", TotalNicotineMg: "63", Support: "4mg every hour as needed", Supervision: domain.SupervisionRecommended},
	{Level: "3.5 packs/day (70 cigs)", NicotineNeedMg: 105, Patches: "3-4 x 21mg patches", TotalNicotineMg: "63-84", Support: "4mg every hour as needed", Supervision: domain.SupervisionStronglyRecommended},
	{Level: "4.0 packs/day (80 cigs)", NicotineNeedMg: 120, Patches: "4 x 21mg patches", TotalNicotineMg: "84", Support: "4mg every 30-60 min as needed", Supervision: domain.SupervisionRequired},
	{Level: "4.5 packs/day (90 cigs)", NicotineNeedMg: 135, Patches: "4-5 x 21mg patches", TotalNicotineMg: "84-105", Support: "4mg every 30-60 min as needed", Supervision: domain.SupervisionRequired},
	{Level: "5.0 packs/day (100 cigs)", NicotineNeedMg: 150, Patches: "5 x 21mg patches", TotalNicotineMg: "105", Support: "4mg every 30-60 min as needed", Supervision: domain.SupervisionRequired},
}

// DosingTable returns a copy of the dosing buckets.
func DosingTable() []domain.DosingBucket {
	out := make([]domain.DosingBucket, len(dosingTable))
	copy(out, dosingTable[:])
	return out
}

// HeavySmokerTable returns a copy of the heavy-smoker rows with StatusClass
// filled in.
func HeavySmokerTable() []domain.HeavySmokerRow {
	out := make([]domain.HeavySmokerRow, len(heavySmokerTable))
	for i, row := range heavySmokerTable {
		row.StatusClass = SupervisionClass(row.Supervision)
		out[i] = row
	}
	return out
}

// SupervisionClass maps a supervision level to its display status class.
// Unknown levels fall back to the informational class.
func SupervisionClass(level domain.SupervisionLevel) string {
	switch strings.ToLower(string(level)) {
	case "strongly recommended":
		return "status--warning"
	case "required":
		return "status--error"
	default:
		return "status--info"
	}
}
