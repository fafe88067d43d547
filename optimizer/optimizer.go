package optimizer

import (
	"sort"
	"strings"

	"go-wastewatch/catalog"
	"go-wastewatch/types"
)

const (
	personnelPerTeam = 5
	vehiclesPerTeam  = 2
)

var baseDuration = map[types.Priority]int{
	types.PriorityCritical: 48,
	types.PriorityHigh:     24,
	types.PriorityMedium:   12,
	types.PriorityLow:      6,
}

// Optimize selects response teams for a classified incident from the given
// pool and sizes the resource requirements. It never fails: an empty pool
// yields a structurally complete result with score 0.
func Optimize(cat *catalog.Catalog, classification types.Classification, pool []types.Team) types.OptimizationResult {
	required := RequiredSpecializations(cat, classification.PrimaryType, classification.HazardLevel)
	selected := SelectTeams(pool, required, classification.Priority)
	return types.OptimizationResult{
		SelectedTeams:           selected,
		Requirements:            Requirements(cat, classification, selected),
		SpecializationsRequired: required,
		OptimizationScore:       Score(selected, required),
	}
}

// RequiredSpecializations maps the material type to its ordered
// specialization list; hazard level 4 and up appends Coordination. The list
// may carry duplicates and the duplicates are kept.
func RequiredSpecializations(cat *catalog.Catalog, primaryType string, hazardLevel int) []string {
	base, ok := cat.Specializations[primaryType]
	if !ok {
		base = []string{"Environmental"}
	}
	required := make([]string, len(base))
	copy(required, base)
	if hazardLevel >= 4 {
		required = append(required, "Coordination")
	}
	return required
}

// SelectTeams fills each required-specialization slot greedily, in order,
// with the strictly highest-capability unselected team whose specialization
// label contains the entry. Ties go to the earliest team in pool order. This
// is local per slot, not a globally optimal assignment.
func SelectTeams(pool []types.Team, required []string, priority types.Priority) []types.Team {
	ranked := make([]types.Team, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Capability > ranked[j].Capability
	})

	var selected []types.Team
	taken := make(map[string]bool)

	for _, spec := range required {
		best := -1
		bestScore := 0
		for i, team := range ranked {
			if taken[team.ID] {
				continue
			}
			if strings.Contains(strings.ToLower(team.Specialization), strings.ToLower(spec)) {
				if team.Capability > bestScore {
					bestScore = team.Capability
					best = i
				}
			}
		}
		if best >= 0 {
			selected = append(selected, ranked[best])
			taken[ranked[best].ID] = true
		}
	}

	// Critical incidents always get a coordination team if one exists and
	// none of the picks covers it.
	if priority == types.PriorityCritical && !anyCovers(selected, "coordination") {
		for _, team := range ranked {
			if !taken[team.ID] && strings.Contains(strings.ToLower(team.Specialization), "coord") {
				selected = append(selected, team)
				taken[team.ID] = true
				break
			}
		}
	}

	return selected
}

func anyCovers(teams []types.Team, substr string) bool {
	for _, team := range teams {
		if strings.Contains(strings.ToLower(team.Specialization), substr) {
			return true
		}
	}
	return false
}

// Requirements sizes personnel, vehicles, equipment and duration for the
// selection.
func Requirements(cat *catalog.Catalog, classification types.Classification, selected []types.Team) types.ResourceRequirements {
	equipment := make([]string, 0, len(cat.BaseEquipment))
	equipment = append(equipment, cat.BaseEquipment...)
	equipment = append(equipment, cat.SpecialEquipment[classification.PrimaryType]...)

	return types.ResourceRequirements{
		Personnel:              len(selected) * personnelPerTeam,
		Equipment:              equipment,
		Vehicles:               len(selected) * vehiclesPerTeam,
		EstimatedDurationHours: EstimatedDuration(classification.Priority, classification.HazardLevel),
	}
}

// EstimatedDuration scales the priority's base duration by hazard_level/3,
// truncating toward zero. Truncation, not rounding, is deliberate.
func EstimatedDuration(priority types.Priority, hazardLevel int) int {
	base, ok := baseDuration[priority]
	if !ok {
		base = 12
	}
	return base * hazardLevel / 3
}

// Score blends mean capability (60%) with specialization coverage (40%).
// Coverage counts every required entry, duplicates included, satisfied by a
// substring match against at least one selected team.
func Score(selected []types.Team, required []string) float64 {
	if len(selected) == 0 {
		return 0
	}

	capSum := 0
	for _, team := range selected {
		capSum += team.Capability
	}
	capabilityScore := float64(capSum) / float64(len(selected))

	coverageScore := 100.0
	if len(required) > 0 {
		covered := 0
		for _, spec := range required {
			if anyCovers(selected, strings.ToLower(spec)) {
				covered++
			}
		}
		coverageScore = float64(covered) / float64(len(required)) * 100
	}

	return capabilityScore*0.6 + coverageScore*0.4
}
