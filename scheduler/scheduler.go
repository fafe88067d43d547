package scheduler

import (
	"sort"
	"strings"

	"go-wastewatch/types"
)

const (
	immediateWindowHours = 2
	fullWindowHours      = 6

	teamCostPerHour    = 500
	equipmentBaseCost  = 10000
	vehicleCostPerHour = 100
)

// Plan partitions the selected teams into at most two ordered phases and
// estimates cost and response time. The phases cover every selected team
// exactly once.
func Plan(optimization types.OptimizationResult) types.DeploymentPlan {
	teams := optimization.SelectedTeams

	ranked := make([]types.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Capability > ranked[j].Capability
	})

	immediate := ranked
	if len(immediate) > 2 {
		immediate = ranked[:2]
	}

	var phases []types.DeploymentPhase
	phases = append(phases, types.DeploymentPhase{
		Phase:               "IMMEDIATE",
		Teams:               immediate,
		DeploymentTimeHours: immediateWindowHours,
		Objective:           "Initial assessment and containment",
	})

	immediateIDs := make(map[string]bool, len(immediate))
	for _, team := range immediate {
		immediateIDs[team.ID] = true
	}
	var remaining []types.Team
	for _, team := range teams {
		if !immediateIDs[team.ID] {
			remaining = append(remaining, team)
		}
	}
	if len(remaining) > 0 {
		phases = append(phases, types.DeploymentPhase{
			Phase:               "FULL_DEPLOYMENT",
			Teams:               remaining,
			DeploymentTimeHours: fullWindowHours,
			Objective:           "Complete response and cleanup",
		})
	}

	total := 0
	for _, phase := range phases {
		if phase.DeploymentTimeHours > total {
			total = phase.DeploymentTimeHours
		}
	}

	return types.DeploymentPlan{
		Phases:              phases,
		CoordinationCenters: coordinationCenters(teams),
		TotalDeploymentTime: total,
		EstimatedCost:       EstimateCost(optimization),
		ResponseTimeHours:   responseTime(phases),
	}
}

// coordinationCenters groups teams by the country prefix of their id, in
// first-seen order.
func coordinationCenters(teams []types.Team) []string {
	var centers []string
	seen := make(map[string]bool)
	for _, team := range teams {
		prefix := team.ID
		if i := strings.Index(team.ID, "-"); i >= 0 {
			prefix = team.ID[:i]
		}
		if !seen[prefix] {
			seen[prefix] = true
			centers = append(centers, prefix)
		}
	}
	return centers
}

// EstimateCost sums personnel, equipment and vehicle costs over the
// estimated duration.
func EstimateCost(optimization types.OptimizationResult) int {
	duration := optimization.Requirements.EstimatedDurationHours
	personnel := len(optimization.SelectedTeams) * teamCostPerHour * duration
	vehicles := optimization.Requirements.Vehicles * vehicleCostPerHour * duration
	return personnel + equipmentBaseCost + vehicles
}

// responseTime is the first phase's deployment window, or 6 hours when no
// phases exist.
func responseTime(phases []types.DeploymentPhase) int {
	if len(phases) > 0 {
		return phases[0].DeploymentTimeHours
	}
	return 6
}
