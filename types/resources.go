package types

type TeamStatus string

const (
	TeamAvailable TeamStatus = "AVAILABLE"
	TeamDeployed  TeamStatus = "DEPLOYED"
)

// Team is a response unit in the static catalog. Capability is an integer
// proxy for effectiveness, higher is better.
type Team struct {
	ID             string     `firestore:"teamId" json:"team_id" yaml:"team_id"`
	Jurisdiction   string     `firestore:"jurisdiction" json:"jurisdiction" yaml:"jurisdiction"`
	Specialization string     `firestore:"specialization" json:"specialization" yaml:"specialization"`
	Status         TeamStatus `firestore:"status" json:"status" yaml:"status"`
	Capability     int        `firestore:"capability" json:"capability" yaml:"capability"`
}

type ResourceRequirements struct {
	Personnel              int      `firestore:"personnel" json:"personnel"`
	Equipment              []string `firestore:"equipment" json:"equipment"`
	Vehicles               int      `firestore:"vehicles" json:"vehicles"`
	EstimatedDurationHours int      `firestore:"estimatedDurationHours" json:"estimated_duration_hours"`
}

// OptimizationResult is the team selection for one incident. SelectedTeams
// keeps specialization-processing order, not capability order.
type OptimizationResult struct {
	SelectedTeams           []Team               `firestore:"selectedTeams" json:"selected_teams"`
	Requirements            ResourceRequirements `firestore:"resourceRequirements" json:"resource_requirements"`
	SpecializationsRequired []string             `firestore:"specializationsCovered" json:"specializations_covered"`
	OptimizationScore       float64              `firestore:"optimizationScore" json:"optimization_score"`
}

type DeploymentPhase struct {
	Phase               string `firestore:"phase" json:"phase"`
	Teams               []Team `firestore:"teams" json:"teams"`
	DeploymentTimeHours int    `firestore:"deploymentTimeHours" json:"deployment_time_hours"`
	Objective           string `firestore:"objective" json:"objective"`
}

// DeploymentPlan partitions the selected teams into timed phases; the phases
// cover every selected team exactly once.
type DeploymentPlan struct {
	Phases              []DeploymentPhase `firestore:"deploymentPhases" json:"deployment_phases"`
	CoordinationCenters []string          `firestore:"coordinationCenters" json:"coordination_centers"`
	TotalDeploymentTime int               `firestore:"totalDeploymentTime" json:"total_deployment_time"`
	EstimatedCost       int               `firestore:"estimatedCost" json:"estimated_cost"`
	ResponseTimeHours   int               `firestore:"responseTimeHours" json:"response_time_hours"`
}
