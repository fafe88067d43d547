package types

type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// Classification is the severity assessment of an incident's material.
type Classification struct {
	PrimaryType             string    `firestore:"primaryType" json:"primary_type"`
	Priority                Priority  `firestore:"priority" json:"priority"`
	HazardLevel             int       `firestore:"hazardLevel" json:"hazard_level"`
	RequiresSpecialHandling bool      `firestore:"requiresSpecialHandling" json:"requires_special_handling"`
	EstimatedCleanupHours   int       `firestore:"estimatedCleanupHours" json:"estimated_cleanup_hours"`
	EnvironmentalRisk       RiskLevel `firestore:"environmentalRisk" json:"environmental_risk"`
}
