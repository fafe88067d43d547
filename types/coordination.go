package types

type CoordinationLevel string

const (
	CoordinationCritical CoordinationLevel = "CRITICAL"
	CoordinationHigh     CoordinationLevel = "HIGH"
	CoordinationStandard CoordinationLevel = "STANDARD"
)

// BilateralAgreement holds static cooperation terms between two countries.
type BilateralAgreement struct {
	Type              string `firestore:"type" json:"type" yaml:"type"`
	ResponseTimeHours int    `firestore:"responseTimeHours" json:"response_time_hours" yaml:"response_time_hours"`
	DataSharing       bool   `firestore:"dataSharing" json:"data_sharing" yaml:"data_sharing"`
}

// Coordination is the cross-border decision produced for one incident.
type Coordination struct {
	CoordinationID    string             `firestore:"-" json:"coordination_id"`
	IncidentID        string             `firestore:"incidentId" json:"incident_id"`
	AffectedCountries []string           `firestore:"affectedCountries" json:"affected_countries"`
	Level             CoordinationLevel  `firestore:"coordinationLevel" json:"coordination_level"`
	Agreement         BilateralAgreement `firestore:"bilateralAgreement" json:"bilateral_agreement"`
	Status            string             `firestore:"status" json:"status"`
	CreatedAt         string             `firestore:"createdAt" json:"created_at"`
}
