package types

type Status string

const (
	StatusReported   Status = "REPORTED"
	StatusClassified Status = "CLASSIFIED"
	StatusActive     Status = "ACTIVE"
	StatusResolved   Status = "RESOLVED"
)

// Location describes where an incident was reported. Missing coordinates
// default to 0,0; downstream analysis treats that as a documented default,
// not an error.
type Location struct {
	Latitude  float64 `firestore:"latitude" json:"latitude"`
	Longitude float64 `firestore:"longitude" json:"longitude"`
	Country   string  `firestore:"country" json:"country"`
	Region    string  `firestore:"region" json:"region"`
	Terrain   string  `firestore:"terrain" json:"terrain"`
}

// Incident is a reported hazardous-material event.
type Incident struct {
	ID          string   `firestore:"-" json:"incident_id"`
	Location    Location `firestore:"location" json:"location"`
	WasteType   string   `firestore:"wasteType" json:"waste_type"`
	Description string   `firestore:"description" json:"description"`
	Status      Status   `firestore:"status" json:"status"`
	ReportedAt  string   `firestore:"reportedAt" json:"reported_at"`
}
