package types

// Alert is one concrete notification intent: a single (country, recipient,
// channel) cell of the fan-out.
type Alert struct {
	Country       string   `firestore:"country" json:"country"`
	RecipientType string   `firestore:"recipientType" json:"recipient_type"`
	Channel       string   `firestore:"channel" json:"channel"`
	Message       string   `firestore:"message" json:"message"`
	Priority      Priority `firestore:"priority" json:"priority"`
	Timestamp     string   `firestore:"timestamp" json:"timestamp"`
}

// AlertBatch records what one fan-out produced and how much of it was
// actually delivered.
type AlertBatch struct {
	AlertID         string  `firestore:"-" json:"alert_id"`
	IncidentID      string  `firestore:"incidentId" json:"incident_id"`
	Alerts          []Alert `firestore:"alerts" json:"alerts"`
	AlertsGenerated int     `firestore:"totalAlerts" json:"alerts_generated"`
	AlertsSent      int     `firestore:"sentAlerts" json:"alerts_sent"`
	SuccessRate     float64 `firestore:"successRate" json:"success_rate"`
}
