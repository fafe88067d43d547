package cronjobs

import (
	"context"
	"log"
	"time"

	"go-wastewatch/alerts"
	"go-wastewatch/catalog"
	"go-wastewatch/db"
	"go-wastewatch/pipeline"
	"go-wastewatch/summarization"
	"go-wastewatch/types"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"github.com/sashabaranov/go-openai"
)

// InitCronJobs starts the background sweeps: re-evaluating incidents that
// are still active, and retrying undelivered alerts. A nil openaiClient
// disables situation summaries.
func InitCronJobs(firestoreClient *firestore.Client, cat *catalog.Catalog, dispatcher *alerts.Dispatcher, openaiClient *openai.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Active incident sweep: every 15 minutes.
	_, err := c.AddFunc("*/15 * * * *", func() {
		log.Println("\nCronJob: Active Incident Sweep Running")
		sweepActiveIncidents(firestoreClient, cat, openaiClient)
	})
	if err != nil {
		log.Println("Error scheduling Active Incident Sweep:", err)
	}

	// Alert retry: every 10 minutes at the 5 minute mark.
	_, err = c.AddFunc("5-59/10 * * * *", func() {
		log.Println("\nCronJob: Alert Retry Running")
		retryPendingAlerts(firestoreClient, dispatcher)
	})
	if err != nil {
		log.Println("Error scheduling Alert Retry:", err)
	}

	c.Start()
}

// sweepActiveIncidents re-runs the decision pipeline on every ACTIVE
// incident so its optimization reflects the current catalog, then fills in
// situation summaries for incidents still missing one.
func sweepActiveIncidents(firestoreClient *firestore.Client, cat *catalog.Catalog, openaiClient *openai.Client) {
	records, err := db.GetActiveIncidents(firestoreClient)
	if err != nil {
		log.Printf("Error fetching active incidents: %v", err)
		return
	}

	now := time.Now()
	for _, record := range records {
		eval, err := pipeline.Evaluate(cat, record.Incident, now)
		if err != nil {
			log.Printf("Error re-evaluating incident %s: %v", record.Incident.ID, err)
			continue
		}

		opt := db.OptimizationRecord{
			IncidentID:   record.Incident.ID,
			Optimization: eval.Optimization,
			Plan:         eval.Plan,
			Timestamp:    now.UTC().Format(time.RFC3339),
		}
		if err := db.SaveOptimization(firestoreClient, opt); err != nil {
			log.Printf("Error saving re-optimization for %s: %v", record.Incident.ID, err)
		}
	}
	log.Printf("Re-evaluated %d active incidents", len(records))

	if openaiClient == nil {
		return
	}
	if missing := withoutSummaries(records); len(missing) > 0 {
		summarization.GenerateSummaries(context.Background(), missing, firestoreClient, openaiClient)
	}
}

// withoutSummaries filters the records still waiting on a situation summary.
func withoutSummaries(records []db.IncidentRecord) []db.IncidentRecord {
	var missing []db.IncidentRecord
	for _, r := range records {
		if r.Summary == "" {
			missing = append(missing, r)
		}
	}
	return missing
}

// retryPendingAlerts attempts redelivery of queued alerts, removing the ones
// that go through.
func retryPendingAlerts(firestoreClient *firestore.Client, dispatcher *alerts.Dispatcher) {
	pending, err := db.GetPendingAlerts(firestoreClient)
	if err != nil {
		log.Printf("Error fetching pending alerts: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	delivered := 0
	for _, p := range pending {
		sent, _ := dispatcher.Dispatch([]types.Alert{p.Alert})
		if sent == 1 {
			if err := db.DeletePendingAlert(firestoreClient, p.ID); err != nil {
				log.Printf("Error removing delivered alert %s: %v", p.ID, err)
				continue
			}
			delivered++
		}
	}
	log.Printf("Alert retry: %d of %d pending delivered", delivered, len(pending))
}
