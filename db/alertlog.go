package db

import (
	"context"
	"fmt"
	"log"

	"go-wastewatch/types"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

const (
	alertActivityCollection = "alertActivity"
	pendingAlertsCollection = "pendingAlerts"
)

// SaveAlertBatch logs what a fan-out produced and how much of it went out.
func SaveAlertBatch(client *firestore.Client, batch types.AlertBatch) error {
	ctx := context.Background()
	_, err := client.Collection(alertActivityCollection).Doc(batch.AlertID).Set(ctx, batch)
	if err != nil {
		return fmt.Errorf("saving alert activity %s: %w", batch.AlertID, err)
	}
	log.Printf("Logged alert activity %s: %d/%d sent", batch.AlertID, batch.AlertsSent, batch.AlertsGenerated)
	return nil
}

// PendingAlert is an alert whose delivery failed and is queued for the retry
// sweep.
type PendingAlert struct {
	ID         string      `firestore:"-"`
	IncidentID string      `firestore:"incidentId"`
	Alert      types.Alert `firestore:"alert"`
}

// SavePendingAlerts enqueues undelivered alerts using BulkWriter for
// efficient non-transactional writes.
func SavePendingAlerts(client *firestore.Client, incidentID string, undelivered []types.Alert) error {
	if len(undelivered) == 0 {
		return nil
	}

	ctx := context.Background()
	bw := client.BulkWriter(ctx)
	collectionRef := client.Collection(pendingAlertsCollection)

	enqueued := 0
	for _, alert := range undelivered {
		docRef := collectionRef.Doc(uuid.NewString())
		_, err := bw.Set(docRef, PendingAlert{IncidentID: incidentID, Alert: alert})
		if err != nil {
			log.Printf("Error enqueueing pending alert for %s: %v", incidentID, err)
			continue
		}
		enqueued++
	}

	// Flush sends any remaining writes and waits for them to complete.
	bw.Flush()
	log.Printf("Queued %d undelivered alerts for incident %s", enqueued, incidentID)
	return nil
}

// GetPendingAlerts returns every queued alert awaiting redelivery.
func GetPendingAlerts(client *firestore.Client) ([]PendingAlert, error) {
	ctx := context.Background()
	var pending []PendingAlert

	iter := client.Collection(pendingAlertsCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating pending alerts: %w", err)
		}

		var p PendingAlert
		if err := doc.DataTo(&p); err != nil {
			log.Printf("Warning: could not decode pending alert %s: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		p.ID = doc.Ref.ID
		pending = append(pending, p)
	}
	return pending, nil
}

// DeletePendingAlert removes a queued alert after successful redelivery.
func DeletePendingAlert(client *firestore.Client, id string) error {
	ctx := context.Background()
	if _, err := client.Collection(pendingAlertsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("deleting pending alert %s: %w", id, err)
	}
	return nil
}
