package db

import (
	"context"
	"fmt"
	"log"

	"go-wastewatch/types"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const incidentsCollection = "incidents"

// IncidentRecord is the persisted shape of a classified incident.
type IncidentRecord struct {
	Incident       types.Incident         `firestore:"incident"`
	Classification types.Classification   `firestore:"wasteClassification"`
	Geo            types.GeoAnalysis      `firestore:"geoAnalysis"`
	CrossBorder    types.CrossBorderCheck `firestore:"crossBorder"`
	Summary        string                 `firestore:"summary,omitempty"`
	CreatedAt      string                 `firestore:"createdAt"`
}

// SaveIncident stores the classified incident keyed by its id, so re-running
// the pipeline on the same incident overwrites rather than duplicates.
func SaveIncident(client *firestore.Client, record IncidentRecord) error {
	ctx := context.Background()
	_, err := client.Collection(incidentsCollection).Doc(record.Incident.ID).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("saving incident %s: %w", record.Incident.ID, err)
	}
	log.Printf("Saved incident %s with priority %s", record.Incident.ID, record.Classification.Priority)
	return nil
}

// GetIncident retrieves a single incident record by id.
func GetIncident(client *firestore.Client, incidentID string) (IncidentRecord, error) {
	ctx := context.Background()
	var record IncidentRecord

	docSnap, err := client.Collection(incidentsCollection).Doc(incidentID).Get(ctx)
	if err != nil {
		return record, fmt.Errorf("getting incident %s: %w", incidentID, err)
	}
	if err := docSnap.DataTo(&record); err != nil {
		return record, fmt.Errorf("decoding incident %s: %w", incidentID, err)
	}
	record.Incident.ID = docSnap.Ref.ID
	return record, nil
}

// UpdateIncidentSummary sets the LLM situation summary on a stored incident.
func UpdateIncidentSummary(client *firestore.Client, incidentID, summary string) error {
	ctx := context.Background()
	_, err := client.Collection(incidentsCollection).Doc(incidentID).Update(ctx, []firestore.Update{
		{Path: "summary", Value: summary},
	})
	if err != nil {
		return fmt.Errorf("updating summary for incident %s: %w", incidentID, err)
	}
	return nil
}

// ResolveIncident marks a stored incident RESOLVED, dropping it from the
// periodic re-evaluation sweep.
func ResolveIncident(client *firestore.Client, incidentID string) error {
	ctx := context.Background()
	_, err := client.Collection(incidentsCollection).Doc(incidentID).Update(ctx, []firestore.Update{
		{Path: "incident.status", Value: string(types.StatusResolved)},
	})
	if err != nil {
		return fmt.Errorf("resolving incident %s: %w", incidentID, err)
	}
	log.Printf("Resolved incident %s", incidentID)
	return nil
}

// GetActiveIncidents returns every incident still in ACTIVE status, for the
// periodic re-evaluation sweep.
func GetActiveIncidents(client *firestore.Client) ([]IncidentRecord, error) {
	ctx := context.Background()
	var records []IncidentRecord

	iter := client.Collection(incidentsCollection).
		Where("incident.status", "==", string(types.StatusActive)).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating incidents: %w", err)
		}

		var record IncidentRecord
		if err := doc.DataTo(&record); err != nil {
			log.Printf("Warning: could not decode incident %s: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		record.Incident.ID = doc.Ref.ID
		records = append(records, record)
	}
	return records, nil
}
