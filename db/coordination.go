package db

import (
	"context"
	"fmt"
	"log"

	"go-wastewatch/types"

	"cloud.google.com/go/firestore"
)

const coordinationCollection = "coordination"

// SaveCoordination stores the cross-border decision keyed by its
// coordination id.
func SaveCoordination(client *firestore.Client, coordination types.Coordination) error {
	ctx := context.Background()
	_, err := client.Collection(coordinationCollection).Doc(coordination.CoordinationID).Set(ctx, coordination)
	if err != nil {
		return fmt.Errorf("saving coordination %s: %w", coordination.CoordinationID, err)
	}
	log.Printf("Saved coordination %s at level %s", coordination.CoordinationID, coordination.Level)
	return nil
}

// GetCoordination retrieves the coordination record for an incident.
func GetCoordination(client *firestore.Client, incidentID string) (types.Coordination, error) {
	ctx := context.Background()
	var coordination types.Coordination

	docID := fmt.Sprintf("COORD-%s", incidentID)
	docSnap, err := client.Collection(coordinationCollection).Doc(docID).Get(ctx)
	if err != nil {
		return coordination, fmt.Errorf("getting coordination %s: %w", docID, err)
	}
	if err := docSnap.DataTo(&coordination); err != nil {
		return coordination, fmt.Errorf("decoding coordination %s: %w", docID, err)
	}
	coordination.CoordinationID = docSnap.Ref.ID
	return coordination, nil
}
