package db

import (
	"context"
	"fmt"
	"log"

	"go-wastewatch/types"

	"cloud.google.com/go/firestore"
)

const optimizationsCollection = "optimizations"

// OptimizationRecord pairs a team selection with its deployment plan.
type OptimizationRecord struct {
	IncidentID   string                   `firestore:"incidentId"`
	Optimization types.OptimizationResult `firestore:"resourceAllocation"`
	Plan         types.DeploymentPlan     `firestore:"deploymentStrategy"`
	Timestamp    string                   `firestore:"optimizationTimestamp"`
}

// SaveOptimization stores the optimization result under OPT-<incident id>.
func SaveOptimization(client *firestore.Client, record OptimizationRecord) error {
	ctx := context.Background()
	docID := fmt.Sprintf("OPT-%s", record.IncidentID)
	_, err := client.Collection(optimizationsCollection).Doc(docID).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("saving optimization %s: %w", docID, err)
	}
	log.Printf("Saved optimization %s with score %.1f", docID, record.Optimization.OptimizationScore)
	return nil
}
