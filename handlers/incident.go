package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"go-wastewatch/alerts"
	"go-wastewatch/catalog"
	"go-wastewatch/db"
	"go-wastewatch/pipeline"
	"go-wastewatch/types"
	"go-wastewatch/workflow"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

// IncidentSubmission is the intake payload for a reported incident.
type IncidentSubmission struct {
	IncidentID  string         `json:"incident_id"`
	Location    types.Location `json:"location"`
	WasteType   string         `json:"waste_type"`
	Description string         `json:"description"`
}

// ReportIncident runs the full decision pipeline for a submission and hands
// the results to the persistence, workflow and delivery collaborators. Each
// collaborator failure is isolated: it is logged and the rest still run.
func ReportIncident(
	c *gin.Context,
	cat *catalog.Catalog,
	firestoreClient *firestore.Client,
	starter workflow.Starter,
	dispatcher *alerts.Dispatcher,
) {
	var submission IncidentSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()

	incident := types.Incident{
		ID:          submission.IncidentID,
		Location:    submission.Location,
		WasteType:   submission.WasteType,
		Description: submission.Description,
		Status:      types.StatusReported,
		ReportedAt:  now.UTC().Format(time.RFC3339),
	}
	if incident.ID == "" {
		incident.ID = pipeline.NewIncidentID(now)
	}

	eval, err := pipeline.Evaluate(cat, incident, now)
	if err != nil {
		var shapeErr *pipeline.InputShapeError
		if errors.As(err, &shapeErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": shapeErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	persistEvaluation(firestoreClient, eval, now)

	var executionID string
	if eval.CrossBorder.RequiresCoordination {
		executionID, err = starter.Start(eval.Coordination)
		if err != nil {
			log.Printf("Failed to start workflow for %s: %v", eval.Coordination.CoordinationID, err)
		}
	}

	sent, failed := dispatcher.Dispatch(eval.Alerts)
	batch := types.AlertBatch{
		AlertID:         fmt.Sprintf("ALERT-%s", incident.ID),
		IncidentID:      incident.ID,
		Alerts:          eval.Alerts,
		AlertsGenerated: len(eval.Alerts),
		AlertsSent:      sent,
	}
	if len(eval.Alerts) > 0 {
		batch.SuccessRate = float64(sent) / float64(len(eval.Alerts)) * 100
	}
	if err := db.SaveAlertBatch(firestoreClient, batch); err != nil {
		log.Printf("Failed to log alert activity for %s: %v", incident.ID, err)
	}
	if err := db.SavePendingAlerts(firestoreClient, incident.ID, failed); err != nil {
		log.Printf("Failed to queue undelivered alerts for %s: %v", incident.ID, err)
	}

	log.Printf("Classified incident %s with priority %s", incident.ID, eval.Classification.Priority)

	c.JSON(http.StatusOK, gin.H{
		"evaluation":   eval,
		"workflow":     executionID,
		"alerts_sent":  sent,
		"alert_id":     batch.AlertID,
		"success_rate": batch.SuccessRate,
	})
}

// newIncidentRecord builds the persisted shape of an evaluation. Stored
// incidents enter ACTIVE status, which is what the periodic re-evaluation
// sweep queries; resolving an incident takes it back out.
func newIncidentRecord(eval pipeline.Evaluation, now time.Time) db.IncidentRecord {
	record := db.IncidentRecord{
		Incident:       eval.Incident,
		Classification: eval.Classification,
		Geo:            eval.Geo,
		CrossBorder:    eval.CrossBorder,
		CreatedAt:      now.UTC().Format(time.RFC3339),
	}
	record.Incident.Status = types.StatusActive
	return record
}

func persistEvaluation(firestoreClient *firestore.Client, eval pipeline.Evaluation, now time.Time) {
	record := newIncidentRecord(eval, now)
	if err := db.SaveIncident(firestoreClient, record); err != nil {
		log.Printf("Failed to save incident %s: %v", eval.Incident.ID, err)
	}

	if eval.CrossBorder.RequiresCoordination {
		if err := db.SaveCoordination(firestoreClient, eval.Coordination); err != nil {
			log.Printf("Failed to save coordination for %s: %v", eval.Incident.ID, err)
		}
	}

	opt := db.OptimizationRecord{
		IncidentID:   eval.Incident.ID,
		Optimization: eval.Optimization,
		Plan:         eval.Plan,
		Timestamp:    now.UTC().Format(time.RFC3339),
	}
	if err := db.SaveOptimization(firestoreClient, opt); err != nil {
		log.Printf("Failed to save optimization for %s: %v", eval.Incident.ID, err)
	}
}

// ResolveIncident closes out an incident so the background sweep stops
// re-evaluating it.
func ResolveIncident(c *gin.Context, firestoreClient *firestore.Client) {
	id := c.Param("id")
	if err := db.ResolveIncident(firestoreClient, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"incident_id": id, "status": types.StatusResolved})
}

// GetIncident returns a stored incident record by id.
func GetIncident(c *gin.Context, firestoreClient *firestore.Client) {
	record, err := db.GetIncident(firestoreClient, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}
