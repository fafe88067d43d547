package handlers

import (
	"errors"
	"net/http"
	"time"

	"go-wastewatch/catalog"
	"go-wastewatch/pipeline"
	"go-wastewatch/types"

	"github.com/gin-gonic/gin"
)

// EvaluateIncident runs the decision pipeline without touching any
// collaborator. Useful for what-if checks against the live catalogs.
func EvaluateIncident(c *gin.Context, cat *catalog.Catalog) {
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
	c.JSON(http.StatusOK, eval)
}

// SimulateIncident evaluates a canned cross-border scenario so the demo
// client has something to render without posting a payload.
func SimulateIncident(c *gin.Context, cat *catalog.Catalog) {
	now := time.Now()
	incident := types.Incident{
		ID: pipeline.NewIncidentID(now),
		Location: types.Location{
			Latitude:  23.7,
			Longitude: 90.4,
			Country:   "Bangladesh",
			Region:    "Dhaka",
			Terrain:   "riverine",
		},
		WasteType:   "Chemical Hazardous",
		Description: "toxic runoff reported near the border crossing",
		Status:      types.StatusReported,
		ReportedAt:  now.UTC().Format(time.RFC3339),
	}

	eval, err := pipeline.Evaluate(cat, incident, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, eval)
}
