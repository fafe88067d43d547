package handlers

import (
	"testing"
	"time"

	"go-wastewatch/catalog"
	"go-wastewatch/pipeline"
	"go-wastewatch/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stored incidents must carry the status the active-incident sweep queries,
// or the sweep never sees them.
func TestNewIncidentRecordEntersActiveStatus(t *testing.T) {
	cat := catalog.Default()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	incident := types.Incident{
		ID:          "INC-RECORD-1",
		Location:    types.Location{Latitude: 23.7, Longitude: 90.4, Country: "Bangladesh"},
		WasteType:   "Chemical Hazardous",
		Description: "drums leaking near the river",
		Status:      types.StatusReported,
	}
	eval, err := pipeline.Evaluate(cat, incident, now)
	require.NoError(t, err)

	record := newIncidentRecord(eval, now)
	assert.Equal(t, types.StatusActive, record.Incident.Status)
	assert.Equal(t, "2025-06-01T12:00:00Z", record.CreatedAt)
	assert.Equal(t, eval.Classification, record.Classification)

	// The evaluation itself is untouched.
	assert.Equal(t, types.StatusClassified, eval.Incident.Status)
}
