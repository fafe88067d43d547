package pipeline

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-wastewatch/catalog"
	"go-wastewatch/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func borderIncident() types.Incident {
	return types.Incident{
		ID: "INC-20250601120000",
		Location: types.Location{
			Latitude:  24.0,
			Longitude: 89.5,
			Country:   "Bangladesh",
			Region:    "Khulna",
			Terrain:   "riverine",
		},
		WasteType:   "Chemical Hazardous",
		Description: "tanker rollover near the river crossing",
		Status:      types.StatusReported,
	}
}

func TestEvaluateRequiresIncidentID(t *testing.T) {
	cat := catalog.Default()
	incident := borderIncident()
	incident.ID = ""

	_, err := Evaluate(cat, incident, evalTime)
	require.Error(t, err)

	var shapeErr *InputShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "incident_id", shapeErr.Field)
}

func TestEvaluateCrossBorderIncident(t *testing.T) {
	cat := catalog.Default()

	eval, err := Evaluate(cat, borderIncident(), evalTime)
	require.NoError(t, err)

	assert.Equal(t, types.PriorityCritical, eval.Classification.Priority)
	assert.Equal(t, 5, eval.Classification.HazardLevel)
	assert.Equal(t, types.StatusClassified, eval.Incident.Status)

	assert.True(t, eval.CrossBorder.RequiresCoordination)
	assert.Equal(t, []string{"Bangladesh", "India"}, eval.CrossBorder.Countries)

	assert.Equal(t, types.CoordinationCritical, eval.Coordination.Level)
	assert.Equal(t, "Formal", eval.Coordination.Agreement.Type)

	// Pool is BD-HAZMAT-01, BD-FLOOD-02, IN-BORDER-01 (IN-ENV-02 deployed).
	require.NotEmpty(t, eval.Optimization.SelectedTeams)
	assert.Equal(t, "BD-HAZMAT-01", eval.Optimization.SelectedTeams[0].ID)
	assert.NotEmpty(t, eval.Plan.Phases)
	assert.Equal(t, 2, eval.Plan.ResponseTimeHours)

	// CRITICAL level: 2 countries x 3 recipients x 4 channels.
	assert.Len(t, eval.Alerts, 24)
}

func TestEvaluateDomesticIncident(t *testing.T) {
	cat := catalog.Default()
	incident := types.Incident{
		ID:          "INC-1",
		Location:    types.Location{Latitude: 40.0, Longitude: -3.7, Country: "Spain"},
		WasteType:   "construction_debris",
		Description: "collapsed scaffolding rubble",
	}

	eval, err := Evaluate(cat, incident, evalTime)
	require.NoError(t, err)

	assert.Equal(t, types.PriorityLow, eval.Classification.Priority)
	assert.False(t, eval.CrossBorder.RequiresCoordination)
	assert.Equal(t, []string{"Spain"}, eval.CrossBorder.Countries)
	assert.Equal(t, types.CoordinationStandard, eval.Coordination.Level)

	// No teams registered for Spain; structurally complete result anyway.
	assert.Empty(t, eval.Optimization.SelectedTeams)
	assert.Equal(t, 0.0, eval.Optimization.OptimizationScore)
	require.Len(t, eval.Plan.Phases, 1)

	// STANDARD coordination level has no alert template of its own and
	// borrows MEDIUM's audience: 1 country x 1 recipient x 2 channels. The
	// alerts still carry the STANDARD level as their priority.
	require.Len(t, eval.Alerts, 2)
	assert.Equal(t, types.Priority("STANDARD"), eval.Alerts[0].Priority)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	cat := catalog.Default()
	incident := borderIncident()

	first, err := Evaluate(cat, incident, evalTime)
	require.NoError(t, err)
	second, err := Evaluate(cat, incident, evalTime)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvaluateMissingLocationDefaults(t *testing.T) {
	cat := catalog.Default()
	incident := types.Incident{ID: "INC-2", WasteType: "mystery_goop"}

	eval, err := Evaluate(cat, incident, evalTime)
	require.NoError(t, err)

	assert.Equal(t, types.PriorityMedium, eval.Classification.Priority)
	assert.Equal(t, "Unknown", eval.Geo.Location.Country)
	assert.Equal(t, "TROPICAL", eval.Geo.Location.TerrainType)
	assert.Equal(t, []string{"Unknown"}, eval.CrossBorder.Countries)
}

func TestNewIncidentID(t *testing.T) {
	assert.Equal(t, "INC-20250601120000", NewIncidentID(evalTime))
}
