package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-wastewatch/catalog"
	"go-wastewatch/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	r := gin.New()
	r.POST("/evaluate", func(c *gin.Context) {
		EvaluateIncident(c, cat)
	})
	r.GET("/simulate", func(c *gin.Context) {
		SimulateIncident(c, cat)
	})
	return r
}

func TestEvaluateIncidentEndpoint(t *testing.T) {
	r := evaluateRouter()

	body, err := json.Marshal(IncidentSubmission{
		IncidentID:  "INC-TEST-1",
		WasteType:   "Chemical Hazardous",
		Description: "toxic drums near the crossing",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var eval pipeline.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eval))
	assert.Equal(t, "INC-TEST-1", eval.Incident.ID)
	assert.Equal(t, "CRITICAL", string(eval.Classification.Priority))
}

func TestEvaluateIncidentGeneratesID(t *testing.T) {
	r := evaluateRouter()

	body := []byte(`{"waste_type": "disaster_debris"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var eval pipeline.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eval))
	assert.Regexp(t, `^INC-\d{14}$`, eval.Incident.ID)
}

func TestEvaluateIncidentBadPayload(t *testing.T) {
	r := evaluateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulateIncidentEndpoint(t *testing.T) {
	r := evaluateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/simulate", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var eval pipeline.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eval))
	assert.True(t, eval.CrossBorder.RequiresCoordination)
	assert.NotEmpty(t, eval.Alerts)
}
