package workflow

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-wastewatch/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowName(t *testing.T) {
	tests := []struct {
		level types.CoordinationLevel
		want  string
	}{
		{types.CoordinationCritical, "CriticalIncidentWorkflow"},
		{types.CoordinationHigh, "HighPriorityWorkflow"},
		{types.CoordinationStandard, "StandardWorkflow"},
	}
	for _, tt := range tests {
		name, ok := WorkflowName(tt.level)
		require.True(t, ok)
		assert.Equal(t, tt.want, name)
	}

	_, ok := WorkflowName(types.CoordinationLevel("UNMAPPED"))
	assert.False(t, ok)
}

func TestHTTPStarterStart(t *testing.T) {
	var received startRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/executions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(startResponse{ExecutionID: "exec-42"})
	}))
	defer server.Close()

	starter := &HTTPStarter{BaseURL: server.URL, Client: server.Client()}
	coordination := types.Coordination{
		CoordinationID: "COORD-INC-1",
		IncidentID:     "INC-1",
		Level:          types.CoordinationCritical,
	}

	executionID, err := starter.Start(coordination)
	require.NoError(t, err)
	assert.Equal(t, "exec-42", executionID)
	assert.Equal(t, "CriticalIncidentWorkflow", received.Workflow)
	assert.Equal(t, "COORD-INC-1", received.Coordination.CoordinationID)
}

func TestHTTPStarterEngineError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	starter := &HTTPStarter{BaseURL: server.URL, Client: server.Client()}
	_, err := starter.Start(types.Coordination{Level: types.CoordinationStandard})
	assert.Error(t, err)
}
