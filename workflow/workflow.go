package workflow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"go-wastewatch/types"
)

// Named workflow executions per coordination level.
var workflowNames = map[types.CoordinationLevel]string{
	types.CoordinationCritical: "CriticalIncidentWorkflow",
	types.CoordinationHigh:     "HighPriorityWorkflow",
	types.CoordinationStandard: "StandardWorkflow",
}

// Starter launches a coordination workflow in the external workflow engine.
type Starter interface {
	Start(coordination types.Coordination) (string, error)
}

// HTTPStarter posts the coordination record to the engine's execution
// endpoint. The engine base URL comes from WORKFLOW_ENGINE_URL.
type HTTPStarter struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPStarter() *HTTPStarter {
	return &HTTPStarter{
		BaseURL: os.Getenv("WORKFLOW_ENGINE_URL"),
		Client:  http.DefaultClient,
	}
}

// WorkflowName resolves the named execution for a coordination level.
func WorkflowName(level types.CoordinationLevel) (string, bool) {
	name, ok := workflowNames[level]
	return name, ok
}

type startRequest struct {
	Workflow     string             `json:"workflow"`
	Coordination types.Coordination `json:"coordination"`
}

type startResponse struct {
	ExecutionID string `json:"execution_id"`
}

// Start triggers the workflow matching the coordination level and returns
// the engine's execution id. Failures are surfaced to the caller and never
// retried here.
func (s *HTTPStarter) Start(coordination types.Coordination) (string, error) {
	name, ok := WorkflowName(coordination.Level)
	if !ok {
		return "", fmt.Errorf("no workflow mapped for coordination level %s", coordination.Level)
	}

	payload, err := json.Marshal(startRequest{Workflow: name, Coordination: coordination})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.BaseURL+"/executions", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("starting workflow %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("workflow engine returned status: " + resp.Status)
	}

	var out startResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ExecutionID, nil
}
