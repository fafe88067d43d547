package summarization

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-wastewatch/db"
	"go-wastewatch/types"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(server *httptest.Server) *openai.Client {
	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	config.HTTPClient = server.Client()
	return openai.NewClientWithConfig(config)
}

func testRecord() db.IncidentRecord {
	return db.IncidentRecord{
		Incident: types.Incident{
			ID:          "INC-SUM-1",
			Description: "drums leaking near the river",
		},
		Classification: types.Classification{
			PrimaryType:       "Chemical Hazardous",
			Priority:          types.PriorityCritical,
			HazardLevel:       5,
			EnvironmentalRisk: types.RiskHigh,
		},
		Geo: types.GeoAnalysis{
			Location: types.LocationAnalysis{Country: "Bangladesh", Region: "Dhaka"},
		},
	}
}

func TestCallOpenAISummary(t *testing.T) {
	var received openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  Containment teams deployed; river intake closed.  "}},
			},
		})
	}))
	defer server.Close()

	summary, err := callOpenAISummary(context.Background(), testRecord(), testClient(server))
	require.NoError(t, err)
	assert.Equal(t, "Containment teams deployed; river intake closed.", summary)

	require.Len(t, received.Messages, 2)
	assert.Contains(t, received.Messages[1].Content, "Chemical Hazardous")
	assert.Contains(t, received.Messages[1].Content, "Bangladesh")
	assert.Contains(t, received.Messages[1].Content, "hazard level 5")
}

func TestCallOpenAISummaryEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	}))
	defer server.Close()

	_, err := callOpenAISummary(context.Background(), testRecord(), testClient(server))
	assert.Error(t, err)
}
