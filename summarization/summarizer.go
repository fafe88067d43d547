package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"go-wastewatch/db"

	"cloud.google.com/go/firestore"
	"github.com/sashabaranov/go-openai"
)

// GenerateSummaries asks OpenAI for a situation summary of each incident and
// writes it back to Firestore. Incidents are summarized concurrently; a
// failure on one never blocks the others.
func GenerateSummaries(
	ctx context.Context,
	records []db.IncidentRecord,
	firestoreClient *firestore.Client,
	openaiClient *openai.Client,
) {
	log.Printf("Starting summary generation for %d incidents...", len(records))

	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		go func(record db.IncidentRecord) {
			defer wg.Done()

			summary, err := callOpenAISummary(ctx, record, openaiClient)
			if err != nil {
				log.Printf("Error summarizing incident %s: %v. Skipping.", record.Incident.ID, err)
				return
			}
			if err := db.UpdateIncidentSummary(firestoreClient, record.Incident.ID, summary); err != nil {
				log.Printf("Error storing summary for incident %s: %v", record.Incident.ID, err)
			}
		}(records[i])
	}
	wg.Wait()

	log.Println("Summary generation finished.")
}

func callOpenAISummary(ctx context.Context, record db.IncidentRecord, client *openai.Client) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the response situation for a reported %s incident in %s (%s). "+
			"Priority: %s, hazard level %d, environmental risk %s. Description: %s. "+
			"Provide a concise operational summary (2-3 sentences maximum).",
		record.Classification.PrimaryType,
		record.Geo.Location.Country,
		record.Geo.Location.Region,
		record.Classification.Priority,
		record.Classification.HazardLevel,
		record.Classification.EnvironmentalRisk,
		record.Incident.Description,
	)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that writes concise operational summaries of hazardous-material incidents for emergency coordinators.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   150,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
