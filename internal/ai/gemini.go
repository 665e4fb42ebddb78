package ai

import (
	"context"
	"fmt"
	"strings"

	"baskettracker/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(aiTemperature)

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateReport asks the model for a coach-style Markdown match report.
func (g *GeminiClient) GenerateReport(ctx context.Context, players []models.Player, info models.MatchInfo) (string, error) {
	prompt, err := BuildReportPrompt(players, info)
	if err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text, ok := part.(genai.Text)
		if !ok {
			continue
		}
		sb.WriteString(string(text))
	}
	return sb.String(), nil
}

func (g *GeminiClient) Close() error {
	if err := g.client.Close(); err != nil {
		return fmt.Errorf("failed to close gemini client: %w", err)
	}
	return nil
}
