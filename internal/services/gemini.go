package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiService is the backup text provider.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiService creates the Gemini client. An empty API key returns an
// unconfigured service that reports itself unavailable instead of an error,
// so the fallback chain can skip it.
func NewGeminiService(apiKey string) (*GeminiService, error) {
	if apiKey == "" {
		return &GeminiService{}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-3-flash-preview")
	model.SetTemperature(0.7)
	model.SetTopP(0.95)

	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *GeminiService) Name() string { return "gemini" }

func (s *GeminiService) Available() bool { return s.client != nil }

// Generate produces marketing copy with the backup prompt framing.
func (s *GeminiService) Generate(ctx context.Context, topic, contentType string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini: no API key configured")
	}

	prompt := fmt.Sprintf(`You are a Houston real estate expert creating marketing content for Houston Land Guys. Focus on investment opportunities, market trends, and data-driven insights.

Create %s content about %s for Houston real estate market.

Guidelines:
- Houston is America's #1 building market
- Focus on investment opportunities
- Mention Houston Land Guys expertise
- Use local market data and trends
- Professional but engaging tone

Topic: %s
Content Type: %s

Write the content:`, contentType, topic, topic, contentType)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response")
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
