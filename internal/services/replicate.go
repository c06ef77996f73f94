package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Model versions pinned on Replicate.
const (
	replicateTextModel      = "meta/llama-2-70b-chat:02e509c789964a7ea8736978a43525956ef40397be9033abf9fd2badfe68c9e3"
	replicateImageModel     = "stability-ai/sdxl:39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b"
	replicateImg2VidModel   = "stability-ai/stable-video-diffusion:3f0457e4619daec7b2bb482d97b4244b6c6fc9c42ab3ad05a5c10b7e8c5d6b1b"
	replicateText2VidModel  = "anotherjesse/zeroscope-v2-xl:9f747673945c62801b13b84701c2e7c6dfa00a7e4db58b0b3c8dacccd5f56b76"
	replicateDefaultBaseURL = "https://api.replicate.com/v1"
)

// ReplicateClient talks to the Replicate predictions API over HTTP.
type ReplicateClient struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	pollInterval time.Duration
}

// NewReplicateClient creates a client. An empty token produces an
// unconfigured client; callers check Configured before running predictions.
func NewReplicateClient(token string) *ReplicateClient {
	return &ReplicateClient{
		baseURL: replicateDefaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		pollInterval: 2 * time.Second,
	}
}

func (c *ReplicateClient) Configured() bool {
	return c.token != ""
}

type predictionRequest struct {
	Version string                 `json:"version"`
	Input   map[string]interface{} `json:"input"`
}

type prediction struct {
	ID     string      `json:"id"`
	Status string      `json:"status"`
	Output interface{} `json:"output"`
	Error  string      `json:"error"`
}

// Run creates a prediction for the given pinned model and polls it to a
// terminal state. The model string is "owner/name:version".
func (c *ReplicateClient) Run(ctx context.Context, model string, input map[string]interface{}) (interface{}, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("replicate: no API token configured")
	}

	version := model
	if idx := strings.LastIndex(model, ":"); idx >= 0 {
		version = model[idx+1:]
	}

	pred, err := c.createPrediction(ctx, version, input)
	if err != nil {
		return nil, err
	}

	for {
		switch pred.Status {
		case "succeeded":
			return pred.Output, nil
		case "failed", "canceled":
			return nil, fmt.Errorf("replicate: prediction %s %s: %s", pred.ID, pred.Status, pred.Error)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		pred, err = c.getPrediction(ctx, pred.ID)
		if err != nil {
			return nil, err
		}
	}
}

func (c *ReplicateClient) createPrediction(ctx context.Context, version string, input map[string]interface{}) (*prediction, error) {
	body, err := json.Marshal(predictionRequest{Version: version, Input: input})
	if err != nil {
		return nil, fmt.Errorf("encoding prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predictions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	return c.doPrediction(req)
}

func (c *ReplicateClient) getPrediction(ctx context.Context, id string) (*prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/predictions/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)

	return c.doPrediction(req)
}

func (c *ReplicateClient) doPrediction(req *http.Request) (*prediction, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting prediction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("replicate: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var pred prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("decoding prediction: %w", err)
	}
	return &pred, nil
}

// GenerateText runs the chat model and flattens its streamed-array output.
func (c *ReplicateClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	output, err := c.Run(ctx, replicateTextModel, map[string]interface{}{
		"prompt":             prompt,
		"max_new_tokens":     500,
		"temperature":        0.7,
		"repetition_penalty": 1.1,
	})
	if err != nil {
		return "", fmt.Errorf("replicate text generation failed: %w", err)
	}
	return flattenOutput(output), nil
}

// FirstURL extracts the first URL from a prediction output, which Replicate
// returns either as a bare string or an array of strings.
func FirstURL(output interface{}) string {
	switch v := output.(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func flattenOutput(output interface{}) string {
	switch v := output.(type) {
	case string:
		return v
	case []interface{}:
		var b strings.Builder
		for _, part := range v {
			if s, ok := part.(string); ok {
				b.WriteString(s)
			}
		}
		return b.String()
	default:
		return fmt.Sprintf("%v", output)
	}
}

// houstonTextPrompt is the primary provider's prompt framing.
func houstonTextPrompt(topic, contentType string) string {
	return fmt.Sprintf(`You are a Houston real estate expert writing %s content about %s.

Key Context:
- Houston is the #1 building market in America with 46,269 permits and $43.8B in contracts
- Focus on investment opportunities and market trends
- Mention Houston Land Guys as the local expert
- Use data-driven insights and local market knowledge

Write engaging, professional content that highlights Houston's real estate opportunities.

Topic: %s
Content Type: %s

Content:`, contentType, topic, topic, contentType)
}

// Name, Available and Generate satisfy the text-generator strategy contract
// used by the content orchestrator.
func (c *ReplicateClient) Name() string { return "replicate" }

func (c *ReplicateClient) Available() bool { return c.Configured() }

func (c *ReplicateClient) Generate(ctx context.Context, topic, contentType string) (string, error) {
	return c.GenerateText(ctx, houstonTextPrompt(topic, contentType))
}
