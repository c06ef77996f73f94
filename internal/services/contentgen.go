package services

import (
	"context"
	"errors"
	"log"
	"time"

	"marketing-backend/internal/models"
)

// ErrMissingFields is returned when a content request lacks a required field.
var ErrMissingFields = errors.New("Missing required fields: topic, contentType, platform")

// TextGenerator is one tier of the provider-fallback chain.
type TextGenerator interface {
	Name() string
	Available() bool
	Generate(ctx context.Context, topic, contentType string) (string, error)
}

// ContentService composes text providers, the fallback template bank and the
// platform formatter into a single generate operation. Providers are tried in
// order; the static fallback tier means Generate only fails on invalid input.
type ContentService struct {
	providers []TextGenerator
}

func NewContentService(providers ...TextGenerator) *ContentService {
	return &ContentService{providers: providers}
}

// Generate produces platform-formatted content for one request. Provider
// failures are absorbed: the result always carries a generatedBy tag naming
// the tier that produced it.
func (s *ContentService) Generate(ctx context.Context, req models.ContentRequest) (*models.GeneratedContent, error) {
	if req.Topic == "" || req.ContentType == "" || req.Platform == "" {
		return nil, ErrMissingFields
	}

	content, generatedBy := s.generateRaw(ctx, req.Topic, req.ContentType, req.Platform)

	return &models.GeneratedContent{
		Content:     FormatContentForPlatform(content, req.Platform),
		Topic:       req.Topic,
		ContentType: req.ContentType,
		Platform:    req.Platform,
		GeneratedBy: generatedBy,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *ContentService) generateRaw(ctx context.Context, topic, contentType, platform string) (string, string) {
	for _, p := range s.providers {
		if !p.Available() {
			continue
		}

		content, err := p.Generate(ctx, topic, contentType)
		if err != nil {
			log.Printf("[WARN] %s provider failed, trying next tier: %v", p.Name(), err)
			continue
		}

		log.Printf("[INFO] Content generated via %s", p.Name())
		return content, p.Name()
	}

	log.Printf("[INFO] No AI provider available, using fallback template")
	return FallbackContent(topic, contentType, platform), "fallback"
}
