package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"marketing-backend/internal/models"
)

var ErrTemplateNotFound = errors.New("template not found")

// TemplateRepo stores reusable prompt templates. The process-local
// implementation is the authoritative one; templates do not survive
// restarts.
type TemplateRepo interface {
	List(ctx context.Context) ([]models.Template, error)
	Create(ctx context.Context, t *models.Template) error
	Update(ctx context.Context, id string, upd models.TemplateUpdate) (*models.Template, error)
	Delete(ctx context.Context, id string) (*models.Template, error)
}

// MemoryTemplateRepo serializes all read-modify-write sequences under one
// mutex so concurrent updates to the same template cannot interleave.
type MemoryTemplateRepo struct {
	mu        sync.Mutex
	templates []models.Template
	nextID    int
}

func NewMemoryTemplateRepo() *MemoryTemplateRepo {
	seed := seedTemplates()
	return &MemoryTemplateRepo{
		templates: seed,
		nextID:    len(seed) + 1,
	}
}

func (r *MemoryTemplateRepo) List(ctx context.Context) ([]models.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Template, len(r.templates))
	copy(out, r.templates)
	return out, nil
}

func (r *MemoryTemplateRepo) Create(ctx context.Context, t *models.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	t.ID = strconv.Itoa(r.nextID)
	r.nextID++
	t.UseCount = 0
	t.Rating = 0
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Variables == nil {
		t.Variables = []string{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}

	r.templates = append(r.templates, *t)
	return nil
}

func (r *MemoryTemplateRepo) Update(ctx context.Context, id string, upd models.TemplateUpdate) (*models.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID != id {
			continue
		}

		t := &r.templates[i]
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.Category != nil {
			t.Category = *upd.Category
		}
		if upd.Prompt != nil {
			t.Prompt = *upd.Prompt
		}
		if upd.Variables != nil {
			t.Variables = *upd.Variables
		}
		if upd.IsPremium != nil {
			t.IsPremium = *upd.IsPremium
		}
		if upd.Tags != nil {
			t.Tags = *upd.Tags
		}
		if upd.Rating != nil {
			t.Rating = *upd.Rating
		}
		t.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		result := *t
		return &result, nil
	}

	return nil, ErrTemplateNotFound
}

func (r *MemoryTemplateRepo) Delete(ctx context.Context, id string) (*models.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.templates {
		if r.templates[i].ID != id {
			continue
		}
		deleted := r.templates[i]
		r.templates = append(r.templates[:i], r.templates[i+1:]...)
		return &deleted, nil
	}

	return nil, ErrTemplateNotFound
}

func seedTemplates() []models.Template {
	const seededAt = "2025-01-15T10:00:00Z"
	return []models.Template{
		{
			ID:          "1",
			Name:        "Houston Heights Premium Market Report",
			Description: "Comprehensive market analysis for Houston Heights with investment insights and neighborhood trends",
			Category:    "Market Analysis",
			Prompt:      "Create a detailed market report for Houston Heights including pricing trends, investment opportunities, neighborhood growth projections, and demographic analysis. Focus on luxury properties and investment potential.",
			Variables:   []string{"timeframe", "price_range", "property_type", "target_audience"},
			IsPremium:   true,
			Tags:        []string{"houston-heights", "market-analysis", "luxury", "investment"},
			UseCount:    47,
			Rating:      4.8,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "2",
			Name:        "Energy Corridor Investment Showcase",
			Description: "High-ROI commercial property presentation with detailed financial analysis",
			Category:    "Investment Opportunity",
			Prompt:      "Showcase commercial properties in Houston Energy Corridor with detailed investment analysis, ROI projections, market positioning, and growth potential. Include corporate tenant analysis.",
			Variables:   []string{"property_address", "price", "square_footage", "roi_projection", "tenant_profile"},
			IsPremium:   true,
			Tags:        []string{"energy-corridor", "commercial", "roi-analysis", "corporate"},
			UseCount:    32,
			Rating:      4.9,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "3",
			Name:        "Montrose Luxury Lifestyle Content",
			Description: "Premium neighborhood showcase with lifestyle focus and cultural highlights",
			Category:    "Neighborhood Spotlight",
			Prompt:      "Create engaging content about Montrose neighborhood highlighting luxury developments, cultural attractions, dining scene, and lifestyle benefits for high-net-worth residents.",
			Variables:   []string{"development_name", "lifestyle_features", "cultural_highlights", "price_point"},
			IsPremium:   true,
			Tags:        []string{"montrose", "luxury", "lifestyle", "culture"},
			UseCount:    28,
			Rating:      4.7,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "4",
			Name:        "First-Time Buyer Houston Guide",
			Description: "Comprehensive guide for first-time homebuyers in Houston metro area",
			Category:    "Buyer Education",
			Prompt:      "Create an educational guide for first-time homebuyers in Houston, covering market conditions, financing options, neighborhood selection, and step-by-step buying process.",
			Variables:   []string{"budget_range", "preferred_areas", "family_size", "timeline"},
			IsPremium:   false,
			Tags:        []string{"first-time-buyers", "education", "houston-metro", "financing"},
			UseCount:    89,
			Rating:      4.6,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "5",
			Name:        "Houston Growth Story Analysis",
			Description: "Strategic analysis of Houston real estate market growth and future projections",
			Category:    "Market Trends",
			Prompt:      "Analyze Houston real estate market growth trends, population demographics, economic indicators, and future development projections. Focus on investment implications.",
			Variables:   []string{"analysis_period", "growth_sectors", "demographic_focus", "investment_horizon"},
			IsPremium:   true,
			Tags:        []string{"growth-analysis", "demographics", "economic-trends", "projections"},
			UseCount:    41,
			Rating:      4.8,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "6",
			Name:        "Social Media Engagement Pack",
			Description: "High-engagement social media content for luxury real estate marketing",
			Category:    "Social Media",
			Prompt:      "Create engaging social media content for luxury Houston real estate, including property highlights, market insights, and client success stories optimized for maximum engagement.",
			Variables:   []string{"platform", "property_type", "engagement_goal", "target_demographic"},
			IsPremium:   true,
			Tags:        []string{"social-media", "engagement", "luxury", "success-stories"},
			UseCount:    156,
			Rating:      4.9,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "7",
			Name:        "Property Investment Calculator Content",
			Description: "Educational content about property investment calculations and ROI analysis",
			Category:    "Investment Education",
			Prompt:      "Create educational content explaining property investment calculations, ROI analysis, cash flow projections, and risk assessment for Houston real estate investments.",
			Variables:   []string{"investment_type", "calculation_method", "risk_level", "time_horizon"},
			IsPremium:   false,
			Tags:        []string{"investment-education", "calculations", "roi", "cash-flow"},
			UseCount:    67,
			Rating:      4.5,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "8",
			Name:        "Seller Strategy Content",
			Description: "Strategic content for property sellers in competitive Houston market",
			Category:    "Seller Education",
			Prompt:      "Create strategic content for property sellers covering market timing, pricing strategies, home staging, and marketing approaches specific to Houston real estate market.",
			Variables:   []string{"property_type", "market_conditions", "timeline", "price_range"},
			IsPremium:   false,
			Tags:        []string{"seller-education", "pricing-strategy", "staging", "marketing"},
			UseCount:    73,
			Rating:      4.4,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
	}
}
