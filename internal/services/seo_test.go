package services

import (
	"strings"
	"testing"

	"marketing-backend/internal/models"
)

func TestSEOTrends_Defaults(t *testing.T) {
	svc := NewSEOService()
	trends := svc.Trends("", "", false)

	if len(trends.Keywords.Primary) == 0 || len(trends.Keywords.Trending) == 0 {
		t.Errorf("Expected base keyword catalogs")
	}
	if len(trends.MarketInsights.HotTopics) == 0 {
		t.Errorf("Expected market insights")
	}
	if trends.Timestamp == "" {
		t.Errorf("Expected timestamp")
	}
}

func TestSEOTrends_QueryFiltersKeywords(t *testing.T) {
	svc := NewSEOService()
	trends := svc.Trends("luxury", "", false)

	for _, k := range trends.Keywords.Trending {
		if !strings.Contains(k, "luxury") {
			t.Errorf("Trending keyword %q does not match query", k)
		}
	}
	found := false
	for _, k := range trends.Keywords.Secondary {
		if k == "luxury houston" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected query-derived secondary keyword, got %v", trends.Keywords.Secondary)
	}
}

// Competitor data is only present when asked for; excluded responses carry
// empty lists rather than nulls.
func TestSEOTrends_CompetitorToggle(t *testing.T) {
	svc := NewSEOService()

	without := svc.Trends("", "", false)
	if without.CompetitorAnalysis.TopCompetitors == nil || len(without.CompetitorAnalysis.TopCompetitors) != 0 {
		t.Errorf("Expected empty competitor list, got %v", without.CompetitorAnalysis.TopCompetitors)
	}

	with := svc.Trends("", "", true)
	if len(with.CompetitorAnalysis.TopCompetitors) != 5 {
		t.Errorf("Expected 5 competitors, got %d", len(with.CompetitorAnalysis.TopCompetitors))
	}
	if len(with.CompetitorAnalysis.ContentGaps) == 0 {
		t.Errorf("Expected content gaps when competitor analysis requested")
	}
}

func TestSEOTrends_FocusSubstitution(t *testing.T) {
	svc := NewSEOService()
	trends := svc.Trends("", "Heights", false)

	found := false
	for _, topic := range trends.ContentSuggestions.BlogTopics {
		if strings.Contains(topic, "Houston Heights") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected focus substituted into blog topics, got %v", trends.ContentSuggestions.BlogTopics)
	}
}

func TestSEOAnalyze_KeywordBuckets(t *testing.T) {
	svc := NewSEOService()
	result := svc.Analyze(models.SEOAnalysisRequest{
		Keywords: []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7"},
		Location: "katy",
	})

	if len(result.Keywords.Primary) != 5 {
		t.Errorf("Expected first 5 keywords as primary, got %v", result.Keywords.Primary)
	}
	if len(result.Keywords.Secondary) != 2 {
		t.Errorf("Expected overflow keywords as secondary, got %v", result.Keywords.Secondary)
	}
	if result.Keywords.Secondary[0] != "k6 katy" {
		t.Errorf("Expected location suffix, got %q", result.Keywords.Secondary[0])
	}
	if len(result.Keywords.Longtail) != 7 {
		t.Errorf("Expected one longtail per keyword, got %v", result.Keywords.Longtail)
	}
	if result.Keywords.Longtail[0] != "k1 katy 2025" {
		t.Errorf("Expected longtail pattern, got %q", result.Keywords.Longtail[0])
	}
}

func TestSEOAnalyze_TrendingIntersection(t *testing.T) {
	svc := NewSEOService()
	result := svc.Analyze(models.SEOAnalysisRequest{Keywords: []string{"luxury"}})

	if len(result.Keywords.Trending) == 0 {
		t.Fatalf("Expected trending matches for 'luxury'")
	}
	for _, k := range result.Keywords.Trending {
		if !strings.Contains(k, "luxury") {
			t.Errorf("Trending keyword %q does not contain the analyzed term", k)
		}
	}
}
