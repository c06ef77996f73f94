package models

// KeywordSet buckets suggested keywords by intent.
type KeywordSet struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
	Longtail  []string `json:"longtail"`
	Trending  []string `json:"trending"`
}

// MarketInsights captures current Houston market talking points.
type MarketInsights struct {
	HotTopics               []string `json:"hotTopics"`
	EmergingNeighborhoods   []string `json:"emergingNeighborhoods"`
	PriceMovements          []string `json:"priceMovements"`
	InvestmentOpportunities []string `json:"investmentOpportunities"`
}

// ContentSuggestions are ready-to-use marketing content ideas.
type ContentSuggestions struct {
	BlogTopics          []string `json:"blogTopics"`
	SocialMediaHashtags []string `json:"socialMediaHashtags"`
	DocumentTitles      []string `json:"documentTitles"`
	MetaDescriptions    []string `json:"metaDescriptions"`
}

// CompetitorAnalysis is only populated when explicitly requested.
type CompetitorAnalysis struct {
	TopCompetitors   []string `json:"topCompetitors"`
	TheirTopKeywords []string `json:"theirTopKeywords"`
	ContentGaps      []string `json:"contentGaps"`
	OpportunityAreas []string `json:"opportunityAreas"`
}

// SEOTrends is the full trends/insights payload.
type SEOTrends struct {
	Keywords           KeywordSet         `json:"keywords"`
	MarketInsights     MarketInsights     `json:"marketInsights"`
	ContentSuggestions ContentSuggestions `json:"contentSuggestions"`
	CompetitorAnalysis CompetitorAnalysis `json:"competitorAnalysis"`
	Timestamp          string             `json:"timestamp"`
}

// SEOAnalysisRequest is the POST body for custom keyword analysis.
type SEOAnalysisRequest struct {
	Keywords          []string `json:"keywords"`
	Location          string   `json:"location,omitempty"`
	Focus             string   `json:"focus,omitempty"`
	IncludeCompetitor bool     `json:"includeCompetitor,omitempty"`
}
