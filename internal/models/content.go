package models

// ContentRequest is a single ad-hoc content generation request.
type ContentRequest struct {
	Topic       string `json:"topic"`
	ContentType string `json:"contentType"`
	Platform    string `json:"platform"`
	Template    string `json:"template,omitempty"`
}

// GeneratedContent is the outcome of one generation, tagged with the tier
// that produced it.
type GeneratedContent struct {
	Content     string `json:"content"`
	Topic       string `json:"topic"`
	ContentType string `json:"contentType"`
	Platform    string `json:"platform"`
	GeneratedBy string `json:"generatedBy"` // "replicate", "gemini" or "fallback"
	Timestamp   string `json:"timestamp"`
}

// Known content types. The set is open: unknown types still generate, they
// just miss the canned fallback copy and use the generic template.
const (
	ContentTypeMarketUpdate          = "market_update"
	ContentTypeInvestmentOpportunity = "investment_opportunity"
	ContentTypeNeighborhoodSpotlight = "neighborhood_spotlight"
	ContentTypeMarketAnalysis        = "market_analysis"
	ContentTypeQuickTip              = "quick_tip"
	ContentTypePropertyListing       = "property_listing"
)

// BulkContentRequest drives batch generation over up to 50 requests.
type BulkContentRequest struct {
	Requests []ContentRequest `json:"requests"`
	BatchID  string           `json:"batchId,omitempty"`
}

// BatchItemResult records one item's outcome inside a batch.
type BatchItemResult struct {
	Index   int               `json:"index"`
	Success bool              `json:"success"`
	Data    *GeneratedContent `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// BatchResult aggregates a whole batch. Results are sorted by Index and
// Successful+Failed always equals TotalRequests.
type BatchResult struct {
	BatchID       string            `json:"batchId"`
	TotalRequests int               `json:"totalRequests"`
	Successful    int               `json:"successful"`
	Failed        int               `json:"failed"`
	Results       []BatchItemResult `json:"results"`
}
