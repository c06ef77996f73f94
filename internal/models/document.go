package models

// DocumentData carries caller-supplied values for document templates. Every
// field is optional; templates fall back to Houston defaults.
type DocumentData struct {
	Area          string    `json:"area,omitempty"`
	Content       string    `json:"content,omitempty"`
	MedianPrice   string    `json:"medianPrice,omitempty"`
	PriceGrowth   string    `json:"priceGrowth,omitempty"`
	Inventory     string    `json:"inventory,omitempty"`
	SalesVolume   string    `json:"salesVolume,omitempty"`
	PurchasePrice string    `json:"purchasePrice,omitempty"`
	ExpectedROI   string    `json:"expectedROI,omitempty"`
	CashFlow      string    `json:"cashFlow,omitempty"`
	CapRate       string    `json:"capRate,omitempty"`
	Timeline      []string  `json:"timeline,omitempty"`
	PropertyValue []float64 `json:"propertyValue,omitempty"`
	RentalIncome  []float64 `json:"rentalIncome,omitempty"`
	Areas         []string  `json:"areas,omitempty"`
	Prices        []float64 `json:"prices,omitempty"`
}

// DocumentRequest asks for one rendered document.
type DocumentRequest struct {
	Type          string       `json:"type"`
	Title         string       `json:"title"`
	Data          DocumentData `json:"data"`
	Template      string       `json:"template,omitempty"`
	IncludeCharts *bool        `json:"includeCharts,omitempty"`
	HoustonArea   string       `json:"houstonArea,omitempty"`
	Format        string       `json:"format,omitempty"` // "html" (default) or "pdf"
}

// Document types with dedicated templates; anything else renders generic.
const (
	DocumentTypeMarketReport       = "market_report"
	DocumentTypePropertyBrochure   = "property_brochure"
	DocumentTypeInvestmentAnalysis = "investment_analysis"
	DocumentTypeMarketingFlyer     = "marketing_flyer"
)

// DocumentMetadata describes the rendered artifact.
type DocumentMetadata struct {
	Pages          int    `json:"pages"`
	FileSize       string `json:"fileSize"`
	Format         string `json:"format"`
	IncludesCharts bool   `json:"includesCharts"`
	HoustonArea    string `json:"houstonArea,omitempty"`
}

// DocumentResponse returns the rendered document as a data URL (HTML) or a
// saved-file URL (PDF).
type DocumentResponse struct {
	ID          string           `json:"id"`
	URL         string           `json:"url"`
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	GeneratedBy string           `json:"generatedBy"`
	Timestamp   string           `json:"timestamp"`
	Metadata    DocumentMetadata `json:"metadata"`
}

// ChartDataset is one Chart.js series.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
}

// ChartData is a Chart.js-compatible data block embedded into documents.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}
