package models

import (
	"time"

	"github.com/google/uuid"
)

// Detected dataset categories, keyed by column-name heuristics.
const (
	DatasetTypeMarket     = "market_data"
	DatasetTypeSales      = "sales_data"
	DatasetTypeRental     = "rental_data"
	DatasetTypeInvestment = "investment_data"
	DatasetTypeUnknown    = "unknown"
)

// DatasetSuggestions maps a detected dataset type to recommended outputs.
type DatasetSuggestions struct {
	DocumentType      string   `json:"documentType"`
	RecommendedCharts []string `json:"recommendedCharts"`
	KeyMetrics        []string `json:"keyMetrics"`
}

// Dataset is a parsed, classified CSV upload. It is ephemeral: the backing
// store evicts datasets one hour after creation.
type Dataset struct {
	ID               uuid.UUID                `json:"id"`
	OriginalFileName string                   `json:"originalFileName"`
	DetectedType     string                   `json:"detectedType"`
	Confidence       float64                  `json:"confidence"`
	Columns          []string                 `json:"columns"`
	Rows             []map[string]interface{} `json:"rows"`
	Suggestions      DatasetSuggestions       `json:"suggestions"`
	CreatedAt        time.Time                `json:"createdAt"`
}

// DatasetPreview is the import response: full classification, first rows only.
type DatasetPreview struct {
	ID           uuid.UUID                `json:"id"`
	FileName     string                   `json:"fileName"`
	RowCount     int                      `json:"rowCount"`
	Columns      []string                 `json:"columns"`
	DetectedType string                   `json:"detectedType"`
	Confidence   float64                  `json:"confidence"`
	Rows         []map[string]interface{} `json:"processedData"`
	Suggestions  DatasetSuggestions       `json:"suggestions"`
	Timestamp    string                   `json:"timestamp"`
}
