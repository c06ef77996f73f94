package services

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"marketing-backend/internal/models"
	"marketing-backend/internal/repository"
)

const maxCSVSize = 5 * 1024 * 1024 // 5MB

var (
	ErrInvalidCSVType = errors.New("Invalid file type. Please upload a CSV file.")
	ErrCSVTooLarge    = errors.New("CSV file too large. Maximum size: 5MB")
	ErrNoDataRows     = errors.New("CSV file contains no valid data rows")
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// datasetProfile scores a header against one domain category. Matching uses
// substring containment in either direction.
type datasetProfile struct {
	label    string
	required []string
	optional []string
}

// Profile order matters: ties favor the earlier entry.
var datasetProfiles = []datasetProfile{
	{
		label:    models.DatasetTypeMarket,
		required: []string{"price", "address", "sqft"},
		optional: []string{"bedrooms", "bathrooms", "neighborhood", "zipcode", "listing", "year_built"},
	},
	{
		label:    models.DatasetTypeSales,
		required: []string{"sold", "sale_price", "closing_date"},
		optional: []string{"buyer", "agent", "commission", "days_on_market"},
	},
	{
		label:    models.DatasetTypeRental,
		required: []string{"rent", "lease"},
		optional: []string{"tenant", "monthly", "deposit", "occupancy"},
	},
	{
		label:    models.DatasetTypeInvestment,
		required: []string{"roi", "cap_rate"},
		optional: []string{"cash_flow", "irr", "noi", "purchase_price"},
	},
}

var datasetSuggestions = map[string]models.DatasetSuggestions{
	models.DatasetTypeMarket: {
		DocumentType:      "market_analysis_report",
		RecommendedCharts: []string{"Price Trends by Area", "Inventory Levels", "Market Activity"},
		KeyMetrics:        []string{"Median Price", "Days on Market", "Sales Volume", "Price Per SqFt"},
	},
	models.DatasetTypeSales: {
		DocumentType:      "investment_portfolio_report",
		RecommendedCharts: []string{"Sales Volume by Month", "Commission Analysis", "Agent Performance"},
		KeyMetrics:        []string{"Total Sales", "Average Sale Price", "Commission Revenue", "Deal Count"},
	},
	models.DatasetTypeRental: {
		DocumentType:      "neighborhood_guide",
		RecommendedCharts: []string{"Rent by Property Type", "Occupancy Rates", "Lease Trends"},
		KeyMetrics:        []string{"Average Rent", "Vacancy Rate", "Rent Growth", "Tenant Retention"},
	},
	models.DatasetTypeInvestment: {
		DocumentType:      "investment_portfolio_report",
		RecommendedCharts: []string{"ROI Distribution", "Cash Flow Analysis", "Cap Rate Comparison"},
		KeyMetrics:        []string{"Average ROI", "Total Cash Flow", "Portfolio Value", "IRR"},
	},
	models.DatasetTypeUnknown: {
		DocumentType:      "market_analysis_report",
		RecommendedCharts: []string{"Data Distribution", "Key Metrics Overview", "Trend Analysis"},
		KeyMetrics:        []string{"Count", "Average Values", "Growth Rates", "Performance Indicators"},
	},
}

// CSVService parses uploaded CSV files, classifies them and stores the
// result for later retrieval.
type CSVService struct {
	repo repository.DatasetRepo
}

func NewCSVService(repo repository.DatasetRepo) *CSVService {
	return &CSVService{repo: repo}
}

// Import validates, parses, classifies and stores one uploaded CSV file.
func (s *CSVService) Import(ctx context.Context, fileName string, data []byte) (*models.DatasetPreview, error) {
	if !strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		return nil, ErrInvalidCSVType
	}
	if len(data) > maxCSVSize {
		return nil, ErrCSVTooLarge
	}

	columns, rows := parseCSV(string(data))
	if len(rows) == 0 {
		return nil, ErrNoDataRows
	}

	detectedType, confidence := detectDatasetType(columns)
	suggestions, ok := datasetSuggestions[detectedType]
	if !ok {
		suggestions = datasetSuggestions[models.DatasetTypeUnknown]
	}

	ds := &models.Dataset{
		ID:               uuid.New(),
		OriginalFileName: fileName,
		DetectedType:     detectedType,
		Confidence:       confidence,
		Columns:          columns,
		Rows:             rows,
		Suggestions:      suggestions,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, ds); err != nil {
		return nil, err
	}

	log.Printf("[INFO] CSV imported: id=%s file=%s rows=%d type=%s confidence=%d%%",
		ds.ID, fileName, len(rows), detectedType, int(confidence*100))

	preview := rows
	if len(preview) > 10 {
		preview = preview[:10]
	}

	return &models.DatasetPreview{
		ID:           ds.ID,
		FileName:     fileName,
		RowCount:     len(rows),
		Columns:      columns,
		DetectedType: detectedType,
		Confidence:   confidence,
		Rows:         preview,
		Suggestions:  suggestions,
		Timestamp:    ds.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Get retrieves a stored dataset by id.
func (s *CSVService) Get(ctx context.Context, id uuid.UUID) (*models.Dataset, error) {
	return s.repo.Get(ctx, id)
}

// parseCSV splits raw text on newlines and commas. Quoted commas are not
// supported, matching the accepted input format. Header names are lowercased
// with non-alphanumeric runs collapsed to underscores. Rows whose width
// disagrees with the header are skipped with a warning.
func parseCSV(text string) ([]string, []map[string]interface{}) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, nil
	}

	rawHeader := strings.Split(strings.TrimSuffix(lines[0], "\r"), ",")
	columns := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		columns[i] = normalizeColumn(h)
	}

	var rows []map[string]interface{}
	for n, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, ",")
		if len(values) != len(columns) {
			log.Printf("[WARN] CSV row %d skipped: %d fields, expected %d", n+2, len(values), len(columns))
			continue
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col] = coerceValue(values[i])
		}
		rows = append(rows, row)
	}

	return columns, rows
}

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(name), `"'`)))
	name = nonAlnumRe.ReplaceAllString(name, "_")
	return strings.Trim(name, "_")
}

// coerceValue strips currency formatting and converts numeric-looking
// values to float64.
func coerceValue(raw string) interface{} {
	v := strings.Trim(strings.TrimSpace(raw), `"'`)
	cleaned := strings.NewReplacer("$", "", ",", "", "%", "").Replace(v)
	if cleaned == "" {
		return v
	}
	if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return n
	}
	return v
}

// detectDatasetType scores the header against each domain profile:
// 0.7 weight on required-column overlap, 0.3 on optional. Substring
// containment counts in either direction. Ties favor the first profile;
// a zero best score classifies as unknown. Confidence is floored at 0.3.
func detectDatasetType(columns []string) (string, float64) {
	best := models.DatasetTypeUnknown
	bestScore := 0.0

	for _, p := range datasetProfiles {
		reqHits := countMatches(p.required, columns)
		optHits := countMatches(p.optional, columns)

		score := 0.7*(float64(reqHits)/float64(len(p.required))) +
			0.3*(float64(optHits)/float64(len(p.optional)))

		if score > bestScore {
			bestScore = score
			best = p.label
		}
	}

	confidence := bestScore
	if confidence < 0.3 {
		confidence = 0.3
	}
	return best, confidence
}

func countMatches(wanted, columns []string) int {
	hits := 0
	for _, w := range wanted {
		for _, col := range columns {
			if strings.Contains(col, w) || strings.Contains(w, col) {
				hits++
				break
			}
		}
	}
	return hits
}
