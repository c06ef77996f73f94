package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"marketing-backend/internal/models"
)

// DocumentService assembles HTML documents from hand-written templates.
// User-supplied fields pass through html/template and are escaped; the
// upstream implementation interpolated them raw.
type DocumentService struct {
	pdf        *PDFRenderer
	uploadsDir string
}

func NewDocumentService(pdf *PDFRenderer, uploadsDir string) *DocumentService {
	return &DocumentService{pdf: pdf, uploadsDir: uploadsDir}
}

type docTemplateData struct {
	Title string
	Area  string
	Date  string

	Content string

	MedianPrice string
	PriceGrowth string
	Inventory   string
	SalesVolume string

	PurchasePrice string
	ExpectedROI   string
	CashFlow      string
	CapRate       string

	HasROIChart     bool
	HasMarketChart  bool
	ROIChartJSON    template.JS
	MarketChartJSON template.JS
}

// Generate renders one document. The default response embeds the HTML as a
// data URL with client-rendered Chart.js charts; format "pdf" prints the
// same HTML headlessly when PDF rendering is enabled.
func (s *DocumentService) Generate(ctx context.Context, req models.DocumentRequest) (*models.DocumentResponse, error) {
	includeCharts := true
	if req.IncludeCharts != nil {
		includeCharts = *req.IncludeCharts
	}

	html, hasCharts, err := s.renderHTML(req, includeCharts)
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("%d", time.Now().UnixMilli())
	resp := &models.DocumentResponse{
		ID:          id,
		Type:        req.Type,
		Title:       req.Title,
		GeneratedBy: "system",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Metadata: models.DocumentMetadata{
			Pages:          1,
			FileSize:       fmt.Sprintf("%d KB", len(html)/1024),
			Format:         "html",
			IncludesCharts: hasCharts,
			HoustonArea:    req.HoustonArea,
		},
	}

	if req.Format == "pdf" {
		if s.pdf == nil {
			log.Printf("[WARN] PDF requested but rendering is disabled, returning HTML document")
		} else {
			pdfBytes, err := s.pdf.Render(ctx, html)
			if err != nil {
				return nil, fmt.Errorf("printing document to PDF: %w", err)
			}

			relPath := filepath.Join("documents", "doc_"+id+".pdf")
			fullPath := filepath.Join(s.uploadsDir, relPath)
			if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
				return nil, fmt.Errorf("creating documents directory: %w", err)
			}
			if err := os.WriteFile(fullPath, pdfBytes, 0o644); err != nil {
				return nil, fmt.Errorf("saving PDF: %w", err)
			}

			resp.URL = "/uploads/" + filepath.ToSlash(relPath)
			resp.Metadata.Format = "pdf"
			resp.Metadata.FileSize = fmt.Sprintf("%d KB", len(pdfBytes)/1024)
			return resp, nil
		}
	}

	resp.URL = "data:text/html;charset=utf-8," + url.PathEscape(html)
	return resp, nil
}

func (s *DocumentService) renderHTML(req models.DocumentRequest, includeCharts bool) (string, bool, error) {
	data := docTemplateData{
		Title:         req.Title,
		Area:          req.HoustonArea,
		Date:          time.Now().Format("1/2/2006"),
		Content:       req.Data.Content,
		MedianPrice:   orDefault(req.Data.MedianPrice, "$485,000"),
		PriceGrowth:   orDefault(req.Data.PriceGrowth, "+12.5%"),
		Inventory:     orDefault(req.Data.Inventory, "2.8"),
		SalesVolume:   orDefault(req.Data.SalesVolume, "8,547"),
		PurchasePrice: orDefault(req.Data.PurchasePrice, "$475,000"),
		ExpectedROI:   orDefault(req.Data.ExpectedROI, "18.5%"),
		CashFlow:      orDefault(req.Data.CashFlow, "$1,250"),
		CapRate:       orDefault(req.Data.CapRate, "8.2%"),
	}
	if data.Area == "" {
		data.Area = orDefault(req.Data.Area, "Greater Houston Area")
	}

	if includeCharts {
		switch req.Type {
		case models.DocumentTypeInvestmentAnalysis:
			if js, err := chartJSON(roiChartData(req.Data)); err == nil {
				data.HasROIChart = true
				data.ROIChartJSON = js
			} else {
				log.Printf("[WARN] Chart data generation failed, continuing without charts: %v", err)
			}
		case models.DocumentTypeMarketReport:
			if js, err := chartJSON(marketChartData(req.Data)); err == nil {
				data.HasMarketChart = true
				data.MarketChartJSON = js
			} else {
				log.Printf("[WARN] Chart data generation failed, continuing without charts: %v", err)
			}
		}
	}

	name := req.Type
	switch name {
	case models.DocumentTypeMarketReport, models.DocumentTypeInvestmentAnalysis, models.DocumentTypePropertyBrochure:
	case models.DocumentTypeMarketingFlyer:
		// Flyers have no dedicated layout yet.
		name = "generic"
	default:
		// Unknown types render the generic template rather than failing.
		name = "generic"
	}

	var buf bytes.Buffer
	if err := docTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", false, fmt.Errorf("rendering %s template: %w", name, err)
	}
	return buf.String(), data.HasROIChart || data.HasMarketChart, nil
}

func chartJSON(cd models.ChartData) (template.JS, error) {
	raw, err := json.Marshal(cd)
	if err != nil {
		return "", err
	}
	return template.JS(raw), nil
}

// roiChartData builds the 5-year projection series, defaulting to the
// standard Houston example when the caller supplies no numbers.
func roiChartData(data models.DocumentData) models.ChartData {
	labels := data.Timeline
	if len(labels) == 0 {
		labels = []string{"Year 1", "Year 2", "Year 3", "Year 4", "Year 5"}
	}
	propertyValue := data.PropertyValue
	if len(propertyValue) == 0 {
		propertyValue = []float64{500000, 525000, 551250, 578813, 607653}
	}
	rentalIncome := data.RentalIncome
	if len(rentalIncome) == 0 {
		rentalIncome = []float64{36000, 37800, 39690, 41675, 43758}
	}

	return models.ChartData{
		Labels: labels,
		Datasets: []models.ChartDataset{
			{
				Label:           "Property Value Growth",
				Data:            propertyValue,
				BorderColor:     "rgba(59, 130, 246, 1)",
				BackgroundColor: "rgba(59, 130, 246, 0.1)",
			},
			{
				Label:           "Rental Income",
				Data:            rentalIncome,
				BorderColor:     "rgba(16, 185, 129, 1)",
				BackgroundColor: "rgba(16, 185, 129, 0.1)",
			},
		},
	}
}

func marketChartData(data models.DocumentData) models.ChartData {
	labels := data.Areas
	if len(labels) == 0 {
		labels = []string{"Heights", "Montrose", "River Oaks", "Energy Corridor", "Sugar Land"}
	}
	prices := data.Prices
	if len(prices) == 0 {
		prices = []float64{485000, 520000, 1200000, 380000, 450000}
	}

	return models.ChartData{
		Labels: labels,
		Datasets: []models.ChartDataset{
			{
				Label:           "Median Price ($)",
				Data:            prices,
				BorderColor:     "rgba(99, 102, 241, 1)",
				BackgroundColor: "rgba(99, 102, 241, 0.1)",
			},
		},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
