package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"marketing-backend/internal/models"
	"marketing-backend/internal/repository"
	"marketing-backend/internal/services"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return body
}

// ─── Content Handler Tests ───

func newContentHandler() *ContentHandler {
	content := services.NewContentService() // no providers: fallback tier only
	return NewContentHandler(content, services.NewBulkService(content))
}

func TestContentGenerate_Valid(t *testing.T) {
	h := newContentHandler()

	body, _ := json.Marshal(models.ContentRequest{
		Topic: "Heights bungalows", ContentType: "market_update", Platform: "instagram",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/generate", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeEnvelope(t, rr)
	if resp["success"] != true {
		t.Errorf("Expected success envelope, got %v", resp)
	}
	data := resp["data"].(map[string]interface{})
	if data["generatedBy"] != "fallback" {
		t.Errorf("Expected fallback tier without providers, got %v", data["generatedBy"])
	}
	if !strings.Contains(data["content"].(string), "#HoustonRealEstate") {
		t.Errorf("Expected platform formatting in response")
	}
}

func TestContentGenerate_MissingFields(t *testing.T) {
	h := newContentHandler()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing topic", map[string]string{"contentType": "market_update", "platform": "twitter"}},
		{"missing platform", map[string]string{"topic": "t", "contentType": "market_update"}},
		{"empty body", map[string]string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/content/generate", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			h.Generate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}
			resp := decodeEnvelope(t, rr)
			if resp["success"] != false {
				t.Errorf("Expected error envelope, got %v", resp)
			}
		})
	}
}

func TestContentBulk_Limits(t *testing.T) {
	h := newContentHandler()

	// Empty batch
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/bulk", strings.NewReader(`{"requests":[]}`))
	rr := httptest.NewRecorder()
	h.GenerateBulk(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty batch, got %d", rr.Code)
	}

	// Oversize batch
	requests := make([]models.ContentRequest, 51)
	for i := range requests {
		requests[i] = models.ContentRequest{Topic: "t", ContentType: "quick_tip", Platform: "blog"}
	}
	body, _ := json.Marshal(models.BulkContentRequest{Requests: requests})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/content/bulk", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	h.GenerateBulk(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for oversize batch, got %d", rr.Code)
	}
}

func TestContentBulk_Valid(t *testing.T) {
	h := newContentHandler()

	body, _ := json.Marshal(models.BulkContentRequest{
		BatchID: "b1",
		Requests: []models.ContentRequest{
			{Topic: "Heights", ContentType: "quick_tip", Platform: "twitter"},
			{Topic: "Katy", ContentType: "market_update", Platform: "facebook"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/bulk", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.GenerateBulk(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	if data["batchId"] != "b1" || data["successful"] != float64(2) {
		t.Errorf("Unexpected batch result: %v", data)
	}
}

// ─── Document Handler Tests ───

func newDocumentHandler(t *testing.T) (*DocumentHandler, *repository.MemoryDatasetRepo) {
	t.Helper()
	repo := repository.NewMemoryDatasetRepo()
	t.Cleanup(repo.Stop)
	docs := services.NewDocumentService(nil, t.TempDir())
	return NewDocumentHandler(docs, services.NewCSVService(repo)), repo
}

func TestDocumentGenerate_Validation(t *testing.T) {
	h, _ := newDocumentHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/generate", strings.NewReader(`{"type":"market_report"}`))
	rr := httptest.NewRecorder()
	h.Generate(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing title, got %d", rr.Code)
	}
}

func TestDocumentGenerate_Valid(t *testing.T) {
	h, _ := newDocumentHandler(t)

	body := `{"type":"market_report","title":"Q1 Report"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/generate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	if !strings.HasPrefix(data["url"].(string), "data:text/html") {
		t.Errorf("Expected HTML data URL")
	}
}

func multipartBody(t *testing.T, field, fileName, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("Failed to create multipart part: %v", err)
	}
	part.Write([]byte(content))
	w.Close()

	return &buf, w.FormDataContentType()
}

func TestCSVImport_EndToEnd(t *testing.T) {
	h, _ := newDocumentHandler(t)

	csv := "address,price,sqft\n123 Main,450000,2100\n456 Oak,380000,1800\n"
	body, contentType := multipartBody(t, "csv", "listings.csv", "text/csv", csv)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/csv-import", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.ImportCSV(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	if data["detectedType"] != "market_data" {
		t.Errorf("Expected market_data classification, got %v", data["detectedType"])
	}
	if data["rowCount"] != float64(2) {
		t.Errorf("Expected 2 rows, got %v", data["rowCount"])
	}

	// Retrieve the stored dataset by the returned id.
	id := data["id"].(string)
	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/documents/csv-import?id="+id, nil)
	getRR := httptest.NewRecorder()
	h.GetDataset(getRR, getReq)
	if getRR.Code != http.StatusOK {
		t.Errorf("Expected 200 on lookup, got %d", getRR.Code)
	}
}

func TestCSVImport_WrongExtension(t *testing.T) {
	h, _ := newDocumentHandler(t)

	body, contentType := multipartBody(t, "csv", "data.xlsx", "application/vnd.ms-excel", "a,b\n1,2\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/csv-import", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.ImportCSV(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-CSV upload, got %d", rr.Code)
	}
}

func TestGetDataset_Errors(t *testing.T) {
	h, _ := newDocumentHandler(t)

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing id", "/api/v1/documents/csv-import", http.StatusBadRequest},
		{"invalid id", "/api/v1/documents/csv-import?id=not-a-uuid", http.StatusBadRequest},
		{"unknown id", "/api/v1/documents/csv-import?id=6ba7b810-9dad-11d1-80b4-00c04fd430c8", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()
			h.GetDataset(rr, req)
			if rr.Code != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, rr.Code)
			}
		})
	}
}

// ─── Image Handler Tests ───

func TestImageUpload_Valid(t *testing.T) {
	h := NewImageHandler(services.NewMediaService(services.NewReplicateClient("")))

	body, contentType := multipartBody(t, "image", "photo.png", "image/png", "fake png bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	if !strings.HasPrefix(data["url"].(string), "data:image/png;base64,") {
		t.Errorf("Expected base64 data URL, got %v", data["url"])
	}
	if data["originalName"] != "photo.png" {
		t.Errorf("Expected original name preserved, got %v", data["originalName"])
	}
}

func TestImageUpload_UnsupportedType(t *testing.T) {
	h := NewImageHandler(services.NewMediaService(services.NewReplicateClient("")))

	body, contentType := multipartBody(t, "image", "doc.pdf", "application/pdf", "%PDF-1.4")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unsupported type, got %d", rr.Code)
	}
}

func TestImageGenerate_RequiresPrompt(t *testing.T) {
	h := NewImageHandler(services.NewMediaService(services.NewReplicateClient("")))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/generate", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	h.Generate(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without prompt, got %d", rr.Code)
	}
}

func TestImageGenerate_Placeholder(t *testing.T) {
	h := NewImageHandler(services.NewMediaService(services.NewReplicateClient("")))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/images/generate", strings.NewReader(`{"prompt":"modern townhome"}`))
	rr := httptest.NewRecorder()
	h.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	if data["generatedBy"] != "placeholder" {
		t.Errorf("Expected placeholder tier, got %v", data["generatedBy"])
	}
}

// ─── Video Handler Tests ───

func TestVideoGenerate_Validation(t *testing.T) {
	h := NewVideoHandler(services.NewMediaService(services.NewReplicateClient("")))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/generate", strings.NewReader(`{"type":"property_tour"}`))
	rr := httptest.NewRecorder()
	h.Generate(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without prompt or input image, got %d", rr.Code)
	}
}

// ─── SEO Handler Tests ───

func TestSEOTrends_Get(t *testing.T) {
	h := NewSEOHandler(services.NewSEOService())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/seo-trends?competitor=true", nil)
	rr := httptest.NewRecorder()
	h.Trends(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	comp := data["competitorAnalysis"].(map[string]interface{})
	if len(comp["topCompetitors"].([]interface{})) == 0 {
		t.Errorf("Expected competitor data with competitor=true")
	}
}

func TestSEOAnalyze_RequiresKeywords(t *testing.T) {
	h := NewSEOHandler(services.NewSEOService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/seo-trends", strings.NewReader(`{"keywords":[]}`))
	rr := httptest.NewRecorder()
	h.Analyze(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 without keywords, got %d", rr.Code)
	}
}

// ─── Template Handler Tests ───

func TestTemplateList_Filters(t *testing.T) {
	h := NewTemplateHandler(repository.NewMemoryTemplateRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates?premium=true", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	if data["total"] != float64(5) {
		t.Errorf("Expected 5 premium templates listed, got %v", data["total"])
	}
	// Counts describe the whole catalog regardless of the filter.
	if data["totalPremium"] != float64(5) || data["totalFree"] != float64(3) {
		t.Errorf("Expected catalog-wide counts 5/3, got %v/%v", data["totalPremium"], data["totalFree"])
	}
	if len(data["categories"].([]interface{})) == 0 {
		t.Errorf("Expected categories list")
	}
}

func TestTemplateList_DefaultSortByRating(t *testing.T) {
	h := NewTemplateHandler(repository.NewMemoryTemplateRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	templates := data["templates"].([]interface{})
	first := templates[0].(map[string]interface{})
	if first["rating"] != float64(4.9) {
		t.Errorf("Expected highest-rated template first without sortBy, got rating %v", first["rating"])
	}
}

func TestTemplateCreate_Validation(t *testing.T) {
	h := NewTemplateHandler(repository.NewMemoryTemplateRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates", strings.NewReader(`{"name":"only name"}`))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
	var apiErr models.APIError
	if err := json.NewDecoder(rr.Body).Decode(&apiErr); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if _, ok := apiErr.Fields["description"]; !ok {
		t.Errorf("Expected field-level validation details, got %v", apiErr.Fields)
	}
}

func TestTemplateUpdate_NotFound(t *testing.T) {
	h := NewTemplateHandler(repository.NewMemoryTemplateRepo())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/templates", strings.NewReader(`{"id":"999","name":"x"}`))
	rr := httptest.NewRecorder()
	h.Update(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rr.Code)
	}
}

func TestTemplateDelete_Flow(t *testing.T) {
	h := NewTemplateHandler(repository.NewMemoryTemplateRepo())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/templates?id=1", nil)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	resp := decodeEnvelope(t, rr)
	data := resp["data"].(map[string]interface{})
	if data["id"] != "1" {
		t.Errorf("Expected removed template echoed, got %v", data["id"])
	}

	// Second delete of the same id misses.
	rr = httptest.NewRecorder()
	h.Delete(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/templates?id=1", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", rr.Code)
	}
}
