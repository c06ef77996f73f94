package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"marketing-backend/internal/models"
	"marketing-backend/internal/repository"
	"marketing-backend/internal/services"
)

// csvUploadLimit bounds the multipart read; the service enforces its own
// 5MB cap on the file itself.
const csvUploadLimit = 6 << 20

type DocumentHandler struct {
	docs *services.DocumentService
	csv  *services.CSVService
}

func NewDocumentHandler(docs *services.DocumentService, csv *services.CSVService) *DocumentHandler {
	return &DocumentHandler{docs: docs, csv: csv}
}

// Generate handles POST /documents/generate.
func (h *DocumentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}
	if req.Type == "" || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Missing required fields: type, title", "", r))
		return
	}

	doc, err := h.docs.Generate(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] Document generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Document generation failed", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(doc))
}

// ImportCSV handles POST /documents/csv-import with a multipart `csv` field.
func (h *DocumentHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, csvUploadLimit)
	if err := r.ParseMultipartForm(csvUploadLimit); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid multipart form", "", r))
		return
	}

	file, header, err := r.FormFile("csv")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("No CSV file provided", "", r))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Failed to read uploaded file", "", r))
		return
	}

	preview, err := h.csv.Import(r.Context(), header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCSVType),
			errors.Is(err, services.ErrCSVTooLarge),
			errors.Is(err, services.ErrNoDataRows):
			writeJSON(w, http.StatusBadRequest, errorResp(err.Error(), "", r))
		default:
			log.Printf("[ERROR] CSV import failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResp("CSV import failed", "", r))
		}
		return
	}

	writeJSON(w, http.StatusOK, successResp(preview))
}

// GetDataset handles GET /documents/csv-import?id=.
func (h *DocumentHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Dataset id is required", "", r))
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid dataset id", "", r))
		return
	}

	ds, err := h.csv.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrDatasetNotFound) {
			writeJSON(w, http.StatusNotFound, errorResp("Dataset not found or expired", "", r))
			return
		}
		log.Printf("[ERROR] Dataset lookup failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Dataset lookup failed", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(ds))
}
