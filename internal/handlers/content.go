package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"marketing-backend/internal/models"
	"marketing-backend/internal/services"
)

type ContentHandler struct {
	content *services.ContentService
	bulk    *services.BulkService
}

func NewContentHandler(content *services.ContentService, bulk *services.BulkService) *ContentHandler {
	return &ContentHandler{content: content, bulk: bulk}
}

// Generate handles POST /content/generate. Provider failures never surface
// here; the service falls back to canned copy and the endpoint returns 200.
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}

	content, err := h.content.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			writeJSON(w, http.StatusBadRequest, errorResp(err.Error(), "", r))
			return
		}
		log.Printf("[ERROR] Content generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Content generation failed", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(content))
}

// GenerateBulk handles POST /content/bulk.
func (h *ContentHandler) GenerateBulk(w http.ResponseWriter, r *http.Request) {
	var req models.BulkContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}

	result, err := h.bulk.GenerateBatch(r.Context(), req.Requests, req.BatchID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyBatch) || errors.Is(err, services.ErrBatchTooLarge) {
			writeJSON(w, http.StatusBadRequest, errorResp(err.Error(), "", r))
			return
		}
		log.Printf("[ERROR] Bulk generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Bulk generation failed", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(result))
}
