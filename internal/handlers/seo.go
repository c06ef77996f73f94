package handlers

import (
	"encoding/json"
	"net/http"

	"marketing-backend/internal/models"
	"marketing-backend/internal/services"
)

type SEOHandler struct {
	seo *services.SEOService
}

func NewSEOHandler(seo *services.SEOService) *SEOHandler {
	return &SEOHandler{seo: seo}
}

// Trends handles GET /seo-trends with optional query, focus and
// competitor=true parameters.
func (h *SEOHandler) Trends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	trends := h.seo.Trends(
		q.Get("query"),
		q.Get("focus"),
		q.Get("competitor") == "true",
	)
	writeJSON(w, http.StatusOK, successResp(trends))
}

// Analyze handles POST /seo-trends with caller-supplied keywords.
func (h *SEOHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.SEOAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}
	if len(req.Keywords) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("Keywords array is required", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(h.seo.Analyze(req)))
}
