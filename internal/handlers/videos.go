package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"marketing-backend/internal/models"
	"marketing-backend/internal/services"
)

type VideoHandler struct {
	media *services.MediaService
}

func NewVideoHandler(media *services.MediaService) *VideoHandler {
	return &VideoHandler{media: media}
}

// Generate handles POST /videos/generate. Unlike images there is no offline
// placeholder, so provider errors surface as 500s.
func (h *VideoHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}
	if req.Type == "" || (req.Prompt == "" && req.InputImage == "") {
		writeJSON(w, http.StatusBadRequest, errorResp("Missing required fields: type, prompt", "", r))
		return
	}

	video, err := h.media.GenerateVideo(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] Video generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Video generation failed", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(video))
}
