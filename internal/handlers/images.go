package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"marketing-backend/internal/models"
	"marketing-backend/internal/services"
)

const imageUploadLimit = 10 << 20 // 10MB

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type ImageHandler struct {
	media *services.MediaService
}

func NewImageHandler(media *services.MediaService) *ImageHandler {
	return &ImageHandler{media: media}
}

// Generate handles POST /images/generate.
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.ImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}
	if req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Prompt is required", "", r))
		return
	}

	img, err := h.media.GenerateImage(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] Image generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Image generation failed", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(img))
}

// Upload handles POST /images/upload. The file comes back to the caller as a
// base64 data URL; nothing is persisted server side.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, imageUploadLimit)
	if err := r.ParseMultipartForm(imageUploadLimit); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Image too large. Maximum size: 10MB", "", r))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("No image file provided", "", r))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	format, ok := allowedImageTypes[contentType]
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("Unsupported image type. Allowed: JPEG, PNG, WebP, GIF", "", r))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Failed to read uploaded file", "", r))
		return
	}

	uploaded := models.UploadedImage{
		ID:           fmt.Sprintf("upload_%d", time.Now().UnixMilli()),
		URL:          "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		OriginalName: header.Filename,
		Size:         header.Size,
		Type:         contentType,
		UploadedBy:   "user",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Format:       format,
	}

	writeJSON(w, http.StatusOK, successResp(uploaded))
}
