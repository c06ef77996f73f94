package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"

	"marketing-backend/internal/models"
	"marketing-backend/internal/repository"
)

type TemplateHandler struct {
	repo repository.TemplateRepo
}

func NewTemplateHandler(repo repository.TemplateRepo) *TemplateHandler {
	return &TemplateHandler{repo: repo}
}

// List handles GET /templates with optional category, premium, search and
// sortBy filters.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.repo.List(r.Context())
	if err != nil {
		log.Printf("[ERROR] Listing templates failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to list templates", "", r))
		return
	}

	q := r.URL.Query()
	categories := distinctCategories(templates)
	filtered := filterTemplates(templates, q.Get("category"), q.Get("premium"), q.Get("search"))
	sortTemplates(filtered, q.Get("sortBy"))

	// Premium and free counts describe the whole catalog, not the
	// filtered page.
	premium := 0
	for _, t := range templates {
		if t.IsPremium {
			premium++
		}
	}

	writeJSON(w, http.StatusOK, successResp(models.TemplateList{
		Templates:    filtered,
		Total:        len(filtered),
		Categories:   categories,
		TotalPremium: premium,
		TotalFree:    len(templates) - premium,
	}))
}

// Create handles POST /templates.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var t models.Template
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}

	fields := map[string]string{}
	if t.Name == "" {
		fields["name"] = "required"
	}
	if t.Description == "" {
		fields["description"] = "required"
	}
	if t.Category == "" {
		fields["category"] = "required"
	}
	if t.Prompt == "" {
		fields["prompt"] = "required"
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("Missing required fields: name, description, category, prompt", fields, r))
		return
	}

	if err := h.repo.Create(r.Context(), &t); err != nil {
		log.Printf("[ERROR] Creating template failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to create template", "", r))
		return
	}

	writeJSON(w, http.StatusCreated, successResp(t))
}

// Update handles PUT /templates with the id carried in the body.
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
		models.TemplateUpdate
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body", "", r))
		return
	}
	if body.ID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Template id is required", "", r))
		return
	}

	updated, err := h.repo.Update(r.Context(), body.ID, body.TemplateUpdate)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			writeJSON(w, http.StatusNotFound, errorResp("Template not found", "", r))
			return
		}
		log.Printf("[ERROR] Updating template failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to update template", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(updated))
}

// Delete handles DELETE /templates?id= and echoes the removed template.
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Template id is required", "", r))
		return
	}

	removed, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			writeJSON(w, http.StatusNotFound, errorResp("Template not found", "", r))
			return
		}
		log.Printf("[ERROR] Deleting template failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to delete template", "", r))
		return
	}

	writeJSON(w, http.StatusOK, successResp(removed))
}

func distinctCategories(templates []models.Template) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range templates {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	sort.Strings(out)
	return out
}

func filterTemplates(templates []models.Template, category, premium, search string) []models.Template {
	out := make([]models.Template, 0, len(templates))
	search = strings.ToLower(search)
	for _, t := range templates {
		if category != "" && t.Category != category {
			continue
		}
		if premium == "true" && !t.IsPremium {
			continue
		}
		if premium == "false" && t.IsPremium {
			continue
		}
		if search != "" && !templateMatches(t, search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func templateMatches(t models.Template, search string) bool {
	if strings.Contains(strings.ToLower(t.Name), search) ||
		strings.Contains(strings.ToLower(t.Description), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// sortTemplates orders in place, defaulting to highest rating first.
func sortTemplates(templates []models.Template, sortBy string) {
	switch sortBy {
	case "useCount":
		sort.SliceStable(templates, func(i, j int) bool { return templates[i].UseCount > templates[j].UseCount })
	case "name":
		sort.SliceStable(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	case "newest":
		sort.SliceStable(templates, func(i, j int) bool { return templates[i].CreatedAt > templates[j].CreatedAt })
	default:
		sort.SliceStable(templates, func(i, j int) bool { return templates[i].Rating > templates[j].Rating })
	}
}
