package repository

import (
	"context"
	"errors"
	"testing"

	"marketing-backend/internal/models"
)

func TestTemplateRepo_Seeded(t *testing.T) {
	repo := NewMemoryTemplateRepo()

	templates, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(templates) != 8 {
		t.Fatalf("Expected 8 seeded templates, got %d", len(templates))
	}
	for _, tpl := range templates {
		if tpl.ID == "" || tpl.Name == "" || tpl.Prompt == "" {
			t.Errorf("Seeded template missing fields: %+v", tpl)
		}
	}
}

func TestTemplateRepo_Create(t *testing.T) {
	repo := NewMemoryTemplateRepo()

	tpl := &models.Template{
		Name:        "Open House Invite",
		Description: "Invitation copy for open house events",
		Category:    "social_media",
		Prompt:      "Write an open house invitation for {address} on {date}",
		Rating:      4.9, // ignored on create
		UseCount:    100, // ignored on create
	}
	if err := repo.Create(context.Background(), tpl); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if tpl.ID != "9" {
		t.Errorf("Expected sequential id after seeds, got %q", tpl.ID)
	}
	if tpl.UseCount != 0 || tpl.Rating != 0 {
		t.Errorf("Expected zeroed counters on create, got useCount=%d rating=%v", tpl.UseCount, tpl.Rating)
	}
	if tpl.CreatedAt == "" || tpl.UpdatedAt == "" {
		t.Errorf("Expected timestamps set")
	}
	if tpl.Variables == nil || tpl.Tags == nil {
		t.Errorf("Expected empty slices instead of nil")
	}

	templates, _ := repo.List(context.Background())
	if len(templates) != 9 {
		t.Errorf("Expected 9 templates after create, got %d", len(templates))
	}
}

func TestTemplateRepo_Update(t *testing.T) {
	repo := NewMemoryTemplateRepo()

	name := "Renamed"
	rating := 3.5
	updated, err := repo.Update(context.Background(), "1", models.TemplateUpdate{
		Name:   &name,
		Rating: &rating,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Name != "Renamed" || updated.Rating != 3.5 {
		t.Errorf("Expected updated fields, got %+v", updated)
	}
	if updated.Description == "" {
		t.Errorf("Untouched fields must be preserved")
	}
	if updated.UpdatedAt == updated.CreatedAt {
		t.Errorf("Expected UpdatedAt refreshed")
	}

	if _, err := repo.Update(context.Background(), "nope", models.TemplateUpdate{Name: &name}); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}
}

func TestTemplateRepo_Delete(t *testing.T) {
	repo := NewMemoryTemplateRepo()

	removed, err := repo.Delete(context.Background(), "2")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed.ID != "2" {
		t.Errorf("Expected removed template echoed, got %+v", removed)
	}

	templates, _ := repo.List(context.Background())
	if len(templates) != 7 {
		t.Errorf("Expected 7 templates after delete, got %d", len(templates))
	}
	for _, tpl := range templates {
		if tpl.ID == "2" {
			t.Errorf("Deleted template still listed")
		}
	}

	if _, err := repo.Delete(context.Background(), "2"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound on second delete, got %v", err)
	}
}
