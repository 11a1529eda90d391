package db

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/countydirectory/internal/content"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) func() {
	t.Helper()

	gdb, err := Open(fmt.Sprintf("file:db-%d?mode=memory&cache=shared", time.Now().UnixNano()), logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	DB = gdb

	return func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestPageSectionsRoundTrip(t *testing.T) {
	cleanup := openTestDB(t)
	defer cleanup()

	validated, err := content.Validate(content.Document{
		Title:       "About Navarro County",
		Slug:        "about-navarro-county",
		IsPublished: true,
		Content: &content.RawContent{Sections: []content.RawSection{
			{ID: "hero", Type: "hero", Content: map[string]any{"title": "Welcome", "subtitle": "Hello"}},
			{ID: "faq", Type: "faq", Content: map[string]any{
				"heading": "FAQ",
				"items": []any{
					map[string]any{"question": "Q1", "answer": "A1"},
					map[string]any{"question": "Q2", "answer": "A2"},
				},
			}},
		}},
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	var page Page
	page.Apply(validated)
	if err := DB.Create(&page).Error; err != nil {
		t.Fatalf("failed to create page: %v", err)
	}

	var stored Page
	if err := DB.Where("slug = ?", "about-navarro-county").First(&stored).Error; err != nil {
		t.Fatalf("failed to load page: %v", err)
	}

	reloaded, err := content.Validate(stored.Document())
	if err != nil {
		t.Fatalf("stored document no longer validates: %v", err)
	}
	if len(reloaded.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(reloaded.Sections))
	}
	if reloaded.Sections[0].ID() != "hero" || reloaded.Sections[1].ID() != "faq" {
		t.Fatalf("section order changed: %s, %s", reloaded.Sections[0].ID(), reloaded.Sections[1].ID())
	}
	payload, err := content.ResolveSection(reloaded.Sections[1])
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if faq := payload.(content.FAQ); faq.Items[1].Answer != "A2" {
		t.Fatalf("unexpected faq items: %+v", faq.Items)
	}
}

func TestSlugIsUnique(t *testing.T) {
	cleanup := openTestDB(t)
	defer cleanup()

	first := Page{Slug: "about-navarro-county", Title: "About"}
	if err := DB.Create(&first).Error; err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	second := Page{Slug: "about-navarro-county", Title: "About again"}
	if err := DB.Create(&second).Error; err == nil {
		t.Fatal("expected unique constraint violation for duplicate slug")
	}
}

func TestInitCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "directory.db")
	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	defer func() {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if !DB.Migrator().HasTable(&Town{}) {
		t.Fatal("expected towns table to be migrated")
	}
}
