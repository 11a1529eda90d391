package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/countydirectory/internal/content"
	"github.com/countydirectory/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrPageSlugExists = errors.New("page slug already exists")
)

// PageService stores and retrieves composed pages.
type PageService struct {
	db    *gorm.DB
	newID func() string
}

// PageSummary is the listing view of a page.
type PageSummary struct {
	ID              uint
	Slug            string
	Title           string
	MetaTitle       string
	MetaDescription string
	IsPublished     bool
	SectionCount    int
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb, newID: uuid.NewString}
}

// ValidateDocument runs validation without touching storage.
func (s *PageService) ValidateDocument(doc content.Document) (*content.Page, error) {
	return content.Validate(doc)
}

// Create validates doc and stores it as a new page.
func (s *PageService) Create(doc content.Document) (*content.Page, error) {
	page, err := s.prepare(doc)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		taken, err := slugTaken(tx, page.Slug, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrPageSlugExists
		}

		var record db.Page
		record.Apply(page)
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, translateSlugConflict(err)
	}
	return page, nil
}

// Replace swaps the page stored under slug for doc. The slug may change as long
// as the new one is free.
func (s *PageService) Replace(slug string, doc content.Document) (*content.Page, error) {
	page, err := s.prepare(doc)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		record, err := findPage(tx, slug)
		if err != nil {
			return err
		}

		taken, err := slugTaken(tx, page.Slug, record.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrPageSlugExists
		}

		record.Apply(page)
		return tx.Save(record).Error
	})
	if err != nil {
		return nil, translateSlugConflict(err)
	}
	return page, nil
}

// Upsert creates the page or replaces the existing one with the same slug.
// It reports whether a new row was created.
func (s *PageService) Upsert(doc content.Document) (*content.Page, bool, error) {
	page, err := s.prepare(doc)
	if err != nil {
		return nil, false, err
	}

	created := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var record db.Page
		err := tx.Unscoped().Where("slug = ?", page.Slug).First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			record.Apply(page)
			return tx.Create(&record).Error
		case err != nil:
			return err
		}

		record.Apply(page)
		record.DeletedAt = gorm.DeletedAt{}
		return tx.Unscoped().Save(&record).Error
	})
	if err != nil {
		return nil, false, translateSlugConflict(err)
	}
	return page, created, nil
}

// GetBySlug fetches and validates a page regardless of its publication state.
func (s *PageService) GetBySlug(slug string) (*content.Page, error) {
	record, err := findPage(s.db, slug)
	if err != nil {
		return nil, err
	}
	return s.Load(record)
}

// GetPublished fetches a page for public display. Unpublished pages are
// reported as not found.
func (s *PageService) GetPublished(slug string) (*content.Page, error) {
	var record db.Page
	if err := s.db.Where("slug = ? AND is_published = ?", slug, true).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return s.Load(&record)
}

// Load decodes a stored row and re-validates it.
func (s *PageService) Load(record *db.Page) (*content.Page, error) {
	page, err := content.Validate(record.Document())
	if err != nil {
		return nil, fmt.Errorf("stored page %q: %w", record.Slug, err)
	}
	return page, nil
}

// List returns every page ordered by slug.
func (s *PageService) List() ([]PageSummary, error) {
	return s.list(s.db)
}

// ListPublished returns published pages ordered by slug.
func (s *PageService) ListPublished() ([]PageSummary, error) {
	return s.list(s.db.Where("is_published = ?", true))
}

// SetPublished toggles the publication flag of a page.
func (s *PageService) SetPublished(slug string, published bool) error {
	result := s.db.Model(&db.Page{}).Where("slug = ?", slug).Update("is_published", published)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}
	return nil
}

// Delete removes a page permanently so its slug can be reused.
func (s *PageService) Delete(slug string) error {
	result := s.db.Unscoped().Where("slug = ?", slug).Delete(&db.Page{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}
	return nil
}

func (s *PageService) prepare(doc content.Document) (*content.Page, error) {
	doc.Slug = strings.TrimSpace(doc.Slug)
	doc.Title = strings.TrimSpace(doc.Title)
	content.AssignSectionIDs(&doc, s.newID)
	return content.Validate(doc)
}

func (s *PageService) list(query *gorm.DB) ([]PageSummary, error) {
	var records []db.Page
	if err := query.Order("slug asc").Find(&records).Error; err != nil {
		return nil, err
	}

	summaries := make([]PageSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, PageSummary{
			ID:              record.ID,
			Slug:            record.Slug,
			Title:           record.Title,
			MetaTitle:       record.MetaTitle,
			MetaDescription: record.MetaDescription,
			IsPublished:     record.IsPublished,
			SectionCount:    len(record.Sections.Data()),
		})
	}
	return summaries, nil
}

func findPage(tx *gorm.DB, slug string) (*db.Page, error) {
	var record db.Page
	if err := tx.Where("slug = ?", slug).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &record, nil
}

func slugTaken(tx *gorm.DB, slug string, exceptID uint) (bool, error) {
	var count int64
	query := tx.Unscoped().Model(&db.Page{}).Where("slug = ?", slug)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translateSlugConflict maps a unique index violation on pages.slug, which a
// concurrent writer can trigger after slugTaken passed, to ErrPageSlugExists.
// The connection must be opened with TranslateError.
func translateSlugConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrPageSlugExists
	}
	return err
}
