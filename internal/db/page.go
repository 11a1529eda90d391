package db

import (
	"github.com/countydirectory/internal/content"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Page stores a composed page. Sections are kept as the raw JSON document and
// re-validated on read; a page is always replaced wholesale.
type Page struct {
	gorm.Model
	Slug            string `gorm:"size:160;uniqueIndex;not null"`
	Title           string `gorm:"not null"`
	MetaTitle       string
	MetaDescription string `gorm:"type:text"`
	IsPublished     bool   `gorm:"index;not null;default:false"`
	Sections        datatypes.JSONType[[]content.RawSection]
}

// Document rebuilds the unvalidated page document from the stored row.
func (p *Page) Document() content.Document {
	sections := p.Sections.Data()
	if sections == nil {
		sections = []content.RawSection{}
	}
	return content.Document{
		Title:           p.Title,
		Slug:            p.Slug,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		Content:         &content.RawContent{Sections: sections},
	}
}

// Apply overwrites every page field from a validated page.
func (p *Page) Apply(page *content.Page) {
	doc := page.Document()
	p.Slug = doc.Slug
	p.Title = doc.Title
	p.MetaTitle = doc.MetaTitle
	p.MetaDescription = doc.MetaDescription
	p.IsPublished = doc.IsPublished
	p.Sections = datatypes.NewJSONType(doc.Content.Sections)
}
