package render

import (
	"embed"
	"fmt"
	"html/template"
	"unicode/utf8"

	"github.com/countydirectory/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// SectionView is a resolved section ready for a template or a JSON response.
// Exactly one of the payload pointers is set, matching Type.
type SectionView struct {
	ID       string              `json:"id"`
	Type     content.SectionType `json:"type"`
	Hero     *content.Hero       `json:"hero,omitempty"`
	RichText *content.RichText   `json:"richtext,omitempty"`
	Features *content.Features   `json:"features,omitempty"`
	FAQ      *content.FAQ        `json:"faq,omitempty"`
	CTA      *content.CTA        `json:"cta,omitempty"`
	BodyHTML template.HTML       `json:"body_html,omitempty"`
}

// PageView is the render model of a page.
type PageView struct {
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	MetaTitle       string        `json:"meta_title"`
	MetaDescription string        `json:"meta_description"`
	Sections        []SectionView `json:"sections"`
}

// BuildPageView resolves every section of p in authored order. Publication
// state is not checked here.
func BuildPageView(p *content.Page) (PageView, error) {
	view := PageView{
		Title:           p.Title,
		Slug:            p.Slug,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
	}
	if view.MetaTitle == "" {
		view.MetaTitle = p.Title
	}

	sections := content.OrderSections(p.Sections)
	view.Sections = make([]SectionView, 0, len(sections))
	for _, section := range sections {
		payload, err := content.ResolveSection(section)
		if err != nil {
			return PageView{}, err
		}

		sv := SectionView{ID: section.ID(), Type: section.Type()}
		switch v := payload.(type) {
		case content.Hero:
			sv.Hero = &v
		case content.RichText:
			sv.RichText = &v
			sv.BodyHTML = RenderBody(v.Body)
			if view.MetaDescription == "" {
				view.MetaDescription = summarize(PlainText(v.Body))
			}
		case content.Features:
			sv.Features = &v
		case content.FAQ:
			sv.FAQ = &v
		case content.CTA:
			sv.CTA = &v
		default:
			return PageView{}, fmt.Errorf("section %q: unsupported payload %T", section.ID(), payload)
		}
		view.Sections = append(view.Sections, sv)
	}

	return view, nil
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

func summarize(plain string) string {
	const limit = 160
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}
	runes := []rune(plain)
	return string(runes[:limit-1]) + "…"
}
