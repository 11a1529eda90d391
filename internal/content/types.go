package content

// SectionType tags the shape of a section's content.
type SectionType string

const (
	SectionHero     SectionType = "hero"
	SectionRichText SectionType = "richtext"
	SectionText     SectionType = "text"
	SectionFeatures SectionType = "features"
	SectionFAQ      SectionType = "faq"
	SectionCTA      SectionType = "cta"
)

// SectionTypes lists every recognized section type.
var SectionTypes = []SectionType{
	SectionHero,
	SectionRichText,
	SectionText,
	SectionFeatures,
	SectionFAQ,
	SectionCTA,
}

// Known reports whether t belongs to the closed set of section types.
func (t SectionType) Known() bool {
	switch t {
	case SectionHero, SectionRichText, SectionText, SectionFeatures, SectionFAQ, SectionCTA:
		return true
	}
	return false
}

// Document is a page record as authored or stored, before validation.
type Document struct {
	Title           string      `json:"title" yaml:"title"`
	Slug            string      `json:"slug" yaml:"slug"`
	MetaTitle       string      `json:"meta_title" yaml:"meta_title"`
	MetaDescription string      `json:"meta_description" yaml:"meta_description"`
	IsPublished     bool        `json:"is_published" yaml:"is_published"`
	Content         *RawContent `json:"content" yaml:"content"`
}

// RawContent wraps the ordered section list of a Document.
type RawContent struct {
	Sections []RawSection `json:"sections" yaml:"sections"`
}

// RawSection is a single unvalidated section. Decoding never fails on a
// section of the wrong shape; the mismatch is kept and reported by Validate.
type RawSection struct {
	ID      string         `json:"id" yaml:"id"`
	Type    string         `json:"type" yaml:"type"`
	Content map[string]any `json:"content" yaml:"content"`

	mismatches []shapeMismatch
}

// Page is a validated page document.
type Page struct {
	Title           string
	Slug            string
	MetaTitle       string
	MetaDescription string
	IsPublished     bool
	Sections        []Section
}

// Section is a validated section. Its payload is only reachable through
// ResolveSection.
type Section struct {
	id      string
	kind    SectionType
	payload Payload
}

// ID returns the section identifier, unique within its page.
func (s Section) ID() string { return s.id }

// Type returns the section tag.
func (s Section) Type() SectionType { return s.kind }

// Payload is implemented by every section content shape.
type Payload interface {
	fields() map[string]any
}

// Hero is the content of a hero section.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image,omitempty"`
	CTAText  string `json:"cta_text,omitempty"`
	CTALink  string `json:"cta_link,omitempty"`
}

// RichText is the content of richtext and text sections. Body carries the
// inline markup subset and is not plain text.
type RichText struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"`
}

// Feature is one entry of a features section.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Features is the content of a features section.
type Features struct {
	Heading string    `json:"heading"`
	Items   []Feature `json:"items"`
}

// Question is one entry of a faq section.
type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQ is the content of a faq section.
type FAQ struct {
	Heading string     `json:"heading"`
	Items   []Question `json:"items"`
}

// CTA is the content of a call-to-action section.
type CTA struct {
	Heading    string `json:"heading"`
	Text       string `json:"text"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
}

func (h Hero) fields() map[string]any {
	out := map[string]any{"title": h.Title, "subtitle": h.Subtitle}
	putOptional(out, "image", h.Image)
	putOptional(out, "cta_text", h.CTAText)
	putOptional(out, "cta_link", h.CTALink)
	return out
}

func (r RichText) fields() map[string]any {
	out := map[string]any{"body": r.Body}
	putOptional(out, "heading", r.Heading)
	return out
}

func (f Features) fields() map[string]any {
	items := make([]any, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, map[string]any{"title": item.Title, "description": item.Description})
	}
	return map[string]any{"heading": f.Heading, "items": items}
}

func (f FAQ) fields() map[string]any {
	items := make([]any, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, map[string]any{"question": item.Question, "answer": item.Answer})
	}
	return map[string]any{"heading": f.Heading, "items": items}
}

func (c CTA) fields() map[string]any {
	return map[string]any{
		"heading":     c.Heading,
		"text":        c.Text,
		"button_text": c.ButtonText,
		"button_link": c.ButtonLink,
	}
}

func putOptional(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
