package content

import (
	"fmt"
	"slices"
)

// ResolveSection returns the typed payload a renderer switches on. The
// concrete type is one of Hero, RichText, Features, FAQ or CTA; richtext and
// text sections both resolve to RichText and are told apart by s.Type().
func ResolveSection(s Section) (Payload, error) {
	if s.payload == nil || !s.kind.Known() {
		return nil, fmt.Errorf("resolve section %q: %w", s.id, ErrUnresolvedSection)
	}
	return s.payload, nil
}

// OrderSections returns the sections in the order they were authored.
// Section order is significant and is never rearranged.
func OrderSections(sections []Section) []Section {
	return slices.Clone(sections)
}

// Document converts a validated page back into its raw document form.
func (p *Page) Document() Document {
	sections := make([]RawSection, 0, len(p.Sections))
	for _, s := range OrderSections(p.Sections) {
		raw := RawSection{ID: s.id, Type: string(s.kind)}
		if s.payload != nil {
			raw.Content = s.payload.fields()
		}
		sections = append(sections, raw)
	}

	return Document{
		Title:           p.Title,
		Slug:            p.Slug,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		IsPublished:     p.IsPublished,
		Content:         &RawContent{Sections: sections},
	}
}

// AssignSectionIDs fills empty section ids using gen. Existing ids are kept.
func AssignSectionIDs(doc *Document, gen func() string) int {
	if doc == nil || doc.Content == nil {
		return 0
	}
	assigned := 0
	for i := range doc.Content.Sections {
		if doc.Content.Sections[i].ID == "" {
			doc.Content.Sections[i].ID = gen()
			assigned++
		}
	}
	return assigned
}
