package content

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestResolveSectionReturnsTypedPayloads(t *testing.T) {
	page, err := Validate(samplePage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, section := range page.Sections {
		payload, err := ResolveSection(section)
		if err != nil {
			t.Fatalf("section %s: %v", section.ID(), err)
		}

		switch section.Type() {
		case SectionHero:
			hero, ok := payload.(Hero)
			if !ok {
				t.Fatalf("expected Hero, got %T", payload)
			}
			if hero.Title != "Welcome to Navarro County" || hero.Subtitle != "Small towns, big hearts" || hero.CTALink != "" {
				t.Fatalf("unexpected hero %+v", hero)
			}
		case SectionRichText:
			body, ok := payload.(RichText)
			if !ok {
				t.Fatalf("expected RichText, got %T", payload)
			}
			if body.Heading != "Our Story" || !strings.Contains(body.Body, "**1846**") {
				t.Fatalf("unexpected richtext %+v", body)
			}
		case SectionText:
			body, ok := payload.(RichText)
			if !ok || body.Body != "Plain note." {
				t.Fatalf("unexpected text payload %#v", payload)
			}
		case SectionFeatures:
			features, ok := payload.(Features)
			if !ok || len(features.Items) != 2 {
				t.Fatalf("unexpected features payload %#v", payload)
			}
			if features.Items[0].Title != "Schools" || features.Items[1].Title != "Food" {
				t.Fatalf("unexpected feature order %+v", features.Items)
			}
		case SectionFAQ:
			faq, ok := payload.(FAQ)
			if !ok || len(faq.Items) != 1 || faq.Items[0].Answer != "Corsicana." {
				t.Fatalf("unexpected faq payload %#v", payload)
			}
		case SectionCTA:
			cta, ok := payload.(CTA)
			if !ok || cta.ButtonLink != "/list-your-business" {
				t.Fatalf("unexpected cta payload %#v", payload)
			}
		default:
			t.Fatalf("unexpected section type %q", section.Type())
		}
	}
}

func TestResolveSectionRejectsUnvalidatedSection(t *testing.T) {
	if _, err := ResolveSection(Section{}); !errors.Is(err, ErrUnresolvedSection) {
		t.Fatalf("expected ErrUnresolvedSection, got %v", err)
	}
}

func TestFAQOnlyResolvesWithNonEmptyItems(t *testing.T) {
	cases := map[string]any{
		"empty list":    []any{},
		"string items":  "Q: A",
		"missing pairs": []any{map[string]any{"question": "Only a question"}},
	}

	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			doc := Document{
				Title: "FAQ",
				Slug:  "faq",
				Content: &RawContent{Sections: []RawSection{
					{ID: "faq-1", Type: "faq", Content: map[string]any{"heading": "FAQ", "items": items}},
				}},
			}
			page, err := Validate(doc)
			if err == nil || page != nil {
				t.Fatalf("expected rejection, got page=%v err=%v", page, err)
			}

			// Without a validated page the only section value available is the zero one.
			if _, err := ResolveSection(Section{}); !errors.Is(err, ErrUnresolvedSection) {
				t.Fatalf("expected ErrUnresolvedSection, got %v", err)
			}
		})
	}
}

func TestOrderSectionsPreservesInputOrder(t *testing.T) {
	doc := Document{Title: "Order", Slug: "order", Content: &RawContent{}}
	names := []string{"zulu", "alpha", "mike", "bravo", "yankee"}
	for _, name := range names {
		doc.Content.Sections = append(doc.Content.Sections, RawSection{
			ID:      name,
			Type:    "text",
			Content: map[string]any{"body": fmt.Sprintf("section %s", name)},
		})
	}

	page, err := Validate(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ordered := OrderSections(page.Sections)
	if len(ordered) != len(names) {
		t.Fatalf("expected %d sections, got %d", len(names), len(ordered))
	}
	for i, s := range ordered {
		if s.ID() != names[i] {
			t.Fatalf("position %d: expected %s, got %s", i, names[i], s.ID())
		}
	}

	ordered[0] = ordered[1]
	if page.Sections[0].ID() != "zulu" {
		t.Fatalf("OrderSections must return a copy")
	}
}

func TestAssignSectionIDsKeepsExisting(t *testing.T) {
	doc := samplePage()
	doc.Content.Sections[1].ID = ""
	doc.Content.Sections[4].ID = ""

	counter := 0
	assigned := AssignSectionIDs(&doc, func() string {
		counter++
		return fmt.Sprintf("generated-%d", counter)
	})

	if assigned != 2 {
		t.Fatalf("expected 2 assigned ids, got %d", assigned)
	}
	got := []string{doc.Content.Sections[0].ID, doc.Content.Sections[1].ID, doc.Content.Sections[4].ID}
	want := []string{"hero-1", "generated-1", "generated-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
	if n := AssignSectionIDs(nil, nil); n != 0 {
		t.Fatalf("expected nil document to assign nothing, got %d", n)
	}
}
