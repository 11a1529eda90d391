package content

import (
	"fmt"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether slug is non-empty, lowercase and hyphenated.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Validate checks doc against the section schema and returns the typed page.
// All violations are collected; the returned error is a ValidationErrors.
func Validate(doc Document) (*Page, error) {
	v := &validator{}

	if strings.TrimSpace(doc.Title) == "" {
		v.add(ErrMalformedPage, "title", "", "title", "title is required")
	}
	switch {
	case doc.Slug == "":
		v.add(ErrMalformedPage, "slug", "", "slug", "slug is required")
	case !ValidSlug(doc.Slug):
		v.add(ErrMalformedPage, "slug", "", "slug", fmt.Sprintf("slug %q must be lowercase words joined by hyphens", doc.Slug))
	}

	if doc.Content == nil || doc.Content.Sections == nil {
		v.add(ErrMalformedPage, "content.sections", "", "sections", "sections list is missing")
		return nil, v.errs
	}

	page := &Page{
		Title:           doc.Title,
		Slug:            doc.Slug,
		MetaTitle:       doc.MetaTitle,
		MetaDescription: doc.MetaDescription,
		IsPublished:     doc.IsPublished,
		Sections:        make([]Section, 0, len(doc.Content.Sections)),
	}

	seen := make(map[string]int, len(doc.Content.Sections))
	for idx, raw := range doc.Content.Sections {
		base := fmt.Sprintf("content.sections[%d]", idx)
		if len(raw.mismatches) > 0 {
			v.mismatched(base, raw)
			continue
		}
		if raw.ID != "" {
			if first, ok := seen[raw.ID]; ok {
				v.add(ErrDuplicateSectionID, base+".id", raw.ID, "id",
					fmt.Sprintf("id already used by content.sections[%d]", first))
			} else {
				seen[raw.ID] = idx
			}
		}

		section, ok := v.section(base, raw)
		if ok {
			page.Sections = append(page.Sections, section)
		}
	}

	if len(v.errs) > 0 {
		return nil, v.errs
	}
	return page, nil
}

type validator struct {
	errs ValidationErrors
}

func (v *validator) add(kind error, path, sectionID, field, reason string) {
	v.errs = append(v.errs, &FieldError{
		Kind:      kind,
		Path:      path,
		SectionID: sectionID,
		Field:     field,
		Reason:    reason,
	})
}

// mismatched reports members that could not be decoded into a section.
func (v *validator) mismatched(base string, raw RawSection) {
	for _, m := range raw.mismatches {
		reason := fmt.Sprintf("expected %s, got %s", m.want, m.got)
		if m.field == "" {
			v.add(ErrMalformedPage, base, raw.ID, "section", "section "+reason)
			continue
		}
		v.add(ErrInvalidFieldType, base+"."+m.field, raw.ID, m.field, reason)
	}
}

// sectionScope tracks where in the document a section's fields live.
type sectionScope struct {
	v       *validator
	base    string
	id      string
	content map[string]any
	failed  bool
}

func (s *sectionScope) fail(kind error, field, subpath, reason string) {
	s.failed = true
	s.v.add(kind, s.base+".content."+subpath, s.id, field, reason)
}

func (v *validator) section(base string, raw RawSection) (Section, bool) {
	kind := SectionType(raw.Type)
	if !kind.Known() {
		v.add(ErrUnknownSectionType, base+".type", raw.ID, "type",
			fmt.Sprintf("type %q is not one of %s", raw.Type, knownTypeList()))
		return Section{}, false
	}

	scope := &sectionScope{v: v, base: base, id: raw.ID, content: raw.Content}
	var payload Payload
	switch kind {
	case SectionHero:
		payload = Hero{
			Title:    scope.requiredString("title"),
			Subtitle: scope.requiredString("subtitle"),
			Image:    scope.optionalString("image"),
			CTAText:  scope.optionalString("cta_text"),
			CTALink:  scope.optionalString("cta_link"),
		}
	case SectionRichText, SectionText:
		payload = RichText{
			Heading: scope.optionalString("heading"),
			Body:    scope.requiredString("body"),
		}
	case SectionFeatures:
		heading := scope.requiredString("heading")
		var items []Feature
		scope.list("items", []string{"title", "description"}, func(values map[string]string) {
			items = append(items, Feature{Title: values["title"], Description: values["description"]})
		})
		payload = Features{Heading: heading, Items: items}
	case SectionFAQ:
		heading := scope.requiredString("heading")
		var items []Question
		scope.list("items", []string{"question", "answer"}, func(values map[string]string) {
			items = append(items, Question{Question: values["question"], Answer: values["answer"]})
		})
		payload = FAQ{Heading: heading, Items: items}
	case SectionCTA:
		payload = CTA{
			Heading:    scope.requiredString("heading"),
			Text:       scope.requiredString("text"),
			ButtonText: scope.requiredString("button_text"),
			ButtonLink: scope.requiredString("button_link"),
		}
	}

	if scope.failed {
		return Section{}, false
	}
	return Section{id: raw.ID, kind: kind, payload: payload}, true
}

func (s *sectionScope) requiredString(field string) string {
	value, present := s.content[field]
	if !present || value == nil {
		s.fail(ErrMissingRequiredField, field, field, "field is required")
		return ""
	}
	str, ok := value.(string)
	if !ok {
		s.fail(ErrInvalidFieldType, field, field, fmt.Sprintf("expected a string, got %s", kindOf(value)))
		return ""
	}
	if strings.TrimSpace(str) == "" {
		s.fail(ErrMissingRequiredField, field, field, "field must not be empty")
		return ""
	}
	return str
}

func (s *sectionScope) optionalString(field string) string {
	value, present := s.content[field]
	if !present || value == nil {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		s.fail(ErrInvalidFieldType, field, field, fmt.Sprintf("expected a string, got %s", kindOf(value)))
		return ""
	}
	return str
}

// list checks an ordered list of objects that each carry the given string keys.
func (s *sectionScope) list(field string, keys []string, each func(map[string]string)) {
	value, present := s.content[field]
	if !present || value == nil {
		s.fail(ErrMissingRequiredField, field, field, "field is required")
		return
	}

	elements, ok := asList(value)
	if !ok {
		s.fail(ErrMalformedListField, field, field, fmt.Sprintf("expected a list, got %s", kindOf(value)))
		return
	}
	if len(elements) == 0 {
		s.fail(ErrMalformedListField, field, field, "list must not be empty")
		return
	}

	shape := strings.Join(keys, " and ")
	for idx, element := range elements {
		elemPath := fmt.Sprintf("%s[%d]", field, idx)
		obj, ok := asObject(element)
		if !ok {
			s.fail(ErrMalformedListField, field, elemPath,
				fmt.Sprintf("expected an object with %s, got %s", shape, kindOf(element)))
			continue
		}

		values := make(map[string]string, len(keys))
		complete := true
		for _, key := range keys {
			raw, present := obj[key]
			str, isString := raw.(string)
			switch {
			case !present || raw == nil:
				s.fail(ErrMalformedListField, field, elemPath+"."+key, key+" is required")
				complete = false
			case !isString:
				s.fail(ErrMalformedListField, field, elemPath+"."+key,
					fmt.Sprintf("expected a string, got %s", kindOf(raw)))
				complete = false
			case strings.TrimSpace(str) == "":
				s.fail(ErrMalformedListField, field, elemPath+"."+key, key+" must not be empty")
				complete = false
			default:
				values[key] = str
			}
		}
		if complete {
			each(values)
		}
	}
}

func asList(value any) ([]any, bool) {
	switch list := value.(type) {
	case []any:
		return list, true
	case []map[string]any:
		out := make([]any, 0, len(list))
		for _, item := range list {
			out = append(out, item)
		}
		return out, true
	case []map[string]string:
		out := make([]any, 0, len(list))
		for _, item := range list {
			out = append(out, item)
		}
		return out, true
	}
	return nil, false
}

func asObject(value any) (map[string]any, bool) {
	switch obj := value.(type) {
	case map[string]any:
		return obj, true
	case map[string]string:
		out := make(map[string]any, len(obj))
		for k, v := range obj {
			out[k] = v
		}
		return out, true
	}
	return nil, false
}

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, float64, float32, uint, uint64:
		return "number"
	}
	if _, ok := asList(value); ok {
		return "list"
	}
	if _, ok := asObject(value); ok {
		return "object"
	}
	return fmt.Sprintf("%T", value)
}

func knownTypeList() string {
	names := make([]string, 0, len(SectionTypes))
	for _, t := range SectionTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
