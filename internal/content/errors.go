package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedPage        = errors.New("malformed page")
	ErrUnknownSectionType   = errors.New("unknown section type")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrMalformedListField   = errors.New("malformed list field")
	ErrInvalidFieldType     = errors.New("invalid field type")
	ErrDuplicateSectionID   = errors.New("duplicate section id")

	// ErrUnresolvedSection means a section that did not come out of Validate
	// was handed to ResolveSection. It is a caller bug, not an authoring error.
	ErrUnresolvedSection = errors.New("section was not produced by Validate")
)

// FieldError describes a single violation found while validating a page.
type FieldError struct {
	Kind      error
	Path      string
	SectionID string
	Field     string
	Reason    string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Path)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())
	if e.Reason != "" {
		b.WriteString(" (")
		b.WriteString(e.Reason)
		b.WriteString(")")
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// KindName returns a stable snake_case name for the error kind.
func (e *FieldError) KindName() string {
	switch e.Kind {
	case ErrMalformedPage:
		return "malformed_page"
	case ErrUnknownSectionType:
		return "unknown_section_type"
	case ErrMissingRequiredField:
		return "missing_required_field"
	case ErrMalformedListField:
		return "malformed_list_field"
	case ErrInvalidFieldType:
		return "invalid_field_type"
	case ErrDuplicateSectionID:
		return "duplicate_section_id"
	}
	return "unknown"
}

// ValidationErrors collects every violation found in one validation pass.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	}
	parts := make([]string, 0, len(v))
	for _, err := range v {
		parts = append(parts, err.Error())
	}
	return fmt.Sprintf("%d validation errors: %s", len(v), strings.Join(parts, "; "))
}

func (v ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(v))
	for _, err := range v {
		out = append(out, err)
	}
	return out
}

// Filter returns the errors of the given kind.
func (v ValidationErrors) Filter(kind error) ValidationErrors {
	var out ValidationErrors
	for _, err := range v {
		if errors.Is(err, kind) {
			out = append(out, err)
		}
	}
	return out
}

// AsValidationErrors extracts ValidationErrors from err, if present.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
