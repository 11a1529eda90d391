package render

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithXHTML(), html.WithUnsafe()),
	)
	sanitizer = bluemonday.UGCPolicy()

	// <br>, <br/>, <BR />
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	headingMarker    = regexp.MustCompile(`^\s*#+\s*`)
)

// RenderBody turns richtext body markup into sanitized HTML. Literal <br>
// tags mark paragraph breaks, so they are expanded into blank lines before
// the markdown pass; that also lets "### Heading" after a <br> start a block.
func RenderBody(markup string) template.HTML {
	source := normalizeBody(markup)
	if source == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(markup))
	}

	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

func normalizeBody(markup string) string {
	expanded := lineBreakPattern.ReplaceAllString(markup, "\n\n")
	lines := strings.Split(expanded, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// PlainText strips markup from a body and collapses whitespace, for use in
// listings and meta fallbacks. Only the markup subset is removed: tags, **bold**
// markers and leading # runs of subheadings.
func PlainText(markup string) string {
	stripped := bluemonday.StrictPolicy().Sanitize(lineBreakPattern.ReplaceAllString(markup, "\n"))
	stripped = stdhtml.UnescapeString(stripped)
	stripped = strings.ReplaceAll(stripped, "**", "")

	lines := strings.Split(stripped, "\n")
	for i, line := range lines {
		lines[i] = headingMarker.ReplaceAllString(line, "")
	}
	return strings.Join(strings.Fields(strings.Join(lines, "\n")), " ")
}
