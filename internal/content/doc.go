// Package content defines the page content model: a page is an ordered list
// of typed sections (hero, richtext, text, features, faq, cta), each with a
// content shape fixed by its type.
//
// Documents come in loosely typed from storage or authoring tools and go
// through Validate, which either returns a *Page or a ValidationErrors listing
// every violation. Renderers then call ResolveSection on each section and
// switch on the concrete payload type. The package holds no state and all of
// its functions are safe for concurrent use.
package content
