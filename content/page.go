// Package content holds the static page table the site renders from: page
// entries, the ordered table, and the YAML loader that builds it.
package content

import "strings"

// Page is one entry of the content table.
type Page struct {
	ID          string
	Title       string
	Description string
	Breadcrumb  []string
	Platform    string // optional platform tag, e.g. "ios"

	// Content is the flat markup, used when no level body applies.
	Content string
	// Levels maps a detail level name to its markup.
	Levels map[string]string

	searchText string
	indexed    bool
}

// Markup returns the body for the given detail level, falling back to the
// flat content when the page has no non-empty body for that level.
func (p *Page) Markup(level string) string {
	if body := p.Levels[level]; body != "" {
		return body
	}
	return p.Content
}

// HasLevel reports whether the page carries its own body for level.
func (p *Page) HasLevel(level string) bool {
	return p.Levels[level] != ""
}

// SearchText is the lower-cased plain text searched by queries: title,
// description and the tag-stripped text of every body.
func (p *Page) SearchText() string {
	if !p.indexed {
		p.index()
	}
	return p.searchText
}

// Matches reports whether query, already lower-cased, occurs in the page's
// search text. The empty query matches every page.
func (p *Page) Matches(query string) bool {
	return strings.Contains(p.SearchText(), query)
}

func (p *Page) index() {
	parts := []string{p.Title, p.Description, PlainText(p.Content)}
	for _, level := range sortedKeys(p.Levels) {
		parts = append(parts, PlainText(p.Levels[level]))
	}
	p.searchText = strings.ToLower(strings.Join(strings.Fields(strings.Join(parts, " ")), " "))
	p.indexed = true
}
