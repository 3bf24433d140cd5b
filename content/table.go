package content

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrUnknownPage is returned when a page id is not in the table.
	ErrUnknownPage = errors.New("page not found")
	// ErrDuplicatePage is returned when two entries share an id.
	ErrDuplicatePage = errors.New("duplicate page id")
)

// Table is the read-only content table. It keeps declaration order, which is
// the order "first match" searches walk.
type Table struct {
	ids   []string
	pages map[string]*Page
}

// NewTable builds a table from pages in the given order.
func NewTable(pages ...*Page) (*Table, error) {
	t := &Table{pages: make(map[string]*Page, len(pages))}
	for _, p := range pages {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return nil, fmt.Errorf("page %q: id is required", p.Title)
		}
		if _, dup := t.pages[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePage, p.ID)
		}
		p.index()
		t.ids = append(t.ids, p.ID)
		t.pages[p.ID] = p
	}
	return t, nil
}

// Lookup returns the page for id.
func (t *Table) Lookup(id string) (*Page, bool) {
	p, ok := t.pages[id]
	return p, ok
}

// Get is Lookup with an ErrUnknownPage error for missing ids.
func (t *Table) Get(id string) (*Page, error) {
	p, ok := t.pages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, id)
	}
	return p, nil
}

// Has reports whether id is a key of the table.
func (t *Table) Has(id string) bool {
	_, ok := t.pages[id]
	return ok
}

// Len returns the number of pages.
func (t *Table) Len() int {
	return len(t.ids)
}

// IDs returns the page ids in declaration order.
func (t *Table) IDs() []string {
	return slices.Clone(t.ids)
}

// All iterates pages in declaration order.
func (t *Table) All() iter.Seq2[string, *Page] {
	return func(yield func(string, *Page) bool) {
		for _, id := range t.ids {
			if !yield(id, t.pages[id]) {
				return
			}
		}
	}
}

// FirstMatch returns the first page, in declaration order, whose search text
// contains query. An empty query matches nothing.
func (t *Table) FirstMatch(query string) (*Page, bool) {
	if query == "" {
		return nil, false
	}
	for _, p := range t.All() {
		if p.Matches(query) {
			return p, true
		}
	}
	return nil, false
}
