// Package router keeps the current page id in the URL hash so pages can be
// bookmarked and restored on back/forward navigation.
package router

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/vcrobe/nojs-docs/content"
)

// History is the browser history seen through the URL hash.
type History interface {
	// Push adds an entry for page, with page as its state, and makes it current.
	Push(page string)
	// Replace rewrites the current entry to page.
	Replace(page string)
	// Hash returns location.hash, including the leading '#' when present.
	Hash() string
	// OnPop registers fn for back/forward moves. fn receives the page stored
	// as the entry's state, or "" when the entry has none.
	OnPop(fn func(page string)) (release func())
}

// Router maps page ids to history entries. Only ids for which known returns
// true are ever pushed or reported.
type Router struct {
	mu      sync.Mutex
	history History
	known   func(id string) bool
	current string
	release func()
	log     *slog.Logger
}

// New creates a router over history.
func New(history History, known func(id string) bool, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		history: history,
		known:   known,
		log:     logger.With("component", "router"),
	}
}

// Start subscribes onPop to back/forward moves onto known pages and returns
// the page named by the current hash, if it is known.
func (r *Router) Start(onPop func(page string)) (initial string, ok bool) {
	r.mu.Lock()
	if r.release != nil {
		r.release()
	}
	r.release = r.history.OnPop(func(page string) {
		if page == "" || !r.known(page) {
			r.log.Debug("popstate ignored", "page", page)
			return
		}
		r.mu.Lock()
		r.current = page
		r.mu.Unlock()
		onPop(page)
	})
	r.mu.Unlock()

	initial = PageFromHash(r.history.Hash())
	if initial == "" || !r.known(initial) {
		return "", false
	}
	return initial, true
}

// Push makes page current and adds a history entry for it.
func (r *Router) Push(page string) error {
	return r.set(page, r.history.Push)
}

// Replace makes page current without adding a history entry.
func (r *Router) Replace(page string) error {
	return r.set(page, r.history.Replace)
}

func (r *Router) set(page string, write func(string)) error {
	if !r.known(page) {
		return fmt.Errorf("%w: %q", content.ErrUnknownPage, page)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	write(page)
	r.current = page
	return nil
}

// Current returns the page last pushed, replaced or popped to.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Stop releases the back/forward subscription.
func (r *Router) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.release != nil {
		r.release()
		r.release = nil
	}
}

// HashFor returns the location hash for page.
func HashFor(page string) string {
	return "#" + url.PathEscape(page)
}

// PageFromHash returns the page id encoded in a location hash.
func PageFromHash(hash string) string {
	hash = strings.TrimPrefix(hash, "#")
	if page, err := url.PathUnescape(hash); err == nil {
		return page
	}
	return hash
}
