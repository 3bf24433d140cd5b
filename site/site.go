// Package site is the client-side controller of the documentation site. It
// renders pages from the content table into the main content region and keeps
// navigation, search, platform/detail toggles and the mobile menu in sync with
// the application state.
//
// Every entry point takes the controller lock, so DOM access is serialised
// across event callbacks and timer goroutines.
package site

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vcrobe/nojs-docs/clipboard"
	"github.com/vcrobe/nojs-docs/config"
	"github.com/vcrobe/nojs-docs/content"
	"github.com/vcrobe/nojs-docs/dom"
	"github.com/vcrobe/nojs-docs/events"
	"github.com/vcrobe/nojs-docs/router"
	"github.com/vcrobe/nojs-docs/signals"
)

var (
	// ErrUnknownPlatform is returned for a platform outside the configured set.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrUnknownLevel is returned for a detail level outside the configured set.
	ErrUnknownLevel = errors.New("unknown detail level")
)

// Element ids of the page shell.
const (
	SidebarID        = "sidebar"
	MainContentID    = "main-content"
	SearchInputID    = "search-input"
	MenuToggleID     = "mobile-menu-toggle"
	OverlayID        = "mobile-overlay"
	MobileSearchID   = "mobile-search-btn"
	copiedLabel      = "Copied!"
	copiedBackground = "rgba(0, 255, 0, 0.2)"
)

// State is the transient application state. Each field notifies its
// subscribers on Set; the controller hangs DOM updates off those.
type State struct {
	Page        *signals.Signal[string]
	Platform    *signals.Signal[string]
	DetailLevel *signals.Signal[string]
	Query       *signals.Signal[string]
	SidebarOpen *signals.Signal[bool]
}

func newState(cfg *config.Config) *State {
	return &State{
		Page:        signals.NewSignal(""),
		Platform:    signals.NewSignal(cfg.DefaultPlatform),
		DetailLevel: signals.NewSignal(cfg.DefaultDetailLevel),
		Query:       signals.NewSignal(""),
		SidebarOpen: signals.NewSignal(false),
	}
}

type copyFeedback struct {
	button   dom.Element
	original string
}

// Controller drives one page shell.
type Controller struct {
	mu sync.Mutex

	doc     dom.Document
	table   *content.Table
	cfg     *config.Config
	router  *router.Router
	history router.History
	clip    clipboard.Writer
	log     *slog.Logger
	state   *State
	search  *events.Debouncer

	sidebar     dom.Element
	mainContent dom.Element
	searchInput dom.Element
	menuToggle  dom.Element
	overlay     dom.Element
	searchBtn   dom.Element

	navItems        []dom.Element
	bottomNavItems  []dom.Element
	platformButtons []dom.Element
	detailButtons   []dom.Element

	shellBindings []func()
	pageBindings  []func()
	subscriptions []func()
	copying       []copyFeedback
	started       bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.log = logger }
}

// WithClipboard sets the clipboard writer. Defaults to an in-memory one.
func WithClipboard(w clipboard.Writer) Option {
	return func(c *Controller) { c.clip = w }
}

// WithHistory sets the URL history. Defaults to an in-memory one.
func WithHistory(h router.History) Option {
	return func(c *Controller) { c.history = h }
}

// New creates a controller for doc rendering from table.
func New(doc dom.Document, table *content.Table, cfg *config.Config, opts ...Option) (*Controller, error) {
	if table == nil || table.Len() == 0 {
		return nil, errors.New("content table is empty")
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Controller{
		doc:    doc,
		table:  table,
		cfg:    cfg,
		clip:   &clipboard.Memory{},
		log:    slog.Default(),
		state:  newState(cfg),
		search: events.NewDebouncer(cfg.SearchDebounce),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.history == nil {
		c.history = router.NewMemoryHistory("")
	}
	c.router = router.New(c.history, table.Has, c.log)
	c.log = c.log.With("component", "site")
	return c, nil
}

// Start looks up the shell elements, binds their listeners and renders the
// first page: the one named by the URL hash when it is known, otherwise the
// configured default, otherwise the first page of the table.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return errors.New("controller already started")
	}
	if err := c.initElements(); err != nil {
		return err
	}
	c.subscribe()
	c.initEventListeners()
	c.started = true

	c.applyPlatform(c.state.Platform.Get())
	c.activateDetailButtons(c.state.DetailLevel.Get())
	c.applyMenu(false)

	start := c.cfg.DefaultPage
	if !c.table.Has(start) {
		start = c.table.IDs()[0]
		c.log.Warn("default page not found, using first page", "default", c.cfg.DefaultPage, "page", start)
	}
	if hashPage, ok := c.router.Start(c.popTo); ok {
		start = hashPage
	}
	return c.navigate(start, c.router.Replace)
}

// Stop releases every listener, subscription and pending timer.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.search.Cancel()
	c.router.Stop()
	c.releasePage()
	for _, release := range c.shellBindings {
		release()
	}
	for _, unsubscribe := range c.subscriptions {
		unsubscribe()
	}
	c.shellBindings = nil
	c.subscriptions = nil
	c.started = false
}

// Inspect runs fn while no listener or timer can touch the DOM.
func (c *Controller) Inspect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// CurrentPage returns the id of the displayed page.
func (c *Controller) CurrentPage() string { return c.state.Page.Get() }

// Platform returns the active platform filter.
func (c *Controller) Platform() string { return c.state.Platform.Get() }

// DetailLevel returns the active detail level.
func (c *Controller) DetailLevel() string { return c.state.DetailLevel.Get() }

// Query returns the active, lower-cased search query.
func (c *Controller) Query() string { return c.state.Query.Get() }

// SidebarOpen reports whether the mobile menu is open.
func (c *Controller) SidebarOpen() bool { return c.state.SidebarOpen.Get() }

func (c *Controller) initElements() error {
	c.mainContent = c.doc.ByID(MainContentID)
	if c.mainContent == nil {
		return fmt.Errorf("main content element #%s not found", MainContentID)
	}
	c.sidebar = c.doc.ByID(SidebarID)
	c.searchInput = c.doc.ByID(SearchInputID)
	c.menuToggle = c.doc.ByID(MenuToggleID)
	c.overlay = c.doc.ByID(OverlayID)
	c.searchBtn = c.doc.ByID(MobileSearchID)

	c.navItems = c.doc.QueryAll(".nav-item")
	c.bottomNavItems = c.doc.QueryAll(".bottom-nav-item")
	c.platformButtons = c.doc.QueryAll(".platform-btn")
	c.detailButtons = c.doc.QueryAll(".detail-btn")
	return nil
}

func (c *Controller) subscribe() {
	c.subscriptions = append(c.subscriptions,
		c.state.Page.Subscribe(c.updateActiveNavItem),
		c.state.Platform.Subscribe(c.applyPlatform),
		c.state.DetailLevel.Subscribe(c.applyDetailLevel),
		c.state.Query.Subscribe(func(string) { c.filterNavigation() }),
		c.state.SidebarOpen.Subscribe(c.applyMenu),
	)
}

// listenable is satisfied by both dom.Document and dom.Element.
type listenable interface {
	On(event string, fn dom.Listener) func()
}

// listen binds fn under the controller lock.
func (c *Controller) listen(target listenable, event string, fn func(events.Event)) func() {
	return target.On(event, func(ev events.Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		fn(ev)
	})
}

// bindClick binds a click listener that cancels the default action.
func (c *Controller) bindClick(el dom.Element, fn func(el dom.Element)) func() {
	el.SetStyle("cursor", "pointer")
	return c.listen(el, "click", func(ev events.Event) {
		ev.PreventDefault()
		fn(el)
	})
}

func (c *Controller) initEventListeners() {
	bind := func(release func()) {
		c.shellBindings = append(c.shellBindings, release)
	}

	for _, item := range c.bottomNavItems {
		bind(c.bindClick(item, c.navigateFrom))
	}
	for _, item := range c.navItems {
		bind(c.bindClick(item, c.navigateFrom))
	}
	for _, btn := range c.platformButtons {
		bind(c.bindClick(btn, func(el dom.Element) {
			if p := el.Data("platform"); p != "" {
				_ = c.switchPlatform(p)
			}
		}))
	}
	for _, btn := range c.detailButtons {
		bind(c.bindClick(btn, func(el dom.Element) {
			if level := el.Data("level"); level != "" {
				_ = c.switchDetailLevel(level)
			}
		}))
	}

	if c.menuToggle != nil {
		bind(c.bindClick(c.menuToggle, func(dom.Element) { c.toggleMobileMenu() }))
	}
	if c.overlay != nil {
		bind(c.bindClick(c.overlay, func(dom.Element) { c.closeMobileMenu() }))
	}
	if c.searchBtn != nil {
		bind(c.bindClick(c.searchBtn, func(dom.Element) {
			c.openMobileMenu()
			c.focusSearchAfter(c.cfg.SearchFocusDelay)
		}))
	}

	if c.searchInput != nil {
		bind(c.searchInput.On("input", func(ev events.Event) {
			value := ev.Value
			c.search.Call(func() { c.SetSearchQuery(value) })
		}))
		bind(c.listen(c.searchInput, "keydown", func(ev events.Event) {
			if ev.Key != "Enter" {
				return
			}
			// Act on what is in the input, not on a query still waiting
			// in the debouncer.
			c.search.Cancel()
			value := ev.Value
			if value == "" {
				value = c.searchInput.Value()
			}
			c.setSearchQuery(value)
			c.searchAndNavigate()
		}))
	}

	bind(c.listen(c.doc, "keydown", func(ev events.Event) {
		if ev.Shortcut("k") {
			ev.PreventDefault()
			if c.searchInput != nil {
				c.searchInput.Focus()
			}
		}
		if ev.Key == "Escape" {
			c.closeMobileMenu()
		}
	}))
}

func (c *Controller) navigateFrom(el dom.Element) {
	if page := el.Data("page"); page != "" {
		_ = c.navigate(page, c.router.Push)
	}
}
