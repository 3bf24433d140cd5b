package site

import (
	"fmt"

	"github.com/vcrobe/nojs-docs/config"
	"github.com/vcrobe/nojs-docs/content"
	"github.com/vcrobe/nojs-docs/dom"
	"github.com/vcrobe/nojs-docs/events"
	"github.com/vcrobe/nojs-docs/vdom"
)

// NavigateTo displays page id and adds a history entry for it. An unknown id
// is logged and leaves everything as it was.
func (c *Controller) NavigateTo(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.navigate(id, c.router.Push)
}

// navigate renders id, highlights its nav entries, closes the mobile menu and
// records id through write.
func (c *Controller) navigate(id string, write func(string) error) error {
	if !c.table.Has(id) {
		c.log.Warn("page not found", "page", id)
		return fmt.Errorf("%w: %q", content.ErrUnknownPage, id)
	}

	c.log.Debug("navigate", "page", id)
	c.loadPage(id)
	c.state.Page.Set(id)
	c.state.SidebarOpen.Set(false)
	return write(id)
}

// popTo follows a back/forward move without touching history.
func (c *Controller) popTo(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.log.Debug("popstate", "page", id)
	c.loadPage(id)
	c.state.Page.Set(id)
}

// loadPage replaces the main content with page id rendered at the current
// detail level, resets scroll and rebinds the page's interactive elements.
func (c *Controller) loadPage(id string) {
	p, ok := c.table.Lookup(id)
	if !ok {
		return
	}

	c.releasePage()
	c.mainContent.SetHTML(vdom.RenderHTML(PageView(p, c.state.DetailLevel.Get())))
	c.mainContent.ScrollTo(0, 0)
	c.initPageInteractions()
}

func (c *Controller) releasePage() {
	for _, release := range c.pageBindings {
		release()
	}
	c.pageBindings = nil
	c.copying = nil
}

func (c *Controller) updateActiveNavItem(id string) {
	isPage := func(el dom.Element) bool { return el.Data("page") == id }
	dom.ActivateWhere(c.navItems, isPage)
	dom.ActivateWhere(c.bottomNavItems, isPage)
}

// initPageInteractions binds the interactive elements of freshly rendered
// markup and applies the current platform and detail level to it.
func (c *Controller) initPageInteractions() {
	bind := func(release func()) {
		c.pageBindings = append(c.pageBindings, release)
	}

	for _, btn := range c.mainContent.QueryAll(".tab-btn") {
		bind(c.listen(btn, "click", func(events.Event) {
			c.switchTab(btn.Data("tab"))
		}))
	}

	for _, btn := range c.mainContent.QueryAll(".code-copy") {
		// Not locked: CopyCode takes the lock itself around DOM access and
		// releases it before the clipboard call.
		bind(btn.On("click", func(events.Event) { c.CopyCode(btn) }))
	}

	for _, link := range c.mainContent.QueryAll(".card[data-page], a[data-page]") {
		bind(c.bindClick(link, c.navigateFrom))
	}

	for _, card := range c.mainContent.QueryAll(".card-expandable") {
		bind(c.listen(card, "click", func(events.Event) {
			c.toggleExpand(card, "card-expandable")
		}))
	}
	for _, feature := range c.mainContent.QueryAll(".feature-expandable") {
		bind(c.listen(feature, "click", func(events.Event) {
			c.toggleExpand(feature, "feature-expandable")
		}))
	}

	platform := c.state.Platform.Get()
	for _, section := range c.mainContent.QueryAll("[data-platform-section]") {
		dom.SetVisible(section, platformMatches(platform, section.Data("platform-section")))
	}
	level := c.state.DetailLevel.Get()
	dom.ActivateWhere(c.mainContent.QueryAll(".detail-content"), func(el dom.Element) bool {
		return el.Data("level") == level
	})
}

func platformMatches(active, tag string) bool {
	return active == config.AllPlatforms || tag == active
}
