package site

import (
	"fmt"
	"strings"

	"github.com/vcrobe/nojs-docs/config"
	"github.com/vcrobe/nojs-docs/dom"
)

// SwitchPlatform makes platform the active filter. Values outside the
// configured set are logged and ignored.
func (c *Controller) SwitchPlatform(platform string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switchPlatform(platform)
}

func (c *Controller) switchPlatform(platform string) error {
	if !c.cfg.HasPlatform(platform) {
		c.log.Warn("unknown platform", "platform", platform)
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
	c.state.Platform.Set(platform)
	return nil
}

// applyPlatform updates the platform buttons, platform sections anywhere in
// the page, and nav entry visibility.
func (c *Controller) applyPlatform(platform string) {
	dom.ActivateWhere(c.platformButtons, func(el dom.Element) bool {
		return el.Data("platform") == platform
	})
	for _, section := range c.doc.QueryAll("[data-platform-section]") {
		dom.SetVisible(section, platformMatches(platform, section.Data("platform-section")))
	}
	c.filterNavigation()
}

// SetSearchQuery sets the query, lower-cased, and refilters navigation.
func (c *Controller) SetSearchQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setSearchQuery(query)
}

func (c *Controller) setSearchQuery(query string) {
	c.state.Query.Set(strings.ToLower(query))
}

// filterNavigation shows a nav entry when it passes both the platform filter
// and the search query, then hides sections left without visible entries
// while a query is active.
func (c *Controller) filterNavigation() {
	platform := c.state.Platform.Get()
	query := c.state.Query.Get()

	for _, item := range c.navItems {
		dom.SetVisible(item, c.platformAllows(item, platform) && c.searchAllows(item, query))
	}

	for _, section := range c.doc.QueryAll(".nav-section") {
		visible := query == ""
		if !visible {
			for _, item := range section.QueryAll(".nav-item") {
				if dom.Visible(item) {
					visible = true
					break
				}
			}
		}
		dom.SetVisible(section, visible)
	}
}

func (c *Controller) platformAllows(item dom.Element, platform string) bool {
	if platform == config.AllPlatforms || !item.HasData("platform") {
		return true
	}
	return item.Data("platform") == platform
}

// searchAllows matches the query against the entry's label, then against the
// text of the page it links to.
func (c *Controller) searchAllows(item dom.Element, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Text()), query) {
		return true
	}
	if p, ok := c.table.Lookup(item.Data("page")); ok {
		return p.Matches(query)
	}
	return false
}

// SearchAndNavigate jumps to the first page, in table order, whose text
// contains the current query. Reports whether it navigated.
func (c *Controller) SearchAndNavigate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchAndNavigate()
}

func (c *Controller) searchAndNavigate() bool {
	p, ok := c.table.FirstMatch(c.state.Query.Get())
	if !ok {
		return false
	}
	return c.navigate(p.ID, c.router.Push) == nil
}
