package site

import (
	"fmt"
	"time"

	"github.com/vcrobe/nojs-docs/dom"
)

// SwitchDetailLevel makes level active and re-renders the current page with
// it. Values outside the configured set are logged and ignored.
func (c *Controller) SwitchDetailLevel(level string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switchDetailLevel(level)
}

func (c *Controller) switchDetailLevel(level string) error {
	if !c.cfg.HasDetailLevel(level) {
		c.log.Warn("unknown detail level", "level", level)
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	c.state.DetailLevel.Set(level)
	return nil
}

func (c *Controller) applyDetailLevel(level string) {
	c.activateDetailButtons(level)
	dom.ActivateWhere(c.doc.QueryAll(".detail-content"), func(el dom.Element) bool {
		return el.Data("level") == level
	})
	if page := c.state.Page.Get(); page != "" {
		c.loadPage(page)
	}
}

func (c *Controller) activateDetailButtons(level string) {
	dom.ActivateWhere(c.detailButtons, func(el dom.Element) bool {
		return el.Data("level") == level
	})
}

// ToggleMobileMenu flips the sidebar between open and closed.
func (c *Controller) ToggleMobileMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toggleMobileMenu()
}

// OpenMobileMenu opens the sidebar.
func (c *Controller) OpenMobileMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.openMobileMenu()
}

// CloseMobileMenu closes the sidebar.
func (c *Controller) CloseMobileMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeMobileMenu()
}

func (c *Controller) toggleMobileMenu() {
	c.state.SidebarOpen.Update(func(open bool) bool { return !open })
}

func (c *Controller) openMobileMenu()  { c.state.SidebarOpen.Set(true) }
func (c *Controller) closeMobileMenu() { c.state.SidebarOpen.Set(false) }

func (c *Controller) applyMenu(open bool) {
	if c.sidebar != nil {
		dom.SetClass(c.sidebar, "open", open)
	}
	if c.menuToggle != nil {
		dom.SetClass(c.menuToggle, "active", open)
	}
	if c.overlay != nil {
		dom.SetClass(c.overlay, "active", open)
	}
	if body := c.doc.Body(); body != nil {
		if open {
			body.SetStyle("overflow", "hidden")
		} else {
			body.SetStyle("overflow", "")
		}
	}
}

func (c *Controller) focusSearchAfter(delay time.Duration) {
	if c.searchInput == nil {
		return
	}
	input := c.searchInput
	time.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		input.Focus()
	})
}

// SwitchTab activates the tab button for id and the content panel "tab-"+id.
func (c *Controller) SwitchTab(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.switchTab(id)
}

func (c *Controller) switchTab(id string) {
	dom.ActivateWhere(c.doc.QueryAll(".tab-btn"), func(el dom.Element) bool {
		return el.Data("tab") == id
	})
	dom.ActivateWhere(c.doc.QueryAll(".tab-content"), func(el dom.Element) bool {
		return el.ID() == "tab-"+id
	})
}

// ToggleCardExpand expands card, collapsing every other expanded card, or
// collapses it when already expanded.
func (c *Controller) ToggleCardExpand(card dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toggleExpand(card, "card-expandable")
}

// ToggleFeatureExpand is ToggleCardExpand for feature blocks.
func (c *Controller) ToggleFeatureExpand(feature dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toggleExpand(feature, "feature-expandable")
}

func (c *Controller) toggleExpand(el dom.Element, kind string) {
	if el == nil {
		return
	}
	for _, other := range c.doc.QueryAll("." + kind + ".expanded") {
		if !other.Same(el) {
			other.RemoveClass("expanded")
		}
	}
	el.ToggleClass("expanded")
}
