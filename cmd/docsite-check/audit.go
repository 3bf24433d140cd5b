//go:build !(js && wasm)

package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vcrobe/nojs-docs/config"
	"github.com/vcrobe/nojs-docs/content"
	"github.com/vcrobe/nojs-docs/dom"
	"github.com/vcrobe/nojs-docs/dom/htmldom"
	"github.com/vcrobe/nojs-docs/site"
)

// Problem is one inconsistency found by Audit.
type Problem struct {
	Where   string
	Message string
}

func (p Problem) String() string {
	return p.Where + ": " + p.Message
}

// Report is the outcome of an Audit.
type Report struct {
	Pages    int
	Renders  int
	Problems []Problem

	seen map[Problem]bool
}

func (r *Report) add(where, format string, args ...any) {
	p := Problem{Where: where, Message: fmt.Sprintf(format, args...)}
	if r.seen[p] {
		return
	}
	r.seen[p] = true
	r.Problems = append(r.Problems, p)
}

// Audit starts a controller over shell and renders every page at every
// configured detail level, collecting the problems it finds.
func Audit(shell []byte, table *content.Table, cfg *config.Config, logger *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	doc, err := htmldom.Parse(bytes.NewReader(shell))
	if err != nil {
		return nil, err
	}

	r := &Report{Pages: table.Len(), seen: make(map[Problem]bool)}
	r.checkTable(table, cfg)
	r.checkShell(doc, table, cfg)

	ctl, err := site.New(doc, table, cfg, site.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := ctl.Start(); err != nil {
		return nil, err
	}
	defer ctl.Stop()

	mainContent := doc.ByID(site.MainContentID)
	for _, level := range cfg.DetailLevels {
		if err := ctl.SwitchDetailLevel(level); err != nil {
			return nil, err
		}
		for _, id := range table.IDs() {
			if err := ctl.NavigateTo(id); err != nil {
				r.add(id, "render failed: %v", err)
				continue
			}
			ctl.Inspect(func() { r.checkPage(id, mainContent, table) })
			r.Renders++
		}
	}
	return r, nil
}

func (r *Report) checkTable(table *content.Table, cfg *config.Config) {
	if !table.Has(cfg.DefaultPage) {
		r.add("config", "default page %q is not in the content table", cfg.DefaultPage)
	}
	for id, p := range table.All() {
		if p.Platform != "" && !cfg.HasPlatform(p.Platform) {
			r.add(id, "platform %q is not configured", p.Platform)
		}
		for level := range p.Levels {
			if !cfg.HasDetailLevel(level) {
				r.add(id, "detail level %q is not configured", level)
			}
		}
	}
}

func (r *Report) checkShell(doc dom.Document, table *content.Table, cfg *config.Config) {
	if doc.ByID(site.SearchInputID) == nil {
		r.add("shell", "search input #%s is missing", site.SearchInputID)
	}

	linked := make(map[string]bool)
	for _, item := range doc.QueryAll(".nav-item") {
		linked[item.Data("page")] = true
		if platform := item.Data("platform"); item.HasData("platform") && !cfg.HasPlatform(platform) {
			r.add("shell", "nav entry %q has unconfigured platform %q", item.Data("page"), platform)
		}
	}
	for _, item := range doc.QueryAll(".nav-item, .bottom-nav-item") {
		if page := item.Data("page"); !table.Has(page) {
			r.add("shell", "nav entry %q points at a missing page", page)
		}
	}
	for _, id := range table.IDs() {
		if !linked[id] {
			r.add(id, "no sidebar entry links to this page")
		}
	}

	for _, btn := range doc.QueryAll(".platform-btn") {
		if p := btn.Data("platform"); !cfg.HasPlatform(p) {
			r.add("shell", "platform button %q is not configured", p)
		}
	}
	for _, btn := range doc.QueryAll(".detail-btn") {
		if level := btn.Data("level"); !cfg.HasDetailLevel(level) {
			r.add("shell", "detail button %q is not configured", level)
		}
	}
}

func (r *Report) checkPage(id string, mainContent dom.Element, table *content.Table) {
	for _, link := range mainContent.QueryAll(".card[data-page], a[data-page]") {
		if target := link.Data("page"); !table.Has(target) {
			r.add(id, "links to missing page %q", target)
		}
	}

	var panels []string
	for _, panel := range mainContent.QueryAll(".tab-content") {
		panels = append(panels, panel.ID())
	}
	for _, btn := range mainContent.QueryAll(".tab-btn") {
		if tab := btn.Data("tab"); !slices.Contains(panels, "tab-"+tab) {
			r.add(id, "tab %q has no #tab-%s panel", tab, tab)
		}
	}

	for _, btn := range mainContent.QueryAll(".code-copy") {
		block := btn.Closest(".code-block")
		if block == nil || block.Query("pre") == nil {
			r.add(id, "copy button outside a code block")
		}
	}
}
