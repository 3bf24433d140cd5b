package htmldom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-docs/dom"
)

// Element wraps one node of a Document.
type Element struct {
	d *Document
	n *html.Node
}

func (e *Element) sel() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.n).Selection
}

func (e *Element) ID() string              { return attr(e.n, "id") }
func (e *Element) Attr(name string) string { return attr(e.n, name) }
func (e *Element) Data(key string) string  { return attr(e.n, "data-"+key) }
func (e *Element) Value() string           { return attr(e.n, "value") }

func (e *Element) HasData(key string) bool {
	_, ok := e.sel().Attr("data-" + key)
	return ok
}

// SetValue sets the value attribute, standing in for user input.
func (e *Element) SetValue(v string) {
	e.sel().SetAttr("value", v)
}

func (e *Element) Text() string              { return e.sel().Text() }
func (e *Element) SetText(text string)       { e.sel().SetText(text) }
func (e *Element) SetHTML(markup string)     { e.sel().SetHtml(markup) }
func (e *Element) HasClass(name string) bool { return e.sel().HasClass(name) }
func (e *Element) AddClass(name string)      { e.sel().AddClass(name) }
func (e *Element) RemoveClass(name string)   { e.sel().RemoveClass(name) }

func (e *Element) ToggleClass(name string) bool {
	s := e.sel()
	s.ToggleClass(name)
	return s.HasClass(name)
}

// Style reads one property from the inline style attribute.
func (e *Element) Style(property string) string {
	for _, decl := range parseStyle(attr(e.n, "style")) {
		if decl[0] == property {
			return decl[1]
		}
	}
	return ""
}

// SetStyle writes one inline style property; an empty value removes it.
func (e *Element) SetStyle(property, value string) {
	decls := parseStyle(attr(e.n, "style"))
	out := decls[:0]
	replaced := false
	for _, decl := range decls {
		if decl[0] != property {
			out = append(out, decl)
			continue
		}
		if value != "" && !replaced {
			out = append(out, [2]string{property, value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, [2]string{property, value})
	}

	s := e.sel()
	if len(out) == 0 {
		s.RemoveAttr("style")
		return
	}
	parts := make([]string, len(out))
	for i, decl := range out {
		parts[i] = decl[0] + ": " + decl[1]
	}
	s.SetAttr("style", strings.Join(parts, "; ")+";")
}

func parseStyle(style string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		decls = append(decls, [2]string{prop, strings.TrimSpace(val)})
	}
	return decls
}

func (e *Element) Query(selector string) dom.Element {
	return e.d.wrap(first(e.sel().Find(selector)))
}

func (e *Element) QueryAll(selector string) []dom.Element {
	return e.d.wrapAll(e.sel().Find(selector))
}

func (e *Element) Closest(selector string) dom.Element {
	return e.d.wrap(first(e.sel().Closest(selector)))
}

func (e *Element) On(event string, fn dom.Listener) func() {
	return e.d.on(e.n, event, fn)
}

func (e *Element) Focus() {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.focused = e.n
}

func (e *Element) ScrollTo(x, y int) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.scroll[e.n] = [2]int{x, y}
}

func (e *Element) Same(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && o != nil && o.n == e.n
}
