// Package dom is the slice of the browser DOM the site controller drives.
//
// The interfaces carry no build tags: jsdom implements them over syscall/js
// for the browser, htmldom over a parsed HTML tree for native tests and the
// headless checker.
package dom

import "github.com/vcrobe/nojs-docs/events"

// Listener handles one event.
type Listener func(events.Event)

// Element is a single DOM element. Lookups that find nothing return nil.
type Element interface {
	ID() string
	Attr(name string) string
	// Data returns the data-* attribute for key, e.g. Data("page").
	Data(key string) string
	HasData(key string) bool
	Value() string

	Text() string
	SetText(text string)
	SetHTML(markup string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass flips name and reports whether it is now present.
	ToggleClass(name string) bool

	Style(property string) string
	SetStyle(property, value string)

	Query(selector string) Element
	QueryAll(selector string) []Element
	Closest(selector string) Element

	// On adds a listener and returns the func that removes it.
	On(event string, fn Listener) (release func())
	Focus()
	ScrollTo(x, y int)

	// Same reports whether other is the same underlying node.
	Same(other Element) bool
}

// Document is the page the elements live in.
type Document interface {
	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	Body() Element
	On(event string, fn Listener) (release func())
}

// SetClass adds or removes name depending on on.
func SetClass(el Element, name string, on bool) {
	if on {
		el.AddClass(name)
	} else {
		el.RemoveClass(name)
	}
}

// SetVisible clears or sets display:none.
func SetVisible(el Element, visible bool) {
	if visible {
		el.SetStyle("display", "")
	} else {
		el.SetStyle("display", "none")
	}
}

// Visible reports whether el is not display:none.
func Visible(el Element) bool {
	return el.Style("display") != "none"
}

// ActivateWhere marks active every element for which match is true and clears
// it from the rest.
func ActivateWhere(els []Element, match func(Element) bool) {
	for _, el := range els {
		SetClass(el, "active", match(el))
	}
}
