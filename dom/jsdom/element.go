//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-docs/dom"
)

// Element wraps a browser element.
type Element struct {
	v js.Value
}

func (e *Element) ID() string { return str(e.v.Get("id")) }

func (e *Element) Attr(name string) string {
	return str(e.v.Call("getAttribute", name))
}

func (e *Element) Data(key string) string { return e.Attr("data-" + key) }

func (e *Element) HasData(key string) bool {
	return e.v.Call("hasAttribute", "data-"+key).Bool()
}

func (e *Element) Value() string { return str(e.v.Get("value")) }

func (e *Element) Text() string          { return str(e.v.Get("textContent")) }
func (e *Element) SetText(text string)   { e.v.Set("textContent", text) }
func (e *Element) SetHTML(markup string) { e.v.Set("innerHTML", markup) }

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) AddClass(name string)    { e.v.Get("classList").Call("add", name) }
func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e *Element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}

func (e *Element) Style(property string) string {
	return str(e.v.Get("style").Call("getPropertyValue", property))
}

func (e *Element) SetStyle(property, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

func (e *Element) Query(selector string) dom.Element {
	return wrap(e.v.Call("querySelector", selector))
}

func (e *Element) QueryAll(selector string) []dom.Element {
	return wrapList(e.v.Call("querySelectorAll", selector))
}

func (e *Element) Closest(selector string) dom.Element {
	return wrap(e.v.Call("closest", selector))
}

func (e *Element) On(event string, fn dom.Listener) func() {
	return listen(e.v, event, fn)
}

func (e *Element) Focus() { e.v.Call("focus") }

func (e *Element) ScrollTo(x, y int) {
	if e.v.Get("scrollTo").Type() == js.TypeFunction {
		e.v.Call("scrollTo", x, y)
	}
}

func (e *Element) Same(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && o != nil && o.v.Equal(e.v)
}
