//go:build js && wasm

// Package jsdom implements dom.Document over the browser DOM via syscall/js.
package jsdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-docs/dom"
	"github.com/vcrobe/nojs-docs/events"
)

// Compile-time assertions against the dom interfaces.
var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

// Document wraps window.document.
type Document struct {
	v js.Value
}

// New returns the current page's document.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

func wrap(v js.Value) dom.Element {
	if !v.Truthy() {
		return nil
	}
	return &Element{v: v}
}

func wrapList(list js.Value) []dom.Element {
	if !list.Truthy() {
		return nil
	}
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i)})
	}
	return out
}

func (d *Document) ByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *Document) Query(selector string) dom.Element {
	return wrap(d.v.Call("querySelector", selector))
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return wrapList(d.v.Call("querySelectorAll", selector))
}

func (d *Document) Body() dom.Element {
	return wrap(d.v.Get("body"))
}

func (d *Document) On(event string, fn dom.Listener) func() {
	return listen(d.v, event, fn)
}

// listen attaches fn and returns a func that detaches it and releases the
// js.Func backing it.
func listen(target js.Value, event string, fn dom.Listener) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(toEvent(args[0]))
		}
		return nil
	})
	target.Call("addEventListener", event, cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, cb)
		cb.Release()
	}
}

func toEvent(e js.Value) events.Event {
	ev := events.Event{
		Type: str(e.Get("type")),
		Key:  str(e.Get("key")),
		Ctrl: e.Get("ctrlKey").Truthy(),
		Meta: e.Get("metaKey").Truthy(),
		OnPreventDefault: func() {
			e.Call("preventDefault")
		},
	}
	if target := e.Get("target"); target.Truthy() {
		ev.Value = str(target.Get("value"))
	}
	return ev
}

func str(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

// Wrap adapts a raw element handed over from JavaScript, such as the `this`
// of an inline onclick handler.
func Wrap(v js.Value) dom.Element {
	return wrap(v)
}
