//go:build js && wasm

package router

import "syscall/js"

// BrowserHistory is the window's History API.
type BrowserHistory struct{}

// Compile-time assertion that BrowserHistory implements History.
var _ History = BrowserHistory{}

func (BrowserHistory) Push(page string) {
	js.Global().Get("history").Call("pushState", state(page), "", HashFor(page))
}

func (BrowserHistory) Replace(page string) {
	js.Global().Get("history").Call("replaceState", state(page), "", HashFor(page))
}

func (BrowserHistory) Hash() string {
	return js.Global().Get("location").Get("hash").String()
}

func (BrowserHistory) OnPop(fn func(page string)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		page := ""
		if len(args) > 0 {
			if st := args[0].Get("state"); st.Truthy() {
				if p := st.Get("page"); p.Type() == js.TypeString {
					page = p.String()
				}
			}
		}
		fn(page)
		return nil
	})
	js.Global().Call("addEventListener", "popstate", cb)
	return func() {
		js.Global().Call("removeEventListener", "popstate", cb)
		cb.Release()
	}
}

func state(page string) js.Value {
	return js.ValueOf(map[string]any{"page": page})
}
