//go:build js && wasm

package clipboard

import (
	"fmt"
	"syscall/js"
)

// Browser writes through navigator.clipboard.
type Browser struct{}

// Compile-time assertion that Browser implements Writer.
var _ Writer = Browser{}

// WriteText starts navigator.clipboard.writeText and calls done when the
// returned promise settles.
func (Browser) WriteText(text string, done func(error)) {
	cb := js.Global().Get("navigator").Get("clipboard")
	if !cb.Truthy() {
		done(ErrUnavailable)
		return
	}

	var onOK, onErr js.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}
	onOK = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		done(nil)
		return nil
	})
	onErr = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		reason := "unknown error"
		if len(args) > 0 && args[0].Truthy() {
			reason = args[0].Call("toString").String()
		}
		done(fmt.Errorf("%w: %s", ErrUnavailable, reason))
		return nil
	})
	cb.Call("writeText", text).Call("then", onOK, onErr)
}
