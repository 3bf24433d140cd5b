//go:build js && wasm

package console

import (
	"log/slog"
	"syscall/js"
)

// NewHandler returns a handler writing to the browser console.
func NewHandler(opts *slog.HandlerOptions) slog.Handler {
	return newHandler(func(method, line string) {
		js.Global().Get("console").Call(method, line)
	}, opts)
}
