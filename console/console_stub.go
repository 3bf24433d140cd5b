//go:build !(js && wasm)

package console

import (
	"log/slog"
	"os"
)

// NewHandler returns a text handler on stderr for native builds (tests and
// the headless checker).
func NewHandler(opts *slog.HandlerOptions) slog.Handler {
	return slog.NewTextHandler(os.Stderr, opts)
}
