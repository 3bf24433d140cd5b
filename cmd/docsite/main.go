//go:build js && wasm

// Command docsite is the WebAssembly entry point of the documentation site.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o web/docsite.wasm ./cmd/docsite
package main

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/vcrobe/nojs-docs/clipboard"
	"github.com/vcrobe/nojs-docs/config"
	"github.com/vcrobe/nojs-docs/console"
	"github.com/vcrobe/nojs-docs/content"
	"github.com/vcrobe/nojs-docs/dom/jsdom"
	"github.com/vcrobe/nojs-docs/router"
	"github.com/vcrobe/nojs-docs/site"
	"github.com/vcrobe/nojs-docs/web"
)

func main() {
	cfg, err := config.Parse(web.Config)
	if err != nil {
		fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	level, err := cfg.Level()
	if err != nil {
		fatal(err)
	}
	logger := console.New(level)

	table, err := content.Parse(web.Content)
	if err != nil {
		fatal(fmt.Errorf("loading content: %w", err))
	}

	ctl, err := site.New(jsdom.New(), table, cfg,
		site.WithLogger(logger),
		site.WithHistory(router.BrowserHistory{}),
		site.WithClipboard(clipboard.Browser{}),
	)
	if err != nil {
		fatal(err)
	}
	if err := ctl.Start(); err != nil {
		fatal(err)
	}
	exportHooks(ctl, logger)
	logger.Info("docs site started", "pages", table.Len())

	// Keep the Go program running
	select {}
}

// exportHooks exposes controller entry points on window for the page shell
// and outside scripts. Content markup cannot reach them: sanitising strips
// its on* attributes.
func exportHooks(ctl *site.Controller, logger *slog.Logger) {
	global := js.Global()

	stringHook := func(name string, fn func(string)) {
		global.Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) == 0 || args[0].Type() != js.TypeString {
				logger.Warn("hook called without a string argument", "hook", name)
				return nil
			}
			fn(args[0].String())
			return nil
		}))
	}
	elementHook := func(name string, fn func(js.Value)) {
		global.Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) == 0 || args[0].Type() != js.TypeObject {
				logger.Warn("hook called without an element", "hook", name)
				return nil
			}
			fn(args[0])
			return nil
		}))
	}

	stringHook("navigateTo", func(id string) { _ = ctl.NavigateTo(id) })
	stringHook("switchTab", ctl.SwitchTab)
	stringHook("switchDetailLevel", func(level string) { _ = ctl.SwitchDetailLevel(level) })
	stringHook("switchPlatform", func(platform string) { _ = ctl.SwitchPlatform(platform) })
	elementHook("copyCode", func(v js.Value) { ctl.CopyCode(jsdom.Wrap(v)) })
	elementHook("toggleCardExpand", func(v js.Value) { ctl.ToggleCardExpand(jsdom.Wrap(v)) })
	elementHook("toggleFeatureExpand", func(v js.Value) { ctl.ToggleFeatureExpand(jsdom.Wrap(v)) })
}

func fatal(err error) {
	js.Global().Get("console").Call("error", "docs site: "+err.Error())
	panic(err)
}
