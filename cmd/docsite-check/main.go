//go:build !(js && wasm)

// Command docsite-check validates a docs site shell, content table and
// configuration by driving the site controller over an in-memory DOM.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
