// Package web embeds the static site: the page shell, the content table and
// the site configuration.
package web

import _ "embed"

// Shell is the page shell the controller drives.
//
//go:embed index.html
var Shell []byte

// Content is the content table.
//
//go:embed content.yaml
var Content []byte

// Config is the site configuration.
//
//go:embed site.yaml
var Config []byte
