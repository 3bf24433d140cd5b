//go:build !wasm

package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-docs/content"
	"github.com/vcrobe/nojs-docs/vdom"
)

func TestPageView(t *testing.T) {
	p := &content.Page{
		ID:          "cards",
		Title:       "Cards & Wallets",
		Description: "Use <b>tokens</b>",
		Breadcrumb:  []string{"Docs", "Cards & Wallets"},
		Platform:    "ios",
		Content:     `<p class="flat">flat</p>`,
		Levels:      map[string]string{"quick": `<p class="quick">quick</p>`},
	}

	got := vdom.RenderHTML(PageView(p, "quick"))

	want := `<div class="content-wrapper"><header class="page-header">` +
		`<div class="breadcrumb"><a href="#">Docs</a><span class="breadcrumb-separator">/</span><span>Cards &amp; Wallets</span></div>` +
		`<h1 class="page-title">Cards &amp; Wallets <span class="platform-tag ios">IOS</span></h1>` +
		`<p class="page-description">Use &lt;b&gt;tokens&lt;/b&gt;</p>` +
		`</header><p class="quick">quick</p></div>`
	require.Equal(t, want, got)
}

func TestPageView_FlatFallbackWithoutPlatform(t *testing.T) {
	p := &content.Page{
		ID:         "faq",
		Title:      "FAQ",
		Breadcrumb: []string{"FAQ"},
		Content:    `<p>answers</p>`,
	}

	got := vdom.RenderHTML(PageView(p, "technical"))

	require.Contains(t, got, `<div class="breadcrumb"><span>FAQ</span></div>`)
	require.Contains(t, got, `<h1 class="page-title">FAQ</h1>`)
	require.Contains(t, got, `<p>answers</p></div>`)
	require.NotContains(t, got, "platform-tag")
}
