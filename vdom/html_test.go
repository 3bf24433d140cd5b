//go:build !wasm

package vdom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHTML_EscapesTextAndAttributes(t *testing.T) {
	n := Div(map[string]any{"class": "a\"b", "data-page": "x<y"},
		Paragraph("1 < 2 & 3", nil),
		Text("<b>"),
	)

	require.Equal(t,
		`<div class="a&#34;b" data-page="x&lt;y"><p>1 &lt; 2 &amp; 3</p>&lt;b&gt;</div>`,
		RenderHTML(n))
}

func TestRenderHTML_RawIsVerbatim(t *testing.T) {
	n := Div(Class("content-wrapper"), Raw(`<section class="detail"><em>hi</em></section>`))

	require.Equal(t,
		`<div class="content-wrapper"><section class="detail"><em>hi</em></section></div>`,
		RenderHTML(n))
}

func TestRenderHTML_BooleanAndVoid(t *testing.T) {
	n := NewVNode("input", map[string]any{"type": "text", "disabled": true, "hidden": false}, nil, "")

	require.Equal(t, `<input disabled type="text">`, RenderHTML(n))
}

func TestHeading_ClampsLevel(t *testing.T) {
	require.Equal(t, "h1", Heading(0, nil).Tag)
	require.Equal(t, "h3", Heading(3, nil).Tag)
	require.Equal(t, "h6", Heading(9, nil).Tag)
}

func TestAnchor_SetsHref(t *testing.T) {
	require.Equal(t, `<a href="#">Docs</a>`, RenderHTML(Anchor("#", "Docs", nil)))
}
