//go:build !wasm

package htmldom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-docs/dom"
	"github.com/vcrobe/nojs-docs/events"
)

const page = `<html><body>
<div id="outer" class="box"><p id="inner" style="color: red">Hello <b>there</b></p></div>
<input id="q" type="text">
</body></html>`

func TestQueries(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)

	inner := d.ByID("inner")
	require.NotNil(t, inner)
	require.Equal(t, "Hello there", inner.Text())
	require.True(t, inner.Same(d.Query("#outer p")))
	require.True(t, d.ByID("outer").Same(inner.Closest(".box")))
	require.Nil(t, d.ByID("missing"))
	require.Nil(t, d.Query(".missing"))
	require.Len(t, d.QueryAll("p, b"), 2)
	require.NotNil(t, d.Body())
}

func TestClassesAndStyles(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)
	inner := d.ByID("inner")

	require.Equal(t, "red", inner.Style("color"))
	inner.SetStyle("display", "none")
	require.False(t, dom.Visible(inner))
	dom.SetVisible(inner, true)
	require.True(t, dom.Visible(inner))
	require.Equal(t, "red", inner.Style("color"))
	inner.SetStyle("color", "")
	require.Empty(t, inner.Attr("style"))

	require.True(t, inner.ToggleClass("active"))
	require.True(t, inner.HasClass("active"))
	require.False(t, inner.ToggleClass("active"))
	dom.SetClass(inner, "open", true)
	require.True(t, inner.HasClass("open"))
}

func TestSetHTMLReplacesChildren(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)

	d.ByID("outer").SetHTML(`<span class="fresh">new</span>`)

	require.Nil(t, d.ByID("inner"))
	require.Equal(t, "new", d.Query("#outer .fresh").Text())
}

func TestDispatchBubbles(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)

	var order []string
	d.ByID("inner").On("click", func(events.Event) { order = append(order, "inner") })
	release := d.ByID("outer").On("click", func(events.Event) { order = append(order, "outer") })
	d.On("click", func(events.Event) { order = append(order, "document") })
	require.Equal(t, 2, d.Listeners())

	require.NoError(t, d.Click("#inner b"))
	require.Equal(t, []string{"inner", "outer", "document"}, order)

	release()
	order = nil
	require.NoError(t, d.Click("#inner"))
	require.Equal(t, []string{"inner", "document"}, order)
	require.Equal(t, 1, d.Listeners())

	require.Error(t, d.Click("#missing"))
}

func TestTypeAndKeyDown(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)

	var got []events.Event
	d.ByID("q").On("input", func(ev events.Event) { got = append(got, ev) })
	d.ByID("q").On("keydown", func(ev events.Event) { got = append(got, ev) })

	require.NoError(t, d.Type("#q", "wallet"))
	require.NoError(t, d.KeyDown("#q", events.Event{Key: "Enter"}))

	require.Len(t, got, 2)
	require.Equal(t, "input", got[0].Type)
	require.Equal(t, "wallet", got[0].Value)
	require.Equal(t, "keydown", got[1].Type)
	require.Equal(t, "Enter", got[1].Key)
	require.Equal(t, "wallet", got[1].Value)
	require.Equal(t, "wallet", d.ByID("q").Value())
}

func TestFocusAndScroll(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)
	require.Nil(t, d.Focused())

	d.ByID("q").Focus()
	require.Equal(t, "q", d.Focused().ID())

	outer := d.ByID("outer")
	_, _, ok := d.ScrollPosition(outer)
	require.False(t, ok)
	outer.ScrollTo(0, 40)
	x, y, ok := d.ScrollPosition(outer)
	require.True(t, ok)
	require.Equal(t, 0, x)
	require.Equal(t, 40, y)
}
