//go:build !wasm

package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPage_MarkupFallsBackToFlatContent(t *testing.T) {
	p := &Page{
		ID:      "overview",
		Content: "<p>flat</p>",
		Levels:  map[string]string{"quick": "<p>quick</p>", "detailed": ""},
	}

	require.Equal(t, "<p>quick</p>", p.Markup("quick"))
	require.Equal(t, "<p>flat</p>", p.Markup("detailed"))
	require.Equal(t, "<p>flat</p>", p.Markup("technical"))
	require.True(t, p.HasLevel("quick"))
	require.False(t, p.HasLevel("detailed"))
}

func TestPage_SearchTextStripsTags(t *testing.T) {
	p := &Page{
		Title:       "Payments",
		Description: "Card Processing",
		Content:     "<p>Uses <em>tokenized</em>\n wallets</p><script>var secret</script>",
		Levels:      map[string]string{"quick": "<b>Stripe</b>"},
	}

	require.Equal(t, "payments card processing uses tokenized wallets stripe", p.SearchText())
	require.True(t, p.Matches("tokenized wallets"))
	require.False(t, p.Matches("secret"))
	require.False(t, p.Matches("<em>"))
	require.True(t, p.Matches(""))
}

func TestTable_FirstMatchUsesDeclarationOrder(t *testing.T) {
	table, err := NewTable(
		&Page{ID: "b", Title: "Beta", Description: "shared words"},
		&Page{ID: "a", Title: "Alpha", Description: "shared words"},
		&Page{ID: "c", Title: "Gamma", Description: "only here"},
	)
	require.NoError(t, err)

	p, ok := table.FirstMatch("shared")
	require.True(t, ok)
	require.Equal(t, "b", p.ID)

	p, ok = table.FirstMatch("only here")
	require.True(t, ok)
	require.Equal(t, "c", p.ID)

	_, ok = table.FirstMatch("")
	require.False(t, ok)
	_, ok = table.FirstMatch("absent")
	require.False(t, ok)
}

func TestTable_GetUnknown(t *testing.T) {
	table, err := NewTable(&Page{ID: "a", Title: "A"})
	require.NoError(t, err)

	_, err = table.Get("zzz")
	require.ErrorIs(t, err, ErrUnknownPage)
	require.False(t, table.Has("zzz"))
	require.True(t, table.Has("a"))
}

func TestTable_AllStopsEarly(t *testing.T) {
	table, err := NewTable(&Page{ID: "a", Title: "A"}, &Page{ID: "b", Title: "B"})
	require.NoError(t, err)

	var seen []string
	for id := range table.All() {
		seen = append(seen, id)
		break
	}
	require.Equal(t, []string{"a"}, seen)
}

func TestTable_FirstMatchAcrossInlineTags(t *testing.T) {
	table, err := NewTable(
		&Page{ID: "a", Content: "<p>Accept <strong>Pay</strong>ments via Stripe</p>"},
		&Page{ID: "b", Content: "<ul><li>one</li><li>two</li></ul><p>Card</p><p>holder</p>"},
	)
	require.NoError(t, err)

	p, ok := table.FirstMatch("payments")
	require.True(t, ok)
	require.Equal(t, "a", p.ID)
	require.Equal(t, "accept payments via stripe", p.SearchText())

	// Block elements still separate words.
	b, err := table.Get("b")
	require.NoError(t, err)
	require.Equal(t, "one two card holder", b.SearchText())
	_, ok = table.FirstMatch("cardholder")
	require.False(t, ok)
}
