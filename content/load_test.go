//go:build !wasm

package content

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Table {
	t.Helper()
	f, err := os.Open("testdata/content.yaml")
	require.NoError(t, err)
	defer f.Close()

	table, err := Load(f)
	require.NoError(t, err)
	return table
}

func TestLoad_KeepsDeclarationOrder(t *testing.T) {
	table := loadFixture(t)

	require.Equal(t, []string{"overview", "setup-ios", "payments"}, table.IDs())
	require.Equal(t, 3, table.Len())
}

func TestLoad_MarkdownBodies(t *testing.T) {
	table := loadFixture(t)

	p, ok := table.Lookup("setup-ios")
	require.True(t, ok)
	require.Equal(t, "ios", p.Platform)
	require.Contains(t, p.Content, `<h2 id="requirements">Requirements</h2>`)
	require.Contains(t, p.Content, "<strong>Xcode 16</strong>")
	require.Contains(t, p.Content, `class="chroma"`)
}

func TestLoad_SanitizesMarkup(t *testing.T) {
	table := loadFixture(t)

	p, err := table.Get("payments")
	require.NoError(t, err)
	require.NotContains(t, p.Content, "<script>")
	require.Contains(t, p.Content, `<button class="code-copy">Copy</button>`)
	require.Contains(t, p.Content, `<div class="code-block">`)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"missing id":     "pages:\n  - title: A\n",
		"missing title":  "pages:\n  - id: a\n",
		"bad format":     "pages:\n  - id: a\n    title: A\n    format: rst\n",
		"unknown field":  "pages:\n  - id: a\n    title: A\n    colour: red\n",
		"duplicate page": "pages:\n  - id: a\n    title: A\n  - id: a\n    title: B\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad_DuplicateIsSentinel(t *testing.T) {
	_, err := Parse([]byte("pages:\n  - id: a\n    title: A\n  - id: a\n    title: B\n"))
	require.ErrorIs(t, err, ErrDuplicatePage)
}

func TestLoad_EmptyDocument(t *testing.T) {
	table, err := Parse(nil)
	require.NoError(t, err)
	require.Zero(t, table.Len())
}

func TestLoad_DefaultBreadcrumb(t *testing.T) {
	table, err := Parse([]byte("pages:\n  - id: a\n    title: Alpha\n"))
	require.NoError(t, err)

	p, _ := table.Lookup("a")
	require.Equal(t, []string{"Alpha"}, p.Breadcrumb)
}

func TestLoadFiles_MergesInLexicalOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"docs/guides/pay.yaml":    {Data: []byte("pages:\n  - id: pay\n    title: Pay\n")},
		"docs/a-start.yaml":       {Data: []byte("pages:\n  - id: start\n    title: Start\n  - id: auth\n    title: Auth\n")},
		"docs/notes.txt":          {Data: []byte("not content")},
		"docs/guides/refund.yaml": {Data: []byte("pages:\n  - id: refund\n    title: Refund\n")},
	}

	table, err := LoadFiles(fsys, "docs/**/*.yaml")

	require.NoError(t, err)
	require.Equal(t, []string{"start", "auth", "pay", "refund"}, table.IDs())
}

func TestLoadFiles_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("pages:\n  - id: home\n    title: Home\n")},
		"b.yaml": {Data: []byte("pages:\n  - id: home\n    title: Again\n")},
		"c.yml":  {Data: []byte("pages:\n  - id: x\n    bogus: 1\n")},
	}

	_, err := LoadFiles(fsys, "*.yaml")
	require.ErrorIs(t, err, ErrDuplicatePage)

	_, err = LoadFiles(fsys, "*.yml")
	require.ErrorContains(t, err, "c.yml")

	_, err = LoadFiles(fsys, "*.json")
	require.ErrorContains(t, err, "no content files")
}

func TestSanitize_DropsInlineHandlers(t *testing.T) {
	out := Sanitize(`<button class="tab-btn" data-tab="a" onclick="navigateTo('x')">A</button>`)

	require.NotContains(t, out, "onclick")
	require.NotContains(t, out, "navigateTo")
	require.Contains(t, out, `data-tab="a"`)
}
