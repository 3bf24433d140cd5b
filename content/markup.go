package content

import (
	"bytes"
	"maps"
	"slices"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// md converts markdown bodies. Raw HTML passes through so pages can embed tab
// and code-block structures; the sanitizer runs afterwards.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// markupPolicy is the UGC policy widened for the site's interactive markup:
// tab buttons, copy buttons, expandable cards and data-page links.
var markupPolicy = newMarkupPolicy()

func newMarkupPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("section", "button", "figure", "figcaption", "details", "summary")
	policy.AllowAttrs("class", "id").Globally()
	policy.AllowDataAttributes()
	policy.AllowAttrs("type").OnElements("button")
	return policy
}

// MarkdownToHTML converts markdown source into HTML.
func MarkdownToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sanitize strips scripts, inline handlers and anything else outside the
// markup policy.
func Sanitize(markup string) string {
	return markupPolicy.Sanitize(markup)
}

// PlainText returns the visible text of markup with whitespace collapsed.
// Inline tags do not break words; block boundaries do. Script and style
// contents are dropped.
func PlainText(markup string) string {
	if markup == "" {
		return ""
	}

	var b strings.Builder
	skip := 0
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := atom.Lookup(name)
			if isRawText(tag) {
				skip++
			}
			if blockBoundary[tag] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := atom.Lookup(name)
			if isRawText(tag) && skip > 0 {
				skip--
			}
			if blockBoundary[tag] {
				b.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

// blockBoundary lists the tags that separate words in rendered text.
var blockBoundary = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Button: true, atom.Dd: true, atom.Details: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Figcaption: true, atom.Figure: true,
	atom.Footer: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Summary: true, atom.Table: true, atom.Td: true,
	atom.Th: true, atom.Tr: true, atom.Ul: true,
}

func isRawText(tag atom.Atom) bool {
	return tag == atom.Script || tag == atom.Style
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
