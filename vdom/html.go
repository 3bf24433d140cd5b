package vdom

import (
	"fmt"
	"html"
	"slices"
	"strings"
)

// voidElements never carry children or a closing tag.
var voidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// RenderHTML serializes the tree to markup. Attributes are written in sorted
// order so equal trees always produce equal strings.
func RenderHTML(n *VNode) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *VNode) {
	if n == nil {
		return
	}

	switch n.Tag {
	case TextTag:
		b.WriteString(html.EscapeString(n.Content))
		return
	case RawTag:
		b.WriteString(n.Content)
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	writeAttributes(b, n.Attributes)
	b.WriteByte('>')

	if voidElements[n.Tag] {
		return
	}

	b.WriteString(html.EscapeString(n.Content))
	for _, child := range n.Children {
		writeNode(b, child)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

func writeAttributes(b *strings.Builder, attrs map[string]any) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			// Boolean attributes are present or absent.
			if v {
				b.WriteByte(' ')
				b.WriteString(k)
			}
		case nil:
		default:
			fmt.Fprintf(b, ` %s="%s"`, k, html.EscapeString(fmt.Sprint(v)))
		}
	}
}
