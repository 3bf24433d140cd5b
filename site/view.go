package site

import (
	"strings"

	"github.com/vcrobe/nojs-docs/content"
	"github.com/vcrobe/nojs-docs/vdom"
)

// PageView builds the main content tree for p: a header from the breadcrumb,
// title, platform tag and description, followed by the body for level.
func PageView(p *content.Page, level string) *vdom.VNode {
	crumbs := make([]*vdom.VNode, 0, 2*len(p.Breadcrumb))
	for i, item := range p.Breadcrumb {
		if i == len(p.Breadcrumb)-1 {
			crumbs = append(crumbs, vdom.Span(item, nil))
			continue
		}
		crumbs = append(crumbs,
			vdom.Anchor("#", item, nil),
			vdom.Span("/", vdom.Class("breadcrumb-separator")),
		)
	}

	title := []*vdom.VNode{vdom.Text(p.Title)}
	if p.Platform != "" {
		title = append(title,
			vdom.Text(" "),
			vdom.Span(strings.ToUpper(p.Platform), vdom.Class("platform-tag "+p.Platform)),
		)
	}

	return vdom.Div(vdom.Class("content-wrapper"),
		vdom.Header(vdom.Class("page-header"),
			vdom.Div(vdom.Class("breadcrumb"), crumbs...),
			vdom.Heading(1, vdom.Class("page-title"), title...),
			vdom.Paragraph(p.Description, vdom.Class("page-description")),
		),
		vdom.Raw(p.Markup(level)),
	)
}
