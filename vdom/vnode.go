package vdom

// Tags with special meaning to the serializer.
const (
	TextTag = "#text" // Content is escaped text, no element wrapper
	RawTag  = "#raw"  // Content is trusted markup written verbatim
)

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag / RawTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text content, rendered before children
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Text creates a bare text node.
func Text(text string) *VNode {
	return NewVNode(TextTag, nil, nil, text)
}

// Raw wraps already-sanitized markup so it is emitted without escaping.
func Raw(markup string) *VNode {
	return NewVNode(RawTag, nil, nil, markup)
}

// Class is shorthand for an attribute map holding only a class.
func Class(name string) map[string]any {
	return map[string]any{"class": name}
}

// Paragraph creates a <p> VNode with the given text and attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Span creates a <span> VNode with the given text and attributes.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Anchor creates an <a> VNode pointing at href.
func Anchor(href, text string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode; level is clamped to that range.
func Heading(level int, attrs map[string]any, children ...*VNode) *VNode {
	level = max(1, min(level, 6))
	return NewVNode("h"+string(rune('0'+level)), attrs, children, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Header creates a <header> VNode.
func Header(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("header", attrs, children, "")
}
