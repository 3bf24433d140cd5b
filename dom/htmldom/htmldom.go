// Package htmldom implements dom.Document over a parsed HTML tree, with
// synchronous event dispatch, so the site controller runs natively.
package htmldom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/vcrobe/nojs-docs/dom"
	"github.com/vcrobe/nojs-docs/events"
)

// Compile-time assertions against the dom interfaces.
var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

type listener struct {
	fn dom.Listener
}

// Document is an in-memory page. It is not safe for concurrent mutation;
// callers serialise access the same way the browser's single thread does.
type Document struct {
	doc *goquery.Document

	mu           sync.Mutex
	listeners    map[*html.Node]map[string][]*listener
	docListeners map[string][]*listener
	focused      *html.Node
	scroll       map[*html.Node][2]int
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{
		doc:          doc,
		listeners:    make(map[*html.Node]map[string][]*listener),
		docListeners: make(map[string][]*listener),
		scroll:       make(map[*html.Node][2]int),
	}, nil
}

// ParseString is Parse for a literal page.
func ParseString(page string) (*Document, error) {
	return Parse(strings.NewReader(page))
}

// HTML returns the serialized page.
func (d *Document) HTML() string {
	out, err := d.doc.Html()
	if err != nil {
		return ""
	}
	return out
}

func (d *Document) wrap(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return &Element{d: d, n: n}
}

func (d *Document) wrapAll(s *goquery.Selection) []dom.Element {
	out := make([]dom.Element, 0, s.Length())
	for _, n := range s.Nodes {
		out = append(out, &Element{d: d, n: n})
	}
	return out
}

func first(s *goquery.Selection) *html.Node {
	if s.Length() == 0 {
		return nil
	}
	return s.Nodes[0]
}

// ByID returns the element whose id attribute equals id.
func (d *Document) ByID(id string) dom.Element {
	return d.wrap(findNode(d.doc.Nodes[0], func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	}))
}

// Query returns the first element matching selector.
func (d *Document) Query(selector string) dom.Element {
	return d.wrap(first(d.doc.Find(selector)))
}

// QueryAll returns every element matching selector, in document order.
func (d *Document) QueryAll(selector string) []dom.Element {
	return d.wrapAll(d.doc.Find(selector))
}

// Body returns the body element.
func (d *Document) Body() dom.Element {
	return d.Query("body")
}

// On registers a document-level listener.
func (d *Document) On(event string, fn dom.Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	l := &listener{fn: fn}
	d.docListeners[event] = append(d.docListeners[event], l)
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.docListeners[event] = removeListener(d.docListeners[event], l)
	}
}

func (d *Document) on(n *html.Node, event string, fn dom.Listener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	l := &listener{fn: fn}
	byEvent := d.listeners[n]
	if byEvent == nil {
		byEvent = make(map[string][]*listener)
		d.listeners[n] = byEvent
	}
	byEvent[event] = append(byEvent[event], l)
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if byEvent := d.listeners[n]; byEvent != nil {
			byEvent[event] = removeListener(byEvent[event], l)
			if len(byEvent[event]) == 0 {
				delete(byEvent, event)
			}
			if len(byEvent) == 0 {
				delete(d.listeners, n)
			}
		}
	}
}

func removeListener(ls []*listener, target *listener) []*listener {
	for i, l := range ls {
		if l == target {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}

// Dispatch delivers ev to target's listeners, then bubbles through its
// ancestors and finally the document. A nil target goes straight to the
// document.
func (d *Document) Dispatch(target dom.Element, ev events.Event) {
	var path []dom.Listener

	d.mu.Lock()
	if el, ok := target.(*Element); ok && el != nil {
		for n := el.n; n != nil; n = n.Parent {
			for _, l := range d.listeners[n][ev.Type] {
				path = append(path, l.fn)
			}
		}
	}
	for _, l := range d.docListeners[ev.Type] {
		path = append(path, l.fn)
	}
	d.mu.Unlock()

	for _, fn := range path {
		fn(ev)
	}
}

// Click dispatches a click on the first element matching selector.
func (d *Document) Click(selector string) error {
	el := d.Query(selector)
	if el == nil {
		return fmt.Errorf("click: no element matches %q", selector)
	}
	d.Dispatch(el, events.Event{Type: "click"})
	return nil
}

// Type sets the value of the element matching selector and fires an input
// event carrying it.
func (d *Document) Type(selector, value string) error {
	el := d.Query(selector)
	if el == nil {
		return fmt.Errorf("type: no element matches %q", selector)
	}
	el.(*Element).SetValue(value)
	d.Dispatch(el, events.Event{Type: "input", Value: value})
	return nil
}

// KeyDown fires a keydown on the element matching selector, or on the
// document when selector is empty.
func (d *Document) KeyDown(selector string, ev events.Event) error {
	ev.Type = "keydown"
	if selector == "" {
		d.Dispatch(nil, ev)
		return nil
	}
	el := d.Query(selector)
	if el == nil {
		return fmt.Errorf("keydown: no element matches %q", selector)
	}
	ev.Value = el.Value()
	d.Dispatch(el, ev)
	return nil
}

// Listeners counts the element listeners currently registered.
func (d *Document) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	total := 0
	for _, byEvent := range d.listeners {
		for _, ls := range byEvent {
			total += len(ls)
		}
	}
	return total
}

// Focused returns the element last given focus.
func (d *Document) Focused() dom.Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(d.focused)
}

// ScrollPosition returns the last ScrollTo coordinates of el.
func (d *Document) ScrollPosition(el dom.Element) (x, y int, ok bool) {
	e, isElement := el.(*Element)
	if !isElement {
		return 0, 0, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	pos, ok := d.scroll[e.n]
	return pos[0], pos[1], ok
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
