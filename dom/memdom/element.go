package memdom

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/internal/log"
)

const attrEditable = "contenteditable"

// tree holds the wrappers and compiled selectors shared by one node tree.
type tree struct {
	wrappers  map[*html.Node]*Element
	selectors map[string]cascadia.Selector
}

func (t *tree) wrap(n *html.Node) *Element {
	if el, ok := t.wrappers[n]; ok {
		return el
	}
	el := &Element{t: t, n: n}
	t.wrappers[n] = el
	return el
}

func (t *tree) selector(s string) (cascadia.Selector, bool) {
	if sel, ok := t.selectors[s]; ok {
		return sel, sel != nil
	}
	sel, err := cascadia.Compile(s)
	if err != nil {
		log.Warn(log.CatDOM, "invalid selector", "selector", s, "error", err)
		t.selectors[s] = nil
		return nil, false
	}
	t.selectors[s] = sel
	return sel, true
}

type registration struct {
	l       *dom.Listener
	capture bool
}

// Element is an element node in an in-memory tree.
type Element struct {
	t *tree
	n *html.Node

	listeners map[string][]registration

	caret    int
	hasCaret bool
	pending  map[string]bool
}

var _ dom.Host = (*Element)(nil)
var _ dom.Matcher = (*Element)(nil)

// New creates a detached root element with the given tag and content.
func New(tag, markup string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	t := &tree{
		wrappers:  make(map[*html.Node]*Element),
		selectors: make(map[string]cascadia.Selector),
	}
	el := t.wrap(n)
	el.SetContent(markup)
	return el
}

func (e *Element) Tag() string { return e.n.Data }

// Parent returns the parent element, or nil at the root.
func (e *Element) Parent() dom.Node {
	p := e.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.t.wrap(p)
}

// Attr returns the value of attribute key.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute key to val.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.n.Attr {
		if a.Key == key {
			e.n.Attr[i].Val = val
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: val})
}

// Query returns the first descendant matching selector.
func (e *Element) Query(selector string) (*Element, bool) {
	sel, ok := e.t.selector(selector)
	if !ok {
		return nil, false
	}
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if n := sel.MatchFirst(c); n != nil {
			return e.t.wrap(n), true
		}
	}
	return nil, false
}

// QueryAll returns every descendant matching selector in document order.
func (e *Element) QueryAll(selector string) []*Element {
	sel, ok := e.t.selector(selector)
	if !ok {
		return nil
	}
	var out []*Element
	for _, n := range sel.MatchAll(e.n) {
		if n != e.n {
			out = append(out, e.t.wrap(n))
		}
	}
	return out
}

// Matches reports whether node is an element of this tree matching selector.
func (e *Element) Matches(node dom.Node, selector string) bool {
	el, ok := node.(*Element)
	if !ok || el.t != e.t {
		return false
	}
	sel, ok := e.t.selector(selector)
	return ok && sel.Match(el.n)
}

// SetEditable toggles the contenteditable attribute.
func (e *Element) SetEditable(on bool) {
	if on {
		e.SetAttr(attrEditable, "true")
		return
	}
	e.SetAttr(attrEditable, "false")
}

func (e *Element) IsEditable() bool {
	v, _ := e.Attr(attrEditable)
	return v == "true"
}

// Content returns the serialized children.
func (e *Element) Content() string {
	var buf bytes.Buffer
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			log.ErrorErr(log.CatDOM, "render", err, "tag", e.n.Data)
		}
	}
	return buf.String()
}

// SetContent replaces the children with markup parsed as a fragment.
func (e *Element) SetContent(markup string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		e.forget(c)
		c = next
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		log.ErrorErr(log.CatDOM, "parse fragment", err, "tag", e.n.Data)
		return
	}
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
	if e.hasCaret {
		e.caret = min(e.caret, e.textLen())
	}
}

func (e *Element) forget(n *html.Node) {
	delete(e.t.wrappers, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.forget(c)
	}
}

// Text returns the concatenated text content.
func (e *Element) Text() string {
	var sb strings.Builder
	walkText(e.n, func(t *html.Node) bool {
		sb.WriteString(t.Data)
		return false
	})
	return sb.String()
}

func (e *Element) textLen() int {
	n := 0
	walkText(e.n, func(t *html.Node) bool {
		n += utf8.RuneCountInString(t.Data)
		return false
	})
	return n
}

// CaretOffset returns the caret as a rune offset into Text.
func (e *Element) CaretOffset() (int, bool) {
	return e.caret, e.hasCaret
}

// SetCaretOffset places the caret, clamped into the text content.
func (e *Element) SetCaretOffset(off int) {
	e.caret = max(0, min(off, e.textLen()))
	e.hasCaret = true
}

// ClearCaret removes the caret from the element.
func (e *Element) ClearCaret() {
	e.caret, e.hasCaret = 0, false
}

// walkText visits text nodes below n in document order until fn returns true.
func walkText(n *html.Node, fn func(*html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if fn(c) {
				return true
			}
			continue
		}
		if walkText(c, fn) {
			return true
		}
	}
	return false
}

// Run is a stretch of text sharing the same inline styles.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

// Runs returns the text content split into styled runs in document order.
func (e *Element) Runs() []Run {
	var out []Run
	walkText(e.n, func(t *html.Node) bool {
		if t.Data == "" {
			return false
		}
		r := Run{
			Text:      t.Data,
			Bold:      e.styleAncestor(t, "bold") != nil,
			Italic:    e.styleAncestor(t, "italic") != nil,
			Underline: e.styleAncestor(t, "underline") != nil,
		}
		if n := len(out); n > 0 && out[n-1].SameStyle(r) {
			out[n-1].Text += r.Text
			return false
		}
		out = append(out, r)
		return false
	})
	return out
}

// SameStyle reports whether r and o carry the same styles.
func (r Run) SameStyle(o Run) bool {
	return r.Bold == o.Bold && r.Italic == o.Italic && r.Underline == o.Underline
}
