package memdom

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/editable/dom"
	"github.com/iw2rmb/editable/internal/log"
)

// styleTags maps style commands to the tag they insert and the tags that
// count as already applying the style.
var styleTags = map[string]struct {
	insert atom.Atom
	match  []atom.Atom
}{
	"bold":      {insert: atom.B, match: []atom.Atom{atom.B, atom.Strong}},
	"italic":    {insert: atom.I, match: []atom.Atom{atom.I, atom.Em}},
	"underline": {insert: atom.U, match: []atom.Atom{atom.U}},
}

// ExecCommand runs an editing command at the caret and dispatches "input"
// on success. Commands only apply to editable elements.
//
// Supported: insertText, insertHTML, delete, forwardDelete, selectAll,
// bold, italic, underline. Style commands toggle the style applied to the
// next inserted text.
func (e *Element) ExecCommand(name, value string) bool {
	if !e.IsEditable() {
		return false
	}
	if !e.hasCaret {
		e.SetCaretOffset(e.textLen())
	}

	switch name {
	case "insertText":
		if value == "" {
			return false
		}
		e.insertText(value)
	case "insertHTML":
		if !e.insertHTML(value) {
			return false
		}
	case "delete":
		if e.caret == 0 || !e.deleteRune(e.caret-1) {
			return false
		}
		e.caret--
	case "forwardDelete":
		if !e.deleteRune(e.caret) {
			return false
		}
	case "selectAll":
		e.caret = e.textLen()
		return true
	default:
		if _, ok := styleTags[name]; !ok {
			log.Debug(log.CatDOM, "unsupported command", "cmd", name)
			return false
		}
		if e.pending == nil {
			e.pending = make(map[string]bool)
		}
		e.pending[name] = !e.pending[name]
		return true
	}

	ev := dom.NewEvent("input", e)
	ev.Data = value
	e.Dispatch(ev)
	return true
}

// QueryCommandState reports whether a style command applies at the caret,
// taking pending toggles into account.
func (e *Element) QueryCommandState(name string) bool {
	if _, ok := styleTags[name]; !ok {
		return false
	}
	return e.styled(name) != e.pending[name]
}

// styled reports whether the caret sits inside an element applying style.
func (e *Element) styled(name string) bool {
	if !e.hasCaret {
		return false
	}
	t, _ := e.locate(e.caret)
	return t != nil && e.styleAncestor(t, name) != nil
}

func (e *Element) styleAncestor(n *html.Node, name string) *html.Node {
	tags := styleTags[name].match
	for p := n.Parent; p != nil && p != e.n; p = p.Parent {
		for _, a := range tags {
			if p.DataAtom == a {
				return p
			}
		}
	}
	return nil
}

// locate returns the text node holding rune offset off and the offset
// within it. A boundary between two nodes resolves to the end of the first.
func (e *Element) locate(off int) (*html.Node, int) {
	var (
		found *html.Node
		at    int
		acc   int
	)
	walkText(e.n, func(t *html.Node) bool {
		n := utf8.RuneCountInString(t.Data)
		if acc+n >= off {
			found, at = t, off-acc
			return true
		}
		acc += n
		return false
	})
	return found, at
}

func (e *Element) insertText(text string) {
	t, at := e.locate(e.caret)

	var on, off []string
	for name := range styleTags {
		if !e.pending[name] {
			continue
		}
		if e.styled(name) {
			off = append(off, name)
		} else {
			on = append(on, name)
		}
	}
	e.pending = nil

	if t != nil && len(on) == 0 && len(off) == 0 {
		runes := []rune(t.Data)
		t.Data = string(runes[:at]) + text + string(runes[at:])
		e.caret += utf8.RuneCountInString(text)
		return
	}

	// Leaving a style inserts after the outermost styled element being left,
	// splitting it at the caret when the caret is not at its end.
	var exit *html.Node
	atEnd := true
	if t != nil {
		for _, name := range off {
			if anc := e.styleAncestor(t, name); anc != nil && (exit == nil || isAncestor(anc, exit)) {
				exit = anc
			}
		}
		if exit != nil {
			atEnd = e.endsAt(exit, t, at)
			for name := range styleTags {
				if slices.Contains(off, name) || slices.Contains(on, name) {
					continue
				}
				if anc := e.styleAncestor(t, name); anc != nil && isAncestor(exit, anc) {
					on = append(on, name)
				}
			}
		}
	}

	parent, before := e.n, (*html.Node)(nil)
	if t != nil {
		parent = t.Parent
		runes := []rune(t.Data)
		t.Data = string(runes[:at])
		if rest := string(runes[at:]); rest != "" {
			parent.InsertBefore(&html.Node{Type: html.TextNode, Data: rest}, t.NextSibling)
		}
		before = t.NextSibling
	}
	if exit != nil {
		if !atEnd {
			splitAfter(exit, t)
		}
		parent, before = exit.Parent, exit.NextSibling
	}

	node := &html.Node{Type: html.TextNode, Data: text}
	slices.Sort(on)
	for _, name := range on {
		a := styleTags[name].insert
		wrap := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
		wrap.AppendChild(node)
		node = wrap
	}
	parent.InsertBefore(node, before)
	if t != nil && t.Data == "" {
		e.prune(t)
	}
	e.caret += utf8.RuneCountInString(text)
}

// endsAt reports whether offset at in text node t is the end of anc's text.
func (e *Element) endsAt(anc, t *html.Node, at int) bool {
	if at != utf8.RuneCountInString(t.Data) {
		return false
	}
	var last *html.Node
	walkText(anc, func(n *html.Node) bool {
		if n.Data != "" {
			last = n
		}
		return false
	})
	return last == nil || last == t
}

func (e *Element) insertHTML(markup string) bool {
	t, at := e.locate(e.caret)
	parent := e.n
	if t != nil {
		parent = t.Parent
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil || len(nodes) == 0 {
		return false
	}

	var before *html.Node
	if t != nil {
		runes := []rune(t.Data)
		t.Data = string(runes[:at])
		if rest := string(runes[at:]); rest != "" {
			parent.InsertBefore(&html.Node{Type: html.TextNode, Data: rest}, t.NextSibling)
		}
		before = t.NextSibling
	}

	inserted := 0
	for _, n := range nodes {
		parent.InsertBefore(n, before)
		if n.Type == html.TextNode {
			inserted += utf8.RuneCountInString(n.Data)
			continue
		}
		walkText(n, func(tn *html.Node) bool {
			inserted += utf8.RuneCountInString(tn.Data)
			return false
		})
	}
	if t != nil && t.Data == "" {
		e.prune(t)
	}
	e.caret += inserted
	return true
}

// deleteRune removes the rune at offset idx of the text content.
func (e *Element) deleteRune(idx int) bool {
	if idx < 0 {
		return false
	}
	acc := 0
	done := false
	walkText(e.n, func(t *html.Node) bool {
		runes := []rune(t.Data)
		if idx < acc+len(runes) {
			i := idx - acc
			t.Data = string(runes[:i]) + string(runes[i+1:])
			if t.Data == "" {
				e.prune(t)
			}
			done = true
			return true
		}
		acc += len(runes)
		return false
	})
	return done
}

// prune removes an emptied text node and any element ancestors it leaves
// empty, stopping at e.
func (e *Element) prune(n *html.Node) {
	for n != e.n && n.Parent != nil && n.FirstChild == nil {
		p := n.Parent
		p.RemoveChild(n)
		e.forget(n)
		n = p
	}
}

// splitAfter moves everything following n inside anc into a shallow copy of
// anc inserted right after it.
func splitAfter(anc, n *html.Node) {
	var carry *html.Node
	for cur := n; ; cur = cur.Parent {
		p := cur.Parent
		clone := &html.Node{Type: p.Type, Data: p.Data, DataAtom: p.DataAtom, Namespace: p.Namespace, Attr: slices.Clone(p.Attr)}
		if carry != nil && carry.FirstChild != nil {
			clone.AppendChild(carry)
		}
		for s := cur.NextSibling; s != nil; {
			next := s.NextSibling
			p.RemoveChild(s)
			clone.AppendChild(s)
			s = next
		}
		carry = clone
		if p == anc {
			break
		}
	}
	anc.Parent.InsertBefore(carry, anc.NextSibling)
}

func isAncestor(anc, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == anc {
			return true
		}
	}
	return false
}
