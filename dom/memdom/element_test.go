package memdom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/editable/dom"
)

func TestNew_RoundTripsContent(t *testing.T) {
	el := New("div", "<p>Hello <b>world</b></p>")
	require.Equal(t, "<p>Hello <b>world</b></p>", el.Content())
	require.Equal(t, "Hello world", el.Text())
	require.Equal(t, "div", el.Tag())
	require.Nil(t, el.Parent())
}

func TestSetEditable(t *testing.T) {
	el := New("div", "")
	require.False(t, el.IsEditable())

	el.SetEditable(true)
	require.True(t, el.IsEditable())
	v, ok := el.Attr("contenteditable")
	require.True(t, ok)
	require.Equal(t, "true", v)

	el.SetEditable(false)
	require.False(t, el.IsEditable())
}

func TestQueryAndMatches(t *testing.T) {
	el := New("div", `<ul><li class="item">a</li><li class="item"><b>b</b></li></ul>`)

	b, ok := el.Query("b")
	require.True(t, ok)
	require.Equal(t, "b", b.Tag())
	require.True(t, el.Matches(b, "li.item > b"))
	require.False(t, el.Matches(b, "li"))
	require.False(t, el.Matches(b, "li[[")) // invalid selector

	items := el.QueryAll(".item")
	require.Len(t, items, 2)
	require.Equal(t, dom.Node(items[1]), b.Parent())

	other := New("div", "<b>x</b>")
	ob, _ := other.Query("b")
	require.False(t, el.Matches(ob, "b"))

	_, ok = el.Query("div")
	require.False(t, ok, "root is not its own descendant")
}

func TestSetContent_ClampsCaret(t *testing.T) {
	el := New("div", "<p>Hello</p>")
	el.SetCaretOffset(99)
	off, ok := el.CaretOffset()
	require.True(t, ok)
	require.Equal(t, 5, off)

	el.SetContent("hi")
	off, _ = el.CaretOffset()
	require.Equal(t, 2, off)

	el.ClearCaret()
	_, ok = el.CaretOffset()
	require.False(t, ok)
}

func TestRuns_MergesAdjacentStyles(t *testing.T) {
	el := New("div", "<p>a<b>b</b><strong>c</strong><i><u>d</u></i>e</p>")
	require.Equal(t, []Run{
		{Text: "a"},
		{Text: "bc", Bold: true},
		{Text: "d", Italic: true, Underline: true},
		{Text: "e"},
	}, el.Runs())
}
