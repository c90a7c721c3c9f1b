package memdom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/editable/dom"
)

func editable(markup string, caret int) *Element {
	el := New("div", markup)
	el.SetEditable(true)
	el.SetCaretOffset(caret)
	return el
}

func TestExecCommand_RequiresEditable(t *testing.T) {
	el := New("div", "<p>x</p>")
	require.False(t, el.ExecCommand("insertText", "y"))
	require.Equal(t, "<p>x</p>", el.Content())
}

func TestExecCommand_InsertTextDispatchesInput(t *testing.T) {
	el := editable("<p>Hello</p>", 5)

	var inputs []*dom.Event
	el.AddEventListener("input", dom.NewListener(func(e *dom.Event) { inputs = append(inputs, e) }), false)

	require.True(t, el.ExecCommand("insertText", " there"))
	require.Equal(t, "<p>Hello there</p>", el.Content())
	off, _ := el.CaretOffset()
	require.Equal(t, 11, off)

	require.Len(t, inputs, 1)
	require.Equal(t, " there", inputs[0].Data)

	require.False(t, el.ExecCommand("insertText", ""))
	require.False(t, el.ExecCommand("justifyCenter", ""))
	require.Len(t, inputs, 1)
}

func TestExecCommand_InsertIntoEmptyElement(t *testing.T) {
	el := New("div", "")
	el.SetEditable(true)

	require.True(t, el.ExecCommand("insertText", "a<b"))
	require.Equal(t, "a&lt;b", el.Content())
	off, ok := el.CaretOffset()
	require.True(t, ok)
	require.Equal(t, 3, off)
}

func TestExecCommand_BoldTogglesTypingStyle(t *testing.T) {
	el := editable("<p>ab</p>", 2)
	require.False(t, el.QueryCommandState("bold"))

	require.True(t, el.ExecCommand("bold", ""))
	require.True(t, el.QueryCommandState("bold"))

	require.True(t, el.ExecCommand("insertText", "c"))
	require.Equal(t, "<p>ab<b>c</b></p>", el.Content())
	require.True(t, el.QueryCommandState("bold"))

	require.True(t, el.ExecCommand("bold", ""))
	require.False(t, el.QueryCommandState("bold"))

	require.True(t, el.ExecCommand("insertText", "d"))
	require.Equal(t, "<p>ab<b>c</b>d</p>", el.Content())
	require.False(t, el.QueryCommandState("bold"))
	require.False(t, el.QueryCommandState("unknown"))
}

func TestExecCommand_BoldOffInsideStyledElementSplitsIt(t *testing.T) {
	el := editable("<b>abc</b>", 1)
	require.True(t, el.QueryCommandState("bold"))

	require.True(t, el.ExecCommand("bold", ""))
	require.False(t, el.QueryCommandState("bold"))

	require.True(t, el.ExecCommand("insertText", "X"))
	require.Equal(t, "<b>a</b>X<b>bc</b>", el.Content())
	require.Equal(t, "aXbc", el.Text())
	require.False(t, el.QueryCommandState("bold"))
	off, _ := el.CaretOffset()
	require.Equal(t, 2, off)
}

func TestExecCommand_BoldOffAtElementStart(t *testing.T) {
	el := editable("<b>abc</b>", 0)
	require.True(t, el.ExecCommand("bold", ""))
	require.True(t, el.ExecCommand("insertText", "X"))
	require.Equal(t, "X<b>abc</b>", el.Content())
}

func TestExecCommand_BoldOffKeepsInnerStyles(t *testing.T) {
	el := editable("<b><i>abc</i></b>", 1)
	require.True(t, el.ExecCommand("bold", ""))
	require.True(t, el.ExecCommand("insertText", "X"))
	require.Equal(t, "<b><i>a</i></b><i>X</i><b><i>bc</i></b>", el.Content())
	require.False(t, el.QueryCommandState("bold"))
	require.True(t, el.QueryCommandState("italic"))
}

func TestQueryCommandState_StrongCountsAsBold(t *testing.T) {
	el := editable("<strong>ab</strong>cd", 1)
	require.True(t, el.QueryCommandState("bold"))
	require.False(t, el.QueryCommandState("italic"))

	el.SetCaretOffset(3)
	require.False(t, el.QueryCommandState("bold"))
}

func TestExecCommand_DeleteAndForwardDelete(t *testing.T) {
	el := editable("<p>a<b>b</b></p>", 2)

	require.True(t, el.ExecCommand("delete", ""))
	require.Equal(t, "<p>a</p>", el.Content())
	off, _ := el.CaretOffset()
	require.Equal(t, 1, off)

	require.False(t, el.ExecCommand("forwardDelete", ""))

	el.SetCaretOffset(0)
	require.False(t, el.ExecCommand("delete", ""))
	require.True(t, el.ExecCommand("forwardDelete", ""))
	require.Equal(t, "", el.Content())
}

func TestExecCommand_InsertHTML(t *testing.T) {
	el := editable("<p>ab</p>", 1)
	require.True(t, el.ExecCommand("insertHTML", "<i>x</i>y"))
	require.Equal(t, "<p>a<i>x</i>yb</p>", el.Content())
	off, _ := el.CaretOffset()
	require.Equal(t, 3, off)
}

func TestExecCommand_InsertHTMLEmptyLeavesTreeUntouched(t *testing.T) {
	el := editable("<p>ab</p>", 1)
	require.False(t, el.ExecCommand("insertHTML", ""))
	require.Equal(t, "<p>ab</p>", el.Content())
	require.Equal(t, "ab", el.Text())
}

func TestExecCommand_SelectAllMovesCaretToEnd(t *testing.T) {
	el := editable("<p>abc</p>", 0)
	require.True(t, el.ExecCommand("selectAll", ""))
	off, _ := el.CaretOffset()
	require.Equal(t, 3, off)
}
