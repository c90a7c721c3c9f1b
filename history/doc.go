// Package history implements the bounded undo/redo history used by the
// editable widget.
//
// A History is a capped, ordered sequence of Snapshots with a cursor. Prev
// walks backward starting with the entry under the cursor; Next walks
// forward again. Adding past the limit evicts the oldest entries first.
package history
