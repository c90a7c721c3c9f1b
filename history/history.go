package history

// DefaultLimit is the capacity of a History created with New.
const DefaultLimit = 1000

// History is a bounded sequence of snapshots with a cursor.
//
// The cursor is -1 when there is nothing to step back to, otherwise it is a
// valid index. It is not safe for concurrent use; a History belongs to a
// single widget.
type History struct {
	vals  []Snapshot
	limit int
	i     int
}

// New creates a History holding initial, with the cursor on the last entry.
func New(initial ...Snapshot) *History {
	vals := append([]Snapshot(nil), initial...)
	return &History{
		vals:  vals,
		limit: DefaultLimit,
		i:     len(vals) - 1,
	}
}

// SetLimit sets the capacity to n and evicts the oldest entries until the
// history fits, leaving the cursor on the last entry.
//
// Values below 1 are ignored. Callers are responsible for passing a sane
// limit.
func (h *History) SetLimit(n int) {
	if n < 1 {
		return
	}
	h.limit = n
	h.evict()
}

func (h *History) Limit() int { return h.limit }

func (h *History) Len() int { return len(h.vals) }

func (h *History) Cursor() int { return h.i }

// Add appends s and moves the cursor onto it, evicting from the front when
// the history is over capacity.
func (h *History) Add(s Snapshot) {
	h.vals = append(h.vals, s)
	h.i = len(h.vals) - 1
	h.evict()
}

// Prev returns the snapshot under the cursor and then steps the cursor back.
// ok is false once the cursor has walked past the first entry.
func (h *History) Prev() (s Snapshot, ok bool) {
	if h.i < 0 {
		return Snapshot{}, false
	}
	s = h.vals[h.i]
	h.i--
	return s, true
}

// Next steps the cursor forward and returns the snapshot it lands on.
// ok is false when the cursor is already on the last entry.
func (h *History) Next() (s Snapshot, ok bool) {
	if h.i == len(h.vals)-1 {
		return Snapshot{}, false
	}
	h.i++
	return h.vals[h.i], true
}

// Reset moves the cursor back onto the last entry.
func (h *History) Reset() {
	h.i = len(h.vals) - 1
}

// CanUndo reports whether an entry exists behind the cursor beyond index 0.
func (h *History) CanUndo() bool { return 0 < h.i }

// CanRedo reports whether an entry exists after the cursor.
func (h *History) CanRedo() bool { return len(h.vals)-1 > h.i }

// Snapshots returns a copy of the retained snapshots, oldest first.
func (h *History) Snapshots() []Snapshot {
	return append([]Snapshot(nil), h.vals...)
}

func (h *History) evict() {
	if excess := len(h.vals) - h.limit; excess > 0 {
		h.vals = append(h.vals[:0:0], h.vals[excess:]...)
	}
	h.Reset()
}
