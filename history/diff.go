package history

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Delta summarizes the content difference between two snapshots.
type Delta struct {
	Inserted int // runes
	Deleted  int // runes
	Patch    string
}

func (d Delta) IsZero() bool { return d.Inserted == 0 && d.Deleted == 0 }

// Diff computes the Delta that turns from into to.
func Diff(from, to Snapshot) Delta {
	if from.content == to.content {
		return Delta{}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from.content, to.content, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var d Delta
	for _, df := range diffs {
		switch df.Type {
		case diffmatchpatch.DiffInsert:
			d.Inserted += utf8.RuneCountInString(df.Text)
		case diffmatchpatch.DiffDelete:
			d.Deleted += utf8.RuneCountInString(df.Text)
		}
	}
	d.Patch = dmp.PatchToText(dmp.PatchMake(from.content, diffs))
	return d
}
