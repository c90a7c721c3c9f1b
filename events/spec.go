package events

import (
	"strings"
	"unicode"
)

// Spec is a parsed binding specification: "name" or "name selector".
type Spec struct {
	Name     string
	Selector string
}

// Delegated reports whether the binding filters by selector.
func (s Spec) Delegated() bool { return s.Selector != "" }

// ParseSpec splits an event specification on the first run of whitespace.
func ParseSpec(spec string) Spec {
	spec = strings.TrimSpace(spec)
	i := strings.IndexFunc(spec, unicode.IsSpace)
	if i < 0 {
		return Spec{Name: spec}
	}
	return Spec{Name: spec[:i], Selector: strings.TrimSpace(spec[i:])}
}

// nonBubbling events must be captured to be observed on descendants.
var nonBubbling = map[string]bool{
	"focus": true,
	"blur":  true,
}
