package cfa

import "strings"

// String renders every primitive in the bundle, one per line, in the
// order they were merged.
func (b *Bundle) String() string {
	lines := make([]string, len(b.Prims))
	for i, p := range b.Prims {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}
