package tree

import "strings"

// Style controls how a branch prefix is drawn.
type Style struct {
	Spacing int // spaces between the bars of two nesting levels
	Hyphens int // hyphens after the last bar
}

// DefaultStyle draws branches like "|    |--- ".
var DefaultStyle = Style{Spacing: 4, Hyphens: 3}

// Branch returns the prefix for an entry at depth, using DefaultStyle.
func Branch(depth int) string {
	return DefaultStyle.Branch(depth)
}

// Branch returns the prefix for an entry at depth: one "|" plus Spacing
// spaces per level, then "|", Hyphens hyphens and a trailing space.
//
//	Style{Spacing: 4, Hyphens: 3}.Branch(2) == "|    |    |--- "
func (s Style) Branch(depth int) string {
	unit := "|" + strings.Repeat(" ", max(s.Spacing, 0))

	var b strings.Builder
	b.WriteString(strings.Repeat(unit, max(depth, 0)))
	b.WriteString("|")
	b.WriteString(strings.Repeat("-", max(s.Hyphens, 0)))
	b.WriteString(" ")
	return b.String()
}
