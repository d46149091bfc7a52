package libdiff

import (
	"fmt"

	"github.com/ares-editor/valtree/value"
)

// Change records one difference between two value trees.  Path locates
// the change relative to the roots passed to Diff.  From is nil for an
// Insert and To is nil for a Delete.
//
// For string replacements where a character level diff is smaller than
// the strings themselves, Delta holds a go-diff delta of From to To.
type Change struct {
	Path  string
	Op    Op
	From  value.Value
	To    value.Value
	Delta string
}

func MakeChange(path string, from, to value.Value) Change {
	switch {
	case from == nil:
		return Change{Path: path, Op: Insert, To: to}
	case to == nil:
		return Change{Path: path, Op: Delete, From: from}
	default:
		return Change{Path: path, Op: Replace, From: from, To: to}
	}
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op.Sigil(), c.Path, value.Dump(c.To, false))
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op.Sigil(), c.Path, value.Dump(c.From, false))
	default:
		return fmt.Sprintf("%s %s: %s -> %s", c.Op.Sigil(), c.Path,
			value.Dump(c.From, false), value.Dump(c.To, false))
	}
}
