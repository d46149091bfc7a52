package libdiff

import "fmt"

// Reverse returns the changes which undo diff.  Inserts and deletes swap
// and replacements exchange From and To.
func Reverse(diff []Change) ([]Change, error) {
	res := make([]Change, len(diff))
	for i, c := range diff {
		switch c.Op {
		case Insert:
			res[i] = Change{Path: c.Path, Op: Delete, From: c.To}
		case Delete:
			res[i] = Change{Path: c.Path, Op: Insert, To: c.From}
		case Replace:
			if c.From == nil || c.To == nil {
				return nil, fmt.Errorf("%w: missing from/to in replace at %s", ErrBadChange, c.Path)
			}
			res[i] = Change{Path: c.Path, Op: Replace, From: c.To, To: c.From}
			if c.Delta != "" {
				res[i].Delta = reverseDelta(c)
			}
		default:
			return nil, fmt.Errorf("%w: unknown op %d at %s", ErrBadChange, c.Op, c.Path)
		}
	}
	return res, nil
}

func reverseDelta(c Change) string {
	var tmp []Change
	tmp = DiffString(tmp, c.Path, c.To, c.From)
	if len(tmp) == 0 {
		return ""
	}
	return tmp[0].Delta
}
