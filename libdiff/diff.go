package libdiff

import "github.com/ares-editor/valtree/value"

// DiffFunc diffs the values found at path in two trees, appending to
// dst.
type DiffFunc func(dst []Change, path string, from, to value.Value) []Change

// Diff produces the changes which take from to to.  If there are no
// differences, Diff returns nil.
//
//   - if the kinds of from and to differ the result is a single Replace
//   - composites are compared field by field: a name only in from is a
//     Delete, a name only in to is an Insert, shared names recurse
//   - collections are aligned by a sequence diff of child summaries, see
//     [DiffCollectionByIndex]
//   - scalars which differ are a Replace, strings carrying a Delta when
//     a character diff is worthwhile
//
// The result may be reversed with [Reverse] and applied with [Patch].
func Diff(from, to value.Value) []Change {
	return doDiff(nil, "$", from, to)
}

func doDiff(dst []Change, path string, from, to value.Value) []Change {
	if from.Kind() != to.Kind() {
		return append(dst, MakeChange(path, from, to))
	}
	switch from.Kind() {
	case value.CompositeKind:
		return DiffComposite(dst, path, from, to, doDiff)
	case value.CollectionKind:
		return DiffCollectionByIndex(dst, path, from, to, doDiff)
	case value.StringKind:
		return DiffString(dst, path, from, to)
	case value.NoneKind:
		return dst
	default:
		if value.Equal(from, to) {
			return dst
		}
		return append(dst, MakeChange(path, from, to))
	}
}

// DiffComposite compares two composites by child name.  Duplicate names
// match positionally among themselves.
func DiffComposite(dst []Change, path string, from, to value.Value, df DiffFunc) []Change {
	toUsed := make([]bool, to.Len())
	for i := range from.Len() {
		name := from.ChildName(i)
		j := nthNamed(to, name, occurrence(from, i), toUsed)
		if j == -1 {
			dst = append(dst, MakeChange(value.JoinField(path, name), from.Child(i), nil))
			continue
		}
		toUsed[j] = true
		dst = df(dst, value.JoinField(path, name), from.Child(i), to.Child(j))
	}
	for j := range to.Len() {
		if toUsed[j] {
			continue
		}
		dst = append(dst, MakeChange(value.JoinField(path, to.ChildName(j)), nil, to.Child(j)))
	}
	return dst
}

// occurrence returns how many children before i share i's name.
func occurrence(v value.Value, i int) int {
	name, n := v.ChildName(i), 0
	for j := range i {
		if v.ChildName(j) == name {
			n++
		}
	}
	return n
}

func nthNamed(v value.Value, name string, nth int, used []bool) int {
	for j := range v.Len() {
		if v.ChildName(j) != name {
			continue
		}
		if nth == 0 {
			if used[j] {
				return -1
			}
			return j
		}
		nth--
	}
	return -1
}
