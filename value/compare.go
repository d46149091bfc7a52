package value

import (
	"cmp"
	"strings"
)

// Compare orders two value trees.  The result is 0 if a and b hold the
// same data, -1 if a < b and +1 if a > b.  Kinds are ordered
// None < Bool < Long < Float < String < Collection < Composite.
func Compare(a, b Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA, rankB := rank(a.Kind()), rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Kind() {
	case StringKind:
		return strings.Compare(a.Str(), b.Str())
	case LongKind:
		return cmp.Compare(a.Long(), b.Long())
	case FloatKind:
		return cmp.Compare(a.Float(), b.Float())
	case BoolKind:
		if a.Bool() == b.Bool() {
			return 0
		}
		if !a.Bool() {
			return -1
		}
		return 1
	case CollectionKind:
		return compareChildren(a, b, false)
	case CompositeKind:
		return compareChildren(a, b, true)
	}
	return 0
}

func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func rank(k Kind) int {
	switch k {
	case NoneKind:
		return 0
	case BoolKind:
		return 1
	case LongKind:
		return 2
	case FloatKind:
		return 3
	case StringKind:
		return 4
	case CollectionKind:
		return 5
	case CompositeKind:
		return 6
	}
	return 7
}

func compareChildren(a, b Value, named bool) int {
	na, nb := a.Len(), b.Len()
	if named && na != nb {
		return cmp.Compare(na, nb)
	}
	for i := 0; i < min(na, nb); i++ {
		if named {
			if c := strings.Compare(a.ChildName(i), b.ChildName(i)); c != 0 {
				return c
			}
		}
		if c := Compare(a.Child(i), b.Child(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(na, nb)
}
