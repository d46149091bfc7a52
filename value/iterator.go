package value

import "iter"

// Iterator walks the children of a value.  Each iterator carries its own
// cursor so several traversals of one value may be interleaved.
//
//	it := v.Iterator()
//	for it.Next() {
//		use(it.Name(), it.Value())
//	}
type Iterator struct {
	v   Value
	pos int
}

func NewIterator(v Value) *Iterator {
	return &Iterator{v: v, pos: -1}
}

// Next advances the cursor and reports whether a child is available.
func (it *Iterator) Next() bool {
	if it.v == nil {
		return false
	}
	if it.pos < it.v.Len() {
		it.pos++
	}
	return it.pos < it.v.Len()
}

// HasNext reports whether Next would succeed without moving the cursor.
func (it *Iterator) HasNext() bool {
	return it.v != nil && it.pos+1 < it.v.Len()
}

func (it *Iterator) Index() int {
	return it.pos
}

// Value returns the current child, or nil before the first call to Next
// or after exhaustion.
func (it *Iterator) Value() Value {
	if it.v == nil || it.pos < 0 || it.pos >= it.v.Len() {
		return nil
	}
	return it.v.Child(it.pos)
}

// Name returns the name of the current child.  Collection children have
// no name.
func (it *Iterator) Name() string {
	if it.v == nil || it.pos < 0 || it.pos >= it.v.Len() {
		return ""
	}
	return it.v.ChildName(it.pos)
}

// Reset rewinds the cursor to before the first child.
func (it *Iterator) Reset() {
	it.pos = -1
}

// All returns a sequence of (name, child) pairs of v.
func All(v Value) iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		it := v.Iterator()
		for it.Next() {
			if !yield(it.Name(), it.Value()) {
				return
			}
		}
	}
}

// Children returns the children of v in order.
func Children(v Value) []Value {
	n := v.Len()
	res := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, v.Child(i))
	}
	return res
}

// IndexOf returns the position of child among v's children, or -1.
func IndexOf(v, child Value) int {
	n := v.Len()
	for i := 0; i < n; i++ {
		if v.Child(i) == child {
			return i
		}
	}
	return -1
}
