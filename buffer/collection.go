package buffer

import (
	"slices"

	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/value"
)

// Collection buffers a collection value: each member is wrapped in its
// own buffer and membership changes are kept in added and removed lists
// until Apply.
type Collection struct {
	value.Base
	orig     value.Value
	children []Buffered
	added    []value.Value
	removed  []value.Value
	dirty    bool
	applying bool
	sub      *value.Subscription
}

func NewCollection(orig value.Value) *Collection {
	b := &Collection{orig: orig}
	b.Init(b)
	b.snapshot()
	b.sub = orig.Subscribe(value.ListenerFunc(b.upstream))
	return b
}

func (b *Collection) snapshot() {
	releaseAll(b, b.children)
	b.children = nil
	it := b.orig.Iterator()
	for it.Next() {
		b.children = append(b.children, b.wrap(it.Value()))
	}
	b.added, b.removed = nil, nil
	b.dirty = false
}

func (b *Collection) wrap(v value.Value) Buffered {
	w := New(v)
	w.SetParent(b)
	return w
}

func (b *Collection) upstream(value.Value) {
	if b.applying {
		return
	}
	if debug.Buffer() {
		debug.Logf("buffer %s resync (added=%d removed=%d)\n", value.Path(b.orig), len(b.added), len(b.removed))
	}
	b.snapshot()
	b.FireValueChanged()
}

func (b *Collection) Kind() value.Kind      { return value.CollectionKind }
func (b *Collection) Original() value.Value { return b.orig }
func (b *Collection) Len() int              { return len(b.children) }

func (b *Collection) Child(i int) value.Value {
	if i < 0 || i >= len(b.children) {
		return nil
	}
	return b.children[i]
}

// IsDirty reports pending membership changes or member edits.
func (b *Collection) IsDirty() bool {
	if b.dirty {
		return true
	}
	for _, c := range b.children {
		if c.IsDirty() {
			return true
		}
	}
	return false
}

// Pending returns copies of the added and removed lists.
func (b *Collection) Pending() (added, removed []value.Value) {
	return slices.Clone(b.added), slices.Clone(b.removed)
}

// indexOf finds the visible member for v, which may be a member buffer
// or the value it wraps.
func (b *Collection) indexOf(v value.Value) int {
	for i, c := range b.children {
		if value.Value(c) == v || c.Original() == v {
			return i
		}
	}
	return -1
}

func (b *Collection) updateDirty() {
	b.dirty = len(b.added) != 0 || len(b.removed) != 0
}

// MakeValue creates a detached member with the original's maker.
func (b *Collection) MakeValue(hints map[string]string) value.Value {
	m, ok := b.orig.(value.Maker)
	if !ok {
		return nil
	}
	return m.MakeValue(hints)
}

// NewValue creates a member from hints with the original's maker and adds
// it to the buffer.  The member buffer is returned.
func (b *Collection) NewValue(hintIndex int, selected value.Value, hints map[string]string) value.Value {
	child := b.MakeValue(hints)
	if child == nil {
		return nil
	}
	index := hintIndex
	if index < 0 && selected != nil {
		if i := b.indexOf(selected); i >= 0 {
			index = i + 1
		}
	}
	if !b.InsertValue(index, child) {
		return nil
	}
	return b.children[b.indexOf(child)]
}

// AddValue adds child to the buffer.  If child is pending removal the
// removal is cancelled instead.
func (b *Collection) AddValue(child value.Value) bool {
	return b.InsertValue(-1, child)
}

// InsertValue adds child at index, or at the end when index is out of range.
func (b *Collection) InsertValue(index int, child value.Value) bool {
	if child == nil || b.indexOf(child) >= 0 {
		return false
	}
	if i := slices.Index(b.removed, child); i >= 0 {
		b.removed = slices.Delete(b.removed, i, i+1)
	} else {
		b.added = append(b.added, child)
	}
	if index < 0 || index > len(b.children) {
		index = len(b.children)
	}
	b.children = slices.Insert(b.children, index, b.wrap(child))
	b.updateDirty()
	b.FireValueChanged()
	return true
}

// DeleteValue removes a member from the buffer.  If the member is pending
// addition the addition is cancelled instead.
func (b *Collection) DeleteValue(child value.Value) bool {
	i := b.indexOf(child)
	if i < 0 {
		return false
	}
	w := b.children[i]
	b.children = slices.Delete(b.children, i, i+1)
	releaseAll(b, []Buffered{w})
	orig := w.Original()
	if j := slices.Index(b.added, orig); j >= 0 {
		b.added = slices.Delete(b.added, j, j+1)
	} else {
		b.removed = append(b.removed, orig)
	}
	b.updateDirty()
	b.FireValueChanged()
	return true
}

// Apply applies the member buffers, then adds and removes members of the
// original, then takes a fresh copy of it.
//
// Added members go to the position they have in the buffer when the
// original implements value.Inserter, otherwise they are appended.
// Members the original refuses to add or remove stay pending and the
// buffer stays dirty.
func (b *Collection) Apply() {
	if !b.IsDirty() {
		return
	}
	if debug.Buffer() {
		debug.Logf("buffer %s apply (added=%d removed=%d)\n", value.Path(b.orig), len(b.added), len(b.removed))
	}
	b.applying = true
	for _, c := range b.children {
		c.Apply()
	}
	var failedAdds, failedRemoves []value.Value
	for _, v := range b.addedInOrder() {
		if !b.commitAdd(v) {
			failedAdds = append(failedAdds, v)
		}
	}
	for _, v := range b.removed {
		if !b.orig.DeleteValue(v) {
			failedRemoves = append(failedRemoves, v)
		}
	}
	b.applying = false
	if len(failedAdds) != 0 || len(failedRemoves) != 0 {
		if debug.Buffer() {
			debug.Logf("buffer %s refused (added=%d removed=%d)\n", value.Path(b.orig), len(failedAdds), len(failedRemoves))
		}
		b.added, b.removed = failedAdds, failedRemoves
		b.updateDirty()
		b.FireValueChanged()
		return
	}
	b.snapshot()
	b.FireValueChanged()
}

// addedInOrder returns the added members in buffer order.
func (b *Collection) addedInOrder() []value.Value {
	res := make([]value.Value, 0, len(b.added))
	for _, c := range b.children {
		if slices.Contains(b.added, c.Original()) {
			res = append(res, c.Original())
		}
	}
	return res
}

// commitAdd adds v to the original right after the member which precedes
// it in the buffer.  Members pending removal are still in the original,
// so positions are found by identity rather than by index.
func (b *Collection) commitAdd(v value.Value) bool {
	ins, ok := b.orig.(value.Inserter)
	if !ok {
		return b.orig.AddValue(v)
	}
	index := 0
	if i := b.indexOf(v); i > 0 {
		index = value.IndexOf(b.orig, b.children[i-1].Original()) + 1
		if index == 0 {
			index = -1
		}
	}
	return ins.InsertValue(index, v)
}

func (b *Collection) Release() {
	b.sub.Unsubscribe()
	releaseAll(b, b.children)
}
