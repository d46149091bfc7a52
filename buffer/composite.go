package buffer

import (
	"slices"

	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/value"
)

// Composite buffers each child of a composite value.  The child buffers
// are rebuilt from scratch whenever the original changes.
//
// Fields added, removed or replaced with AddField, RemoveChild and
// ReplaceChild are kept pending like the edits of the children, and are
// written to the original on Apply if it implements FieldEditor.
type Composite struct {
	value.Base
	orig     value.Value
	names    []string
	children []Buffered
	edits    []fieldEdit
	removed  []value.Value
	applying bool
	sub      *value.Subscription
}

// FieldEditor is implemented by composites whose fields can be changed.
// *value.Composite implements it.
type FieldEditor interface {
	AddField(name string, v value.Value) bool
	RemoveChild(child value.Value) bool
	ReplaceChild(old, v value.Value) bool
}

// fieldEdit is a pending field: v replaces old, or is added when old is
// nil.
type fieldEdit struct {
	name string
	old  value.Value
	v    value.Value
}

func NewComposite(orig value.Value) *Composite {
	b := &Composite{orig: orig}
	b.Init(b)
	b.snapshot()
	b.sub = orig.Subscribe(value.ListenerFunc(b.upstream))
	return b
}

func (b *Composite) snapshot() {
	releaseAll(b, b.children)
	b.names, b.children = nil, nil
	it := b.orig.Iterator()
	for it.Next() {
		b.names = append(b.names, it.Name())
		b.children = append(b.children, b.wrap(it.Value()))
	}
	b.edits, b.removed = nil, nil
}

func (b *Composite) upstream(value.Value) {
	if b.applying {
		return
	}
	if debug.Buffer() {
		debug.Logf("buffer %s rebuild\n", value.Path(b.orig))
	}
	b.snapshot()
	b.FireValueChanged()
}

func (b *Composite) Kind() value.Kind      { return value.CompositeKind }
func (b *Composite) Original() value.Value { return b.orig }
func (b *Composite) Len() int              { return len(b.children) }

func (b *Composite) Child(i int) value.Value {
	if i < 0 || i >= len(b.children) {
		return nil
	}
	return b.children[i]
}

func (b *Composite) ChildName(i int) string {
	if i < 0 || i >= len(b.names) {
		return ""
	}
	return b.names[i]
}

func (b *Composite) ChildByName(name string) value.Value {
	for i, n := range b.names {
		if n == name {
			return b.children[i]
		}
	}
	return nil
}

// IsDirty reports pending field changes or a dirty child buffer.
func (b *Composite) IsDirty() bool {
	if len(b.edits) != 0 || len(b.removed) != 0 {
		return true
	}
	for _, c := range b.children {
		if c.IsDirty() {
			return true
		}
	}
	return false
}

// indexOf finds the visible child for v, which may be a child buffer or
// the value it wraps.
func (b *Composite) indexOf(v value.Value) int {
	for i, c := range b.children {
		if value.Value(c) == v || c.Original() == v {
			return i
		}
	}
	return -1
}

func (b *Composite) editOf(v value.Value) int {
	return slices.IndexFunc(b.edits, func(e fieldEdit) bool { return e.v == v })
}

func (b *Composite) wrap(v value.Value) Buffered {
	w := New(v)
	w.SetParent(b)
	return w
}

// AddField adds a field to the buffer.
func (b *Composite) AddField(name string, v value.Value) bool {
	if v == nil || b.indexOf(v) >= 0 {
		return false
	}
	b.edits = append(b.edits, fieldEdit{name: name, v: v})
	b.names = append(b.names, name)
	b.children = append(b.children, b.wrap(v))
	b.FireValueChanged()
	return true
}

// RemoveChild removes a field from the buffer.  Removing a pending field
// cancels it.
func (b *Composite) RemoveChild(child value.Value) bool {
	i := b.indexOf(child)
	if i < 0 {
		return false
	}
	w := b.children[i]
	b.names = slices.Delete(b.names, i, i+1)
	b.children = slices.Delete(b.children, i, i+1)
	releaseAll(b, []Buffered{w})
	orig := w.Original()
	if j := b.editOf(orig); j >= 0 {
		if old := b.edits[j].old; old != nil {
			b.removed = append(b.removed, old)
		}
		b.edits = slices.Delete(b.edits, j, j+1)
	} else {
		b.removed = append(b.removed, orig)
	}
	b.FireValueChanged()
	return true
}

// ReplaceChild puts v in place of old in the buffer, keeping old's name.
func (b *Composite) ReplaceChild(old, v value.Value) bool {
	i := b.indexOf(old)
	if i < 0 || v == nil || b.indexOf(v) >= 0 {
		return false
	}
	w := b.children[i]
	releaseAll(b, []Buffered{w})
	b.children[i] = b.wrap(v)
	orig := w.Original()
	if j := b.editOf(orig); j >= 0 {
		b.edits[j].v = v
	} else {
		b.edits = append(b.edits, fieldEdit{name: b.names[i], old: orig, v: v})
	}
	b.FireValueChanged()
	return true
}

// Apply applies every child buffer, then the pending field changes, and
// then takes a fresh copy of the original.  Field changes the original
// refuses, or all of them if it is not a FieldEditor, stay pending.
func (b *Composite) Apply() {
	if !b.IsDirty() {
		return
	}
	b.applying = true
	for _, c := range b.children {
		c.Apply()
	}
	var edits []fieldEdit
	var removed []value.Value
	fe, ok := b.orig.(FieldEditor)
	for _, e := range b.edits {
		switch {
		case !ok:
		case e.old == nil && fe.AddField(e.name, e.v):
			continue
		case e.old != nil && fe.ReplaceChild(e.old, e.v):
			continue
		}
		edits = append(edits, e)
	}
	for _, v := range b.removed {
		if !ok || !fe.RemoveChild(v) {
			removed = append(removed, v)
		}
	}
	b.applying = false
	if len(edits) != 0 || len(removed) != 0 {
		if debug.Buffer() {
			debug.Logf("buffer %s refused %d field changes\n", value.Path(b.orig), len(edits)+len(removed))
		}
		b.edits, b.removed = edits, removed
		b.FireValueChanged()
		return
	}
	b.snapshot()
	b.FireValueChanged()
}

func (b *Composite) Release() {
	b.sub.Unsubscribe()
	releaseAll(b, b.children)
}
