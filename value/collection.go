package value

import (
	"slices"

	"github.com/ares-editor/valtree/debug"
)

// Source materializes the members of a Collection.
type Source interface {
	UpdateChildren() []Value
}

// Maker is implemented by sources which can create detached members from
// creation hints.  The meaning of hint keys is up to the source.
type Maker interface {
	MakeValue(hints map[string]string) Value
}

// Inserter is implemented by sources which accept new members.  A negative
// index appends.
type Inserter interface {
	InsertValue(index int, child Value) bool
}

// Deleter is implemented by sources which can remove members.
type Deleter interface {
	DeleteValue(child Value) bool
}

// MakeFunc creates a detached value from creation hints.
type MakeFunc func(hints map[string]string) Value

// SourceFunc adapts a function to a read only Source.
type SourceFunc func() []Value

func (f SourceFunc) UpdateChildren() []Value { return f() }

// Collection is an ordered list of unnamed children which are computed
// lazily from a Source.  Children are recomputed on the first access after
// Refresh, so callers holding a child must assume it may be stale after
// the collection refreshed.
type Collection struct {
	Base
	src      Source
	children []Value
	dirty    bool
}

func NewCollection(src Source) *Collection {
	c := &Collection{src: src, dirty: true}
	c.Init(c)
	return c
}

func (c *Collection) Kind() Kind { return CollectionKind }

// Source returns the collection's source.
func (c *Collection) Source() Source {
	return c.src
}

func (c *Collection) IsDirty() bool {
	return c.dirty
}

func (c *Collection) update() {
	if !c.dirty {
		return
	}
	c.dirty = false
	var next []Value
	if c.src != nil {
		next = c.src.UpdateChildren()
	}
	for _, ch := range c.children {
		if ch.Parent() == c.Self() {
			ch.SetParent(nil)
		}
	}
	for _, ch := range next {
		ch.SetParent(c.Self())
	}
	c.children = next
}

func (c *Collection) Len() int {
	c.update()
	return len(c.children)
}

func (c *Collection) Child(i int) Value {
	c.update()
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// Refresh marks the children stale and fires.
func (c *Collection) Refresh() {
	c.dirty = true
	c.Self().FireValueChanged()
}

// MakeValue creates a detached member using the source's Maker, or returns
// nil if the source cannot create members.
func (c *Collection) MakeValue(hints map[string]string) Value {
	m, ok := c.src.(Maker)
	if !ok {
		return nil
	}
	return m.MakeValue(hints)
}

// NewValue creates a member from hints and inserts it.  A hintIndex >= 0
// gives the position; otherwise the member goes after selected if selected
// is a member, else at the end.
func (c *Collection) NewValue(hintIndex int, selected Value, hints map[string]string) Value {
	ins, ok := c.src.(Inserter)
	if !ok {
		return nil
	}
	child := c.MakeValue(hints)
	if child == nil {
		return nil
	}
	index := hintIndex
	if index < 0 && selected != nil {
		if i := IndexOf(c, selected); i >= 0 {
			index = i + 1
		}
	}
	if !ins.InsertValue(index, child) {
		return nil
	}
	if debug.Fire() {
		debug.Logf("new value at %d in %s\n", index, Path(c.Self()))
	}
	c.Self().Refresh()
	return child
}

// AddValue appends child, with the same rules as InsertValue.
func (c *Collection) AddValue(child Value) bool {
	return c.InsertValue(-1, child)
}

// InsertValue places an existing detached value at index, or at the end
// when index is out of range.  A value which still has a different
// parent is refused; delete it from its owner first.
func (c *Collection) InsertValue(index int, child Value) bool {
	ins, ok := c.src.(Inserter)
	if !ok || child == nil {
		return false
	}
	if p := child.Parent(); p != nil && p != c.Self() {
		return false
	}
	if !ins.InsertValue(index, child) {
		return false
	}
	c.Self().Refresh()
	return true
}

func (c *Collection) DeleteValue(child Value) bool {
	del, ok := c.src.(Deleter)
	if !ok || child == nil {
		return false
	}
	if !del.DeleteValue(child) {
		return false
	}
	if child.Parent() == c.Self() {
		child.SetParent(nil)
	}
	c.Self().Refresh()
	return true
}

// List is an in memory Source whose members keep their identity.
type List struct {
	items []Value
	mk    MakeFunc
}

// NewList returns a collection over children.  mk, if not nil, creates
// members for NewValue.
func NewList(mk MakeFunc, children ...Value) *Collection {
	return NewCollection(&List{items: slices.Clone(children), mk: mk})
}

func (l *List) UpdateChildren() []Value {
	return slices.Clone(l.items)
}

func (l *List) MakeValue(hints map[string]string) Value {
	if l.mk == nil {
		return nil
	}
	return l.mk(hints)
}

func (l *List) InsertValue(index int, child Value) bool {
	if slices.Contains(l.items, child) {
		return false
	}
	if index < 0 || index > len(l.items) {
		index = len(l.items)
	}
	l.items = slices.Insert(l.items, index, child)
	return true
}

func (l *List) DeleteValue(child Value) bool {
	i := slices.Index(l.items, child)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}
