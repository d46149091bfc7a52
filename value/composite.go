package value

import "slices"

// Composite is a value with a fixed, ordered set of named children.
//
// A composite created by NewLazyComposite builds its children on first
// access and rebuilds them on the first access after Refresh.
type Composite struct {
	Base
	names    []string
	children []Value

	build func(c *Composite)
	dirty bool
}

func NewComposite() *Composite {
	c := &Composite{}
	c.Init(c)
	return c
}

// NewLazyComposite returns a composite whose children are produced by
// build, which should call AddChild.
func NewLazyComposite(build func(c *Composite)) *Composite {
	c := &Composite{build: build, dirty: true}
	c.Init(c)
	return c
}

func (c *Composite) Kind() Kind { return CompositeKind }

// AddChild appends a named child and makes c its parent.  Names are not
// checked for uniqueness.  v must not belong to another value: AddChild
// is for building, and does not detach v or fire.
func (c *Composite) AddChild(name string, v Value) *Composite {
	c.names = append(c.names, name)
	c.children = append(c.children, v)
	v.SetParent(c.Self())
	return c
}

func (c *Composite) update() {
	if !c.dirty || c.build == nil {
		return
	}
	c.dirty = false
	for _, ch := range c.children {
		if ch.Parent() == c.Self() {
			ch.SetParent(nil)
		}
	}
	c.names, c.children = nil, nil
	c.build(c)
}

func (c *Composite) Len() int {
	c.update()
	return len(c.children)
}

func (c *Composite) Child(i int) Value {
	c.update()
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

func (c *Composite) ChildName(i int) string {
	c.update()
	if i < 0 || i >= len(c.names) {
		return ""
	}
	return c.names[i]
}

// ChildByName returns the first child called name.
func (c *Composite) ChildByName(name string) Value {
	c.update()
	for i, n := range c.names {
		if n == name {
			return c.children[i]
		}
	}
	return nil
}

// Names returns the child names in order.
func (c *Composite) Names() []string {
	c.update()
	res := make([]string, len(c.names))
	copy(res, c.names)
	return res
}

func (c *Composite) Refresh() {
	if c.build != nil {
		c.dirty = true
	}
	c.Self().FireValueChanged()
}

// AddField is AddChild for a composite already in use: it fires, and it
// refuses a value which already has a parent.
func (c *Composite) AddField(name string, v Value) bool {
	if v == nil || v.Parent() != nil {
		return false
	}
	c.update()
	c.AddChild(name, v)
	c.Self().FireValueChanged()
	return true
}

// RemoveChild removes child.  Unlike DeleteValue, which composites
// refuse, it edits the shape; children of a lazy composite come back on
// the next rebuild.
func (c *Composite) RemoveChild(child Value) bool {
	c.update()
	i := slices.Index(c.children, child)
	if i < 0 {
		return false
	}
	c.names = slices.Delete(c.names, i, i+1)
	c.children = slices.Delete(c.children, i, i+1)
	if child.Parent() == c.Self() {
		child.SetParent(nil)
	}
	c.Self().FireValueChanged()
	return true
}

// ReplaceChild puts v in place of old, keeping old's name.
func (c *Composite) ReplaceChild(old, v Value) bool {
	c.update()
	i := slices.Index(c.children, old)
	if i < 0 || v == nil {
		return false
	}
	c.children[i] = v
	if old.Parent() == c.Self() {
		old.SetParent(nil)
	}
	v.SetParent(c.Self())
	c.Self().FireValueChanged()
	return true
}
