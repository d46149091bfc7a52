// Package mirror provides values which forward to a replaceable target.
//
// A Mirror stands for "whatever is currently selected": widgets bind to
// the mirror once and the mirror is pointed at a different value each
// time the selection changes.  Reads and writes go to the target and a
// change to the target fires the mirror.
//
// A composite mirror has a fixed shape set up from a template value.
// Each of its children is itself a mirror which follows the child at the
// same position in the parent's target.
package mirror

import (
	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/value"
)

type Mirror struct {
	value.Base
	kind   value.Kind
	target value.Value
	sub    *value.Subscription

	names    []string
	children []*Mirror
}

// New returns an unbound mirror of the given kind.
func New(kind value.Kind) *Mirror {
	m := &Mirror{kind: kind, target: value.Null()}
	m.Init(m)
	return m
}

func (m *Mirror) Kind() value.Kind { return m.kind }

// MirrorValue returns the current target, or nil if unbound.
func (m *Mirror) MirrorValue() value.Value {
	if m.target == value.Null() {
		return nil
	}
	return m.target
}

// SetMirrorValue points m, and the structural children of m, at t.  A nil
// t unbinds.  Setting the current target does nothing.
func (m *Mirror) SetMirrorValue(t value.Value) {
	if !m.retarget(t) {
		return
	}
	if debug.Mirror() {
		debug.Logf("mirror %s -> %s\n", value.Path(m), m.target.Dump(false))
	}
	m.FireValueChanged()
	m.fireChildren()
}

func (m *Mirror) retarget(t value.Value) bool {
	if value.IsNull(t) {
		t = value.Null()
	}
	if t == m.target {
		return false
	}
	if m.target != value.Null() {
		m.sub.Unsubscribe()
		m.sub = nil
		for _, c := range m.children {
			c.retarget(nil)
		}
	}
	m.target = t
	if t != value.Null() {
		if !m.nested() {
			m.sub = t.Subscribe(value.ListenerFunc(m.upstream))
		}
		for i, c := range m.children {
			c.retarget(t.Child(i))
		}
	}
	return true
}

// nested reports whether m is a child of a composite mirror.  Only the
// outermost mirror subscribes to its target: a change to a child of the
// target bubbles to the target, and the outermost mirror then notifies
// each of its descendants once.
func (m *Mirror) nested() bool {
	_, ok := m.Parent().(*Mirror)
	return ok
}

func (m *Mirror) upstream(value.Value) {
	m.FireValueChanged()
	m.fireChildren()
}

// fireChildren notifies the listeners of every structural descendant
// without propagating back up.
func (m *Mirror) fireChildren() {
	for _, c := range m.children {
		c.NotifyListeners()
		c.fireChildren()
	}
}

// SetupComposite gives m the shape of tmpl: one child mirror per child of
// tmpl, of the same kind and name.  Composite children are set up
// recursively.  Existing children are discarded.
func (m *Mirror) SetupComposite(tmpl value.Value) {
	for _, c := range m.children {
		c.retarget(nil)
		c.SetParent(nil)
	}
	m.kind = value.CompositeKind
	m.names, m.children = []string{}, []*Mirror{}
	it := tmpl.Iterator()
	for it.Next() {
		tv := it.Value()
		c := New(tv.Kind())
		if tv.Kind() == value.CompositeKind {
			c.SetupComposite(tv)
		}
		c.SetParent(m)
		m.names = append(m.names, it.Name())
		m.children = append(m.children, c)
	}
	if m.target != value.Null() {
		for i, c := range m.children {
			c.retarget(m.target.Child(i))
		}
	}
}

func (m *Mirror) structural() bool {
	return m.children != nil
}

func (m *Mirror) Str() string        { return m.target.Str() }
func (m *Mirror) SetStr(s string)    { m.target.SetStr(s) }
func (m *Mirror) Long() int64        { return m.target.Long() }
func (m *Mirror) SetLong(l int64)    { m.target.SetLong(l) }
func (m *Mirror) Bool() bool         { return m.target.Bool() }
func (m *Mirror) SetBool(b bool)     { m.target.SetBool(b) }
func (m *Mirror) Float() float64     { return m.target.Float() }
func (m *Mirror) SetFloat(f float64) { m.target.SetFloat(f) }

func (m *Mirror) Len() int {
	if m.structural() {
		return len(m.children)
	}
	return m.target.Len()
}

func (m *Mirror) Child(i int) value.Value {
	if !m.structural() {
		return m.target.Child(i)
	}
	if i < 0 || i >= len(m.children) {
		return nil
	}
	return m.children[i]
}

func (m *Mirror) ChildName(i int) string {
	if !m.structural() {
		return m.target.ChildName(i)
	}
	if i < 0 || i >= len(m.names) {
		return ""
	}
	return m.names[i]
}

func (m *Mirror) ChildByName(name string) value.Value {
	if !m.structural() {
		return m.target.ChildByName(name)
	}
	for i, n := range m.names {
		if n == name {
			return m.children[i]
		}
	}
	return nil
}

func (m *Mirror) NewValue(hintIndex int, selected value.Value, hints map[string]string) value.Value {
	return m.target.NewValue(hintIndex, selected, hints)
}

func (m *Mirror) AddValue(child value.Value) bool {
	return m.target.AddValue(child)
}

func (m *Mirror) DeleteValue(child value.Value) bool {
	return m.target.DeleteValue(child)
}
