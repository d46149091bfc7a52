package value

import (
	"github.com/ares-editor/valtree/debug"
)

// Value is a node in an observable value tree.
//
// Accessors for a kind other than Kind() return the zero value of their type
// and setters for another kind do nothing. A setter which receives the
// current value does not fire.
type Value interface {
	Kind() Kind

	Str() string
	SetStr(string)
	Long() int64
	SetLong(int64)
	Bool() bool
	SetBool(bool)
	Float() float64
	SetFloat(float64)

	Parent() Value
	SetParent(Value)

	Len() int
	Child(i int) Value
	ChildName(i int) string
	ChildByName(name string) Value
	Iterator() *Iterator

	NewValue(hintIndex int, selected Value, hints map[string]string) Value
	AddValue(child Value) bool
	DeleteValue(child Value) bool

	Subscribe(l Listener) *Subscription
	NotifyListeners()
	FireValueChanged()
	ChildChanged(child Value)
	Refresh()

	Dump(verbose bool) string
}

// Listener receives change notifications from the values it is subscribed to.
type Listener interface {
	ValueChanged(v Value)
}

type ListenerFunc func(v Value)

func (f ListenerFunc) ValueChanged(v Value) { f(v) }

// Subscription is the handle returned by Subscribe.  Unsubscribe is the only
// way to stop receiving notifications.
type Subscription struct {
	owner    *Base
	listener Listener
}

// Unsubscribe detaches the listener.  It may be called more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.owner == nil {
		return
	}
	s.owner.unsubscribe(s)
	s.owner = nil
}

// Active reports whether the subscription still delivers notifications.
func (s *Subscription) Active() bool {
	return s != nil && s.owner != nil
}

// Base implements the parts of Value which every kind shares: the parent
// link, the listener list and change propagation.  All other methods are
// kind mismatch defaults.
//
// Implementations embed Base and call Init with themselves so that
// propagation dispatches to their overrides.
type Base struct {
	self   Value
	parent Value
	subs   []*Subscription
}

func (b *Base) Init(self Value) {
	b.self = self
}

// Self returns the value passed to Init.
func (b *Base) Self() Value {
	return b.self
}

func (b *Base) Kind() Kind { return NoneKind }

func (b *Base) Str() string      { return "" }
func (b *Base) SetStr(string)    {}
func (b *Base) Long() int64      { return 0 }
func (b *Base) SetLong(int64)    {}
func (b *Base) Bool() bool       { return false }
func (b *Base) SetBool(bool)     {}
func (b *Base) Float() float64   { return 0 }
func (b *Base) SetFloat(float64) {}

func (b *Base) Parent() Value { return b.parent }

// SetParent sets the non-owning back link used for propagation.  Owners
// clear it with SetParent(nil) before releasing a child.
func (b *Base) SetParent(p Value) { b.parent = p }

func (b *Base) Len() int                      { return 0 }
func (b *Base) Child(int) Value               { return nil }
func (b *Base) ChildName(int) string          { return "" }
func (b *Base) ChildByName(name string) Value { return nil }

func (b *Base) Iterator() *Iterator {
	return NewIterator(b.self)
}

func (b *Base) NewValue(int, Value, map[string]string) Value { return nil }
func (b *Base) AddValue(Value) bool                          { return false }
func (b *Base) DeleteValue(Value) bool                       { return false }

func (b *Base) Subscribe(l Listener) *Subscription {
	s := &Subscription{owner: b, listener: l}
	b.subs = append(b.subs, s)
	return s
}

func (b *Base) unsubscribe(s *Subscription) {
	for i, sub := range b.subs {
		if sub == s {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// NumListeners returns the number of active subscriptions.
func (b *Base) NumListeners() int {
	return len(b.subs)
}

// NotifyListeners calls every listener in subscription order without
// propagating to the parent.
func (b *Base) NotifyListeners() {
	if len(b.subs) == 0 {
		return
	}
	subs := make([]*Subscription, len(b.subs))
	copy(subs, b.subs)
	for _, s := range subs {
		if s.owner != b {
			continue
		}
		s.listener.ValueChanged(b.self)
	}
}

// FireValueChanged notifies the listeners and then the parent.
func (b *Base) FireValueChanged() {
	if debug.Fire() {
		debug.Logf("fire %s %s\n", Path(b.self), b.self.Kind())
	}
	b.self.NotifyListeners()
	if b.parent != nil {
		b.parent.ChildChanged(b.self)
	}
}

// ChildChanged is called by a child after it fired.  A change to a child
// is a change to its parent.
func (b *Base) ChildChanged(Value) {
	b.self.FireValueChanged()
}

func (b *Base) Refresh() {
	b.self.FireValueChanged()
}

func (b *Base) Dump(verbose bool) string {
	return Dump(b.self, verbose)
}
