package value

var null = newNull()

type nullValue struct {
	Base
}

func newNull() *nullValue {
	v := &nullValue{}
	v.Init(v)
	return v
}

// Null returns the shared None sentinel.  It ignores parents and never
// notifies.
func Null() Value {
	return null
}

// IsNull reports whether v is nil or the sentinel.
func IsNull(v Value) bool {
	return v == nil || v == null
}

func (n *nullValue) SetParent(Value) {}

func (n *nullValue) Subscribe(l Listener) *Subscription {
	return &Subscription{listener: l}
}

func (n *nullValue) FireValueChanged() {}
