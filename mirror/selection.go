package mirror

import (
	"github.com/ares-editor/valtree/value"
)

// Selection keeps a mirror pointed at the member of a collection at a
// selected index.  When the collection changes the index is clamped to
// the new length and the mirror is pointed at whatever member is there.
type Selection struct {
	m     *Mirror
	coll  value.Value
	index int
	sub   *value.Subscription
}

// NewSelection tracks coll with m.  Nothing is selected initially.
func NewSelection(coll value.Value, m *Mirror) *Selection {
	s := &Selection{m: m, coll: coll, index: -1}
	s.sub = coll.Subscribe(value.ListenerFunc(func(value.Value) { s.resolve() }))
	return s
}

func (s *Selection) Mirror() *Mirror {
	return s.m
}

// Index returns the selected index, or -1.
func (s *Selection) Index() int {
	return s.index
}

// Select selects the member at i.  An out of range i clears the
// selection.
func (s *Selection) Select(i int) {
	if i < 0 || i >= s.coll.Len() {
		i = -1
	}
	s.index = i
	s.resolve()
}

// SelectValue selects member v and reports whether v is a member.
func (s *Selection) SelectValue(v value.Value) bool {
	i := value.IndexOf(s.coll, v)
	s.Select(i)
	return i >= 0
}

func (s *Selection) resolve() {
	if n := s.coll.Len(); s.index >= n {
		s.index = n - 1
	}
	if s.index < 0 {
		s.m.SetMirrorValue(nil)
		return
	}
	s.m.SetMirrorValue(s.coll.Child(s.index))
}

// Close stops tracking the collection and unbinds the mirror.
func (s *Selection) Close() {
	s.sub.Unsubscribe()
	s.m.SetMirrorValue(nil)
}
