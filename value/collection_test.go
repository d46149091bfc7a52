package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func longs(v Value) []int64 {
	var res []int64
	for _, ch := range All(v) {
		res = append(res, ch.Long())
	}
	return res
}

func TestCollectionLazyUpdate(t *testing.T) {
	calls := 0
	data := []int64{1, 2}
	c := NewCollection(SourceFunc(func() []Value {
		calls++
		res := make([]Value, len(data))
		for i, d := range data {
			res[i] = NewLong(d)
		}
		return res
	}))
	if calls != 0 {
		t.Fatalf("materialized before access")
	}
	if diff := cmp.Diff([]int64{1, 2}, longs(c)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	c.Len()
	c.Child(0)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	old := c.Child(0)
	data = append(data, 3)
	c.Refresh()
	if diff := cmp.Diff([]int64{1, 2, 3}, longs(c)); diff != "" {
		t.Errorf("after refresh (-want +got):\n%s", diff)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if old.Parent() != nil {
		t.Errorf("stale child still parented")
	}
	if c.Child(0).Parent() != Value(c) {
		t.Errorf("new child not parented")
	}
}

func TestCollectionNoSource(t *testing.T) {
	c := NewCollection(nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d", c.Len())
	}
	if c.NewValue(-1, nil, nil) != nil {
		t.Errorf("NewValue succeeded without a maker")
	}
	if c.AddValue(NewLong(1)) || c.DeleteValue(NewLong(1)) {
		t.Errorf("mutation succeeded without a source")
	}
}

func TestListMutation(t *testing.T) {
	a, b, c := NewLong(1), NewLong(2), NewLong(3)
	mk := func(hints map[string]string) Value {
		v := NewLong(0)
		if h, ok := hints["value"]; ok {
			SetFromString(v, h)
		}
		return v
	}
	list := NewList(mk, a, b, c)
	fired := 0
	list.Subscribe(ListenerFunc(func(Value) { fired++ }))

	tests := []struct {
		name string
		do   func()
		want []int64
	}{
		{"append", func() { list.NewValue(-1, nil, map[string]string{"value": "4"}) }, []int64{1, 2, 3, 4}},
		{"at index", func() { list.NewValue(0, nil, map[string]string{"value": "0"}) }, []int64{0, 1, 2, 3, 4}},
		{"after selected", func() { list.NewValue(-1, b, map[string]string{"value": "5"}) }, []int64{0, 1, 2, 5, 3, 4}},
		{"delete", func() { list.DeleteValue(b) }, []int64{0, 1, 5, 3, 4}},
		{"add", func() { list.AddValue(b) }, []int64{0, 1, 5, 3, 4, 2}},
	}
	for i, tt := range tests {
		tt.do()
		if diff := cmp.Diff(tt.want, longs(list)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.name, diff)
		}
		if fired != i+1 {
			t.Errorf("%s: fired = %d, want %d", tt.name, fired, i+1)
		}
	}
	if list.DeleteValue(NewLong(9)) {
		t.Errorf("deleted a non member")
	}
	if list.AddValue(a) {
		t.Errorf("added a member twice")
	}
}

func TestDeleteClearsParent(t *testing.T) {
	a := NewLong(1)
	list := NewList(nil, a)
	list.Len()
	if a.Parent() != Value(list) {
		t.Fatalf("not parented")
	}
	list.DeleteValue(a)
	if a.Parent() != nil {
		t.Errorf("parent not cleared")
	}
	a.SetLong(5)
	if list.Len() != 0 {
		t.Errorf("Len() = %d", list.Len())
	}
}

func TestComposite(t *testing.T) {
	first := NewString("first")
	c := NewComposite().
		AddChild("id", NewLong(1)).
		AddChild("name", first).
		AddChild("name", NewString("second"))
	if c.ChildByName("name") != Value(first) {
		t.Errorf("ChildByName did not return first match")
	}
	if c.ChildByName("missing") != nil {
		t.Errorf("ChildByName(missing) != nil")
	}
	if diff := cmp.Diff([]string{"id", "name", "name"}, c.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if c.NewValue(-1, nil, nil) != nil || c.AddValue(NewLong(1)) || c.DeleteValue(first) {
		t.Errorf("composite accepted collection mutation")
	}
	if first.Parent() != Value(c) {
		t.Errorf("child not parented")
	}
}

func TestLazyComposite(t *testing.T) {
	builds := 0
	hp := int64(10)
	c := NewLazyComposite(func(c *Composite) {
		builds++
		c.AddChild("hp", NewLong(hp))
	})
	if c.ChildByName("hp").Long() != 10 || builds != 1 {
		t.Fatalf("first build wrong: builds=%d", builds)
	}
	c.Len()
	hp = 20
	c.Refresh()
	if c.ChildByName("hp").Long() != 20 || builds != 2 {
		t.Errorf("rebuild wrong: builds=%d", builds)
	}
}

func TestIteratorsIndependent(t *testing.T) {
	c := NewComposite().
		AddChild("a", NewLong(1)).
		AddChild("b", NewLong(2))
	it1, it2 := c.Iterator(), c.Iterator()
	var got []string
	for it1.Next() {
		if !it2.Next() {
			t.Fatalf("second iterator exhausted early")
		}
		got = append(got, it1.Name()+it2.Name())
	}
	if it1.Next() || it1.HasNext() || it1.Value() != nil {
		t.Errorf("exhausted iterator still yields")
	}
	it1.Reset()
	if !it1.HasNext() || !it1.Next() || it1.Name() != "a" {
		t.Errorf("reset did not rewind")
	}
	if diff := cmp.Diff([]string{"aa", "bb"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if NewLong(1).Iterator().Next() {
		t.Errorf("scalar has children")
	}
}

func TestAddRefusesOwnedValue(t *testing.T) {
	a := NewLong(1)
	listA, listB := NewList(nil, a), NewList(nil)
	listA.Len()
	if listB.AddValue(a) || listB.Len() != 0 {
		t.Fatalf("added a member of another list")
	}
	if !listA.DeleteValue(a) || !listB.AddValue(a) {
		t.Fatalf("move through delete failed")
	}
	if a.Parent() != Value(listB) || listA.Len() != 0 || listB.Len() != 1 {
		t.Errorf("after move parent=%v lenA=%d lenB=%d", a.Parent(), listA.Len(), listB.Len())
	}

	rec := NewComposite().AddChild("a", NewLong(2))
	other := NewComposite()
	fired := 0
	other.Subscribe(ListenerFunc(func(Value) { fired++ }))
	if other.AddField("a", rec.Child(0)) || other.Len() != 0 {
		t.Errorf("added a field of another composite")
	}
	if !other.AddField("b", NewString("x")) || other.ChildName(0) != "b" || fired != 1 {
		t.Errorf("AddField: len=%d fired=%d", other.Len(), fired)
	}
	if other.Child(0).Parent() != Value(other) {
		t.Errorf("added field not parented")
	}
}
