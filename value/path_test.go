package value

import (
	"errors"
	"testing"
)

func questTree() Value {
	q := func(id int64, name string) Value {
		return NewComposite().AddChild("id", NewLong(id)).AddChild("name", NewString(name))
	}
	return NewComposite().
		AddChild("quests", NewList(nil, q(1, "a"), q(2, "b"))).
		AddChild("odd.name", NewBool(true))
}

func TestPathRoundTrip(t *testing.T) {
	root := questTree()
	tests := []string{
		"$",
		"$.quests",
		"$.quests[0]",
		"$.quests[1].name",
		"$.'odd.name'",
	}
	for _, p := range tests {
		t.Run(p, func(t *testing.T) {
			v, err := Lookup(root, p)
			if err != nil {
				t.Fatal(err)
			}
			if got := Path(v); got != p {
				t.Errorf("Path() = %q, want %q", got, p)
			}
		})
	}
}

func TestLookupErrors(t *testing.T) {
	root := questTree()
	tests := []struct {
		path string
		want error
	}{
		{"quests", ErrPath},
		{"$.quests[x]", ErrPath},
		{"$.quests[0", ErrPath},
		{"$.quests[5]", ErrNotFound},
		{"$.missing", ErrNotFound},
		{"$.'unterminated", ErrPath},
	}
	for _, tt := range tests {
		_, err := Lookup(root, tt.path)
		if !errors.Is(err, tt.want) {
			t.Errorf("Lookup(%q) err = %v, want %v", tt.path, err, tt.want)
		}
	}
	v, err := Lookup(root, "$['odd.name']")
	if err != nil || !v.Bool() {
		t.Errorf("bracket quoted lookup = %v, %v", v, err)
	}
}

func TestCompareAndClone(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected int
	}{
		{"None < Bool", NewNone(), NewBool(false), -1},
		{"Bool < Long", NewBool(true), NewLong(0), -1},
		{"Long < Float", NewLong(5), NewFloat(1), -1},
		{"Float < String", NewFloat(1), NewString(""), -1},
		{"String < Collection", NewString("z"), NewList(nil), -1},
		{"Collection < Composite", NewList(nil), NewComposite(), -1},
		{"false < true", NewBool(false), NewBool(true), -1},
		{"long order", NewLong(1), NewLong(2), -1},
		{"short list", NewList(nil, NewLong(1)), NewList(nil, NewLong(1), NewLong(2)), -1},
		{"names", NewComposite().AddChild("a", NewLong(1)), NewComposite().AddChild("b", NewLong(1)), -1},
		{"equal trees", questTree(), questTree(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
	orig := questTree()
	cl := Clone(orig)
	if !Equal(orig, cl) {
		t.Fatalf("clone differs:\n%s\n%s", Dump(orig, true), Dump(cl, true))
	}
	name, _ := Lookup(cl, "$.quests[0].name")
	name.SetStr("changed")
	if Equal(orig, cl) {
		t.Errorf("clone shares data with original")
	}
}

func TestDump(t *testing.T) {
	root := NewComposite().
		AddChild("id", NewLong(1)).
		AddChild("tags", NewList(nil, NewString("x")))
	if got, want := root.Dump(false), "Composite(2)"; got != want {
		t.Errorf("Dump(false) = %q, want %q", got, want)
	}
	want := "Composite(2)\n  id: Long 1\n  tags: Collection(1)\n    - String \"x\""
	if got := root.Dump(true); got != want {
		t.Errorf("Dump(true) =\n%s\nwant\n%s", got, want)
	}
	if got := NewNone().Dump(true); got != "None" {
		t.Errorf("None dump = %q", got)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, _ := k.MarshalText()
		var back Kind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("round trip of %s = %s, %v", k, back, err)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Nope")); err == nil {
		t.Errorf("expected error")
	}
}
