package eval

import (
	"errors"
	"testing"

	"github.com/ares-editor/valtree/value"
	"github.com/google/go-cmp/cmp"
)

func quest(id int64, name string, done bool) *value.Composite {
	return value.NewComposite().
		AddChild("id", value.NewLong(id)).
		AddChild("name", value.NewString(name)).
		AddChild("done", value.NewBool(done))
}

func campaign() *value.Composite {
	return value.NewComposite().
		AddChild("title", value.NewString("ares")).
		AddChild("quests", value.NewList(nil,
			quest(1, "find the ring", false),
			quest(2, "slay the dragon", true),
			quest(3, "go home", false)))
}

func TestEval(t *testing.T) {
	c := campaign()
	q := c.ChildByName("quests").Child(1)
	t.Setenv("VT_EVAL_TEST", "yes")
	tests := []struct {
		code string
		want string
	}{
		{"id * 2", "4"},
		{`name + "!"`, `"slay the dragon!"`},
		{"self.done", "true"},
		{"whereami()", `"$.quests[1]"`},
		{`getpath("$.title")`, `"ares"`},
		{`getenv("VT_EVAL_TEST")`, `"yes"`},
		{"nothing", "null"},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			res, err := Eval(tc.code, q, nil)
			if err != nil {
				t.Fatal(err)
			}
			s, err := ToScalar(res)
			if err != nil {
				t.Fatal(err)
			}
			if got := value.ScalarString(s); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
	if _, err := Eval("id +", q, nil); !errors.Is(err, ErrCompile) {
		t.Errorf("got %v, want ErrCompile", err)
	}
	res, err := Eval("id + bonus", q, Env{"bonus": 10})
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := ToScalar(res); s.Long() != 12 {
		t.Errorf("env not visible: %v", res)
	}
}

func TestFormula(t *testing.T) {
	src := value.NewComposite().
		AddChild("price", value.NewFloat(2.5)).
		AddChild("count", value.NewLong(4))
	f, err := NewFormula(src, "price * count", value.FloatKind, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Float() != 10 || f.Long() != 0 || f.Kind() != value.FloatKind {
		t.Fatalf("got %v", value.Dump(f, false))
	}
	fired := 0
	f.Subscribe(value.ListenerFunc(func(value.Value) { fired++ }))
	src.ChildByName("count").SetLong(6)
	if fired != 1 {
		t.Errorf("fired %d times", fired)
	}
	if f.Float() != 15 {
		t.Errorf("not recomputed: %v", f.Float())
	}
	f.SetFloat(1)
	if f.Float() != 15 {
		t.Errorf("formula was writable")
	}
	f.Close()
	src.ChildByName("count").SetLong(7)
	if fired != 1 {
		t.Errorf("closed formula fired")
	}
}

func TestFormulaKinds(t *testing.T) {
	src := quest(1, "ring", false)
	f, err := NewFormula(src, `"quest " + name`, value.NoneKind, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind() != value.StringKind || f.Str() != "quest ring" {
		t.Errorf("got %s", value.Dump(f, false))
	}

	g, err := NewFormula(src, "id", value.FloatKind, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Float() != 1 {
		t.Errorf("long result not widened: %v", g.Float())
	}

	h, err := NewFormula(src, "name", value.BoolKind, nil)
	if err != nil {
		t.Fatal(err)
	}
	if h.Bool() || !errors.Is(h.Err(), ErrResult) {
		t.Errorf("got %v, %v", h.Bool(), h.Err())
	}

	if _, err := NewFormula(src, "id", value.CompositeKind, nil); !errors.Is(err, ErrResult) {
		t.Errorf("got %v", err)
	}
	if _, err := NewFormula(src, "id +", value.LongKind, nil); !errors.Is(err, ErrCompile) {
		t.Errorf("got %v", err)
	}
}

func names(v value.Value) []string {
	var res []string
	for _, ch := range value.All(v) {
		res = append(res, ch.ChildByName("name").Str())
	}
	return res
}

func TestFilter(t *testing.T) {
	c := campaign()
	quests := c.ChildByName("quests")
	f, err := NewFilter(quests, "!done", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	open := f.Collection()
	if diff := cmp.Diff([]string{"find the ring", "go home"}, names(open)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	first := open.Child(0)

	quests.Child(2).ChildByName("done").SetBool(true)
	if diff := cmp.Diff([]string{"find the ring"}, names(open)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if open.Child(0) != first {
		t.Errorf("member identity not kept across updates")
	}

	open.Child(0).ChildByName("name").SetStr("find the one ring")
	if got := quests.Child(0).ChildByName("name").Str(); got != "find the one ring" {
		t.Errorf("edit did not reach source: %q", got)
	}

	if !open.DeleteValue(open.Child(0)) {
		t.Fatalf("delete refused")
	}
	if quests.Len() != 2 || open.Len() != 0 {
		t.Errorf("quests %d open %d", quests.Len(), open.Len())
	}
	if quests.Child(0).Parent() != quests {
		t.Errorf("filter took ownership of source members")
	}
}

func TestFilterIndexAndErrors(t *testing.T) {
	quests := campaign().ChildByName("quests")
	f, err := NewFilter(quests, "index % 2 == 0", nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"find the ring", "go home"}, names(f.Collection())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	g, err := NewFilter(quests, "done > limit", Env{"limit": 1})
	if err != nil {
		t.Fatal(err)
	}
	if g.Collection().Len() != 0 || g.Err() == nil {
		t.Errorf("expected an evaluation error")
	}

	if _, err := NewFilter(quest(1, "a", false), "true", nil); err == nil {
		t.Errorf("filter over a composite accepted")
	}
}
