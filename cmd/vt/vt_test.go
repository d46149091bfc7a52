package main

import (
	"errors"
	"testing"

	"github.com/ares-editor/valtree/parse"
	"github.com/ares-editor/valtree/schema"
	"github.com/ares-editor/valtree/value"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

const questsYAML = `
quests:
- name: a
  level: 1
- name: c
  level: 3
`

func TestHintFunc(t *testing.T) {
	hints := map[string]string{}
	f := hintFunc(hints)
	if _, err := f(nil, "name=b"); err != nil {
		t.Fatal(err)
	}
	if _, err := f(nil, "pos.x=1=2"); err != nil {
		t.Fatal(err)
	}
	if _, err := f(nil, "novalue"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
	want := map[string]string{"name": "b", "pos.x": "1=2"}
	if diff := cmp.Diff(want, hints); diff != "" {
		t.Errorf("hints (-want +got):\n%s", diff)
	}
}

func TestLookupArg(t *testing.T) {
	doc, err := parse.Parse([]byte(questsYAML))
	if err != nil {
		t.Fatal(err)
	}
	for _, at := range []string{".quests[1].name", "$.quests[1].name"} {
		t.Run(at, func(t *testing.T) {
			v, err := lookupArg(doc, at)
			if err != nil {
				t.Fatal(err)
			}
			if v.Str() != "c" {
				t.Errorf("got %q", v.Str())
			}
		})
	}
	v, err := lookupArg(doc, "")
	if err != nil || v != doc {
		t.Errorf("empty path should give the root, got %v %v", v, err)
	}
}

func names(coll value.Value) []string {
	var res []string
	for i := 0; i < coll.Len(); i++ {
		res = append(res, coll.Child(i).ChildByName("name").Str())
	}
	return res
}

func TestAddMember(t *testing.T) {
	tmpl := &schema.Template{
		Name: "vt-test-quest",
		Kind: value.CompositeKind,
		Fields: []schema.Field{
			{Name: "name", Template: &schema.Template{Kind: value.StringKind, Default: "new"}},
			{Name: "level", Template: &schema.Template{Kind: value.LongKind, Default: "1"}},
		},
	}
	if err := schema.Register(tmpl); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		cfg  AddConfig
		want []string
	}{
		{
			name: "after",
			cfg:  AddConfig{Index: -1, After: 0, Hints: map[string]string{"name": "b"}},
			want: []string{"a", "b", "c"},
		},
		{
			name: "append",
			cfg:  AddConfig{Index: -1, After: -1, Hints: map[string]string{"name": "d"}},
			want: []string{"a", "c", "d"},
		},
		{
			name: "template at index",
			cfg:  AddConfig{Index: 0, After: -1, Template: tmpl.Name},
			want: []string{"new", "a", "c"},
		},
		{
			name: "template after",
			cfg:  AddConfig{Index: -1, After: 1, Template: tmpl.Name, Hints: map[string]string{"name": "z"}},
			want: []string{"a", "c", "z"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := parse.Parse([]byte(questsYAML))
			if err != nil {
				t.Fatal(err)
			}
			coll := doc.ChildByName("quests")
			m, err := addMember(&tc.cfg, coll)
			if err != nil {
				t.Fatal(err)
			}
			if m.Parent() != coll {
				t.Errorf("new member not parented to the collection")
			}
			if diff := cmp.Diff(tc.want, names(coll)); diff != "" {
				t.Errorf("names (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddMemberErrors(t *testing.T) {
	doc, err := parse.Parse([]byte(questsYAML))
	if err != nil {
		t.Fatal(err)
	}
	coll := doc.ChildByName("quests")
	if _, err := addMember(&AddConfig{Index: -1, After: 7}, coll); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("bad -after: got %v", err)
	}
	if _, err := addMember(&AddConfig{Index: -1, After: -1, Template: "no-such"}, coll); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("unknown template: got %v", err)
	}
	if coll.Len() != 2 {
		t.Errorf("errors should not add members, len %d", coll.Len())
	}
}
