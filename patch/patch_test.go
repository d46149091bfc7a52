package patch

import (
	"errors"
	"testing"

	"github.com/ares-editor/valtree/buffer"
	"github.com/ares-editor/valtree/libdiff"
	"github.com/ares-editor/valtree/value"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func campaign() *value.Composite {
	return value.NewComposite().
		AddChild("title", value.NewString("ares")).
		AddChild("quests", value.NewList(nil,
			value.NewComposite().
				AddChild("id", value.NewLong(1)).
				AddChild("name", value.NewString("a")))).
		AddChild("scale", value.NewFloat(2))
}

func summary(cs []libdiff.Change) []string {
	var res []string
	for _, c := range cs {
		res = append(res, c.Op.Sigil()+" "+c.Path)
	}
	return res
}

func TestApply(t *testing.T) {
	doc := campaign()
	title := doc.ChildByName("title")
	fired := 0
	title.Subscribe(value.ListenerFunc(func(value.Value) { fired++ }))

	ops, err := jsonpatch.DecodePatch([]byte(`[
		{"op": "replace", "path": "/title", "value": "ARES"},
		{"op": "add", "path": "/quests/-", "value": {"id": 2, "name": "b"}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	cs, err := Apply(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"~ $.title", "+ $.quests[1]"}, summary(cs)); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
	if doc.ChildByName("title") != title || title.Str() != "ARES" || fired != 1 {
		t.Errorf("title not written in place: %q fired %d", title.Str(), fired)
	}
	q, err := value.Lookup(doc, "$.quests[1].name")
	if err != nil || q.Str() != "b" {
		t.Errorf("added quest missing: %v", err)
	}
	if doc.ChildByName("scale").Kind() != value.FloatKind {
		t.Errorf("scale changed kind")
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := campaign()
	ops, err := Decode([]byte("- op: remove\n  path: /quests/0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(doc, ops); err != nil {
		t.Fatal(err)
	}
	if n := doc.ChildByName("quests").Len(); n != 0 {
		t.Errorf("quests has %d members", n)
	}

	ops, err = Decode([]byte(`[{"op": "remove", "path": "/nope"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(doc, ops); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v, want ErrPatch", err)
	}
}

func TestMerge(t *testing.T) {
	doc := campaign()
	cs, err := Merge(doc, []byte("{title: null, extra: true, scale: 3}"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"- $.title", "~ $.scale", "+ $.extra"}, summary(cs)); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
	want := value.NewComposite().
		AddChild("quests", value.NewList(nil,
			value.NewComposite().
				AddChild("id", value.NewLong(1)).
				AddChild("name", value.NewString("a")))).
		AddChild("scale", value.NewFloat(3)).
		AddChild("extra", value.NewBool(true))
	if !value.Equal(doc, want) {
		t.Errorf("got\n%s", value.Dump(doc, true))
	}
}

func TestAssignKeepsNumberKind(t *testing.T) {
	dst := value.NewComposite().
		AddChild("f", value.NewFloat(1)).
		AddChild("l", value.NewLong(2))
	src := value.NewComposite().
		AddChild("l", value.NewFloat(2)).
		AddChild("f", value.NewLong(1))
	cs, err := Assign(dst, src)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 0 {
		t.Errorf("unexpected changes %v", summary(cs))
	}
	src = value.NewComposite().AddChild("f", value.NewLong(4)).AddChild("l", value.NewFloat(2.5))
	if _, err := Assign(dst, src); err != nil {
		t.Fatal(err)
	}
	if dst.ChildByName("f").Float() != 4 || dst.ChildByName("l").Float() != 2.5 {
		t.Errorf("got\n%s", value.Dump(dst, true))
	}
}

func TestMergeIntoBuffer(t *testing.T) {
	doc := campaign()
	buf := buffer.New(doc)
	changes, err := Merge(buf, []byte(`{"author": "me", "title": null, "scale": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"- $.title", "~ $.scale", "+ $.author"}
	if diff := cmp.Diff(want, summary(changes)); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
	if doc.ChildByName("author") != nil || doc.ChildByName("title") == nil {
		t.Fatalf("original edited before apply: %s", doc.Dump(true))
	}
	buf.Apply()
	if buf.IsDirty() {
		t.Errorf("buffer dirty after apply")
	}
	if doc.ChildByName("title") != nil {
		t.Errorf("title not removed: %s", doc.Dump(true))
	}
	if a := doc.ChildByName("author"); a == nil || a.Str() != "me" {
		t.Errorf("author not added: %s", doc.Dump(true))
	}
	if s := doc.ChildByName("scale"); s.Kind() != value.FloatKind || s.Float() != 3 {
		t.Errorf("scale = %s", s.Dump(false))
	}
}
