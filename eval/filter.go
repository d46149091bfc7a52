package eval

import (
	"fmt"

	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/mirror"
	"github.com/ares-editor/valtree/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a value.Source over the members of src for which a boolean
// expression holds.  Members appear as mirrors of the source members, so
// edits made through the filtered collection reach src while src keeps
// ownership of its members.
//
// Besides the member's fields, the predicate sees index, the member's
// position in src.
type Filter struct {
	code string
	src  value.Value
	env  Env
	prg  *vm.Program
	sub  *value.Subscription
	coll *value.Collection

	mirrors map[value.Value]*mirror.Mirror
	err     error
}

// NewFilter compiles pred and returns the filtered collection's source.
func NewFilter(src value.Value, pred string, env Env) (*Filter, error) {
	if src.Kind() != value.CollectionKind {
		return nil, fmt.Errorf("%w: filter source is %s", ErrResult, src.Kind())
	}
	prg, err := expr.Compile(pred, append(exprOpts(src), expr.AsBool())...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	f := &Filter{
		code:    pred,
		src:     src,
		env:     env,
		prg:     prg,
		mirrors: map[value.Value]*mirror.Mirror{},
	}
	f.coll = value.NewCollection(f)
	f.sub = src.Subscribe(value.ListenerFunc(func(value.Value) { f.coll.Refresh() }))
	return f, nil
}

// Collection returns the filtered collection.
func (f *Filter) Collection() *value.Collection { return f.coll }

// Err returns the first error of the latest update.  Members whose
// predicate fails are left out.
func (f *Filter) Err() error { return f.err }

func (f *Filter) UpdateChildren() []value.Value {
	f.err = nil
	seen := make(map[value.Value]bool, f.src.Len())
	var kept []value.Value
	for i := range f.src.Len() {
		ch := f.src.Child(i)
		seen[ch] = true
		env := Env{"index": i}
		for k, x := range f.env {
			env[k] = x
		}
		res, err := run(f.prg, f.code, ch, env)
		if err != nil {
			if f.err == nil {
				f.err = err
			}
			continue
		}
		if keep, _ := res.(bool); !keep {
			continue
		}
		kept = append(kept, f.mirrorOf(ch))
	}
	for t, m := range f.mirrors {
		if !seen[t] {
			m.SetParent(nil)
			m.SetMirrorValue(nil)
			delete(f.mirrors, t)
		}
	}
	if debug.Eval() {
		debug.Logf("filter %q kept %d of %d\n", f.code, len(kept), f.src.Len())
	}
	return kept
}

func (f *Filter) mirrorOf(t value.Value) *mirror.Mirror {
	m := f.mirrors[t]
	if m == nil {
		m = mirror.New(t.Kind())
		m.SetMirrorValue(t)
		f.mirrors[t] = m
	}
	return m
}

// DeleteValue deletes the source member mirrored by child.
func (f *Filter) DeleteValue(child value.Value) bool {
	m, ok := child.(*mirror.Mirror)
	if !ok || m.MirrorValue() == nil {
		return false
	}
	return f.src.DeleteValue(m.MirrorValue())
}

// Close detaches the filter from its source and unbinds its mirrors.
func (f *Filter) Close() {
	f.sub.Unsubscribe()
	for t, m := range f.mirrors {
		m.SetParent(nil)
		m.SetMirrorValue(nil)
		delete(f.mirrors, t)
	}
}
