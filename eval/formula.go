package eval

import (
	"fmt"

	"github.com/ares-editor/valtree/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Formula is a read-only scalar whose value is an expression over a
// source value.  It is recomputed lazily after the source changes and
// fires whenever the source does.
//
// The kind of a formula is fixed when it is made.  A result which cannot
// be coerced to that kind leaves the formula holding the kind's zero
// value, with the failure reported by Err.
type Formula struct {
	value.Base
	kind value.Kind
	code string
	src  value.Value
	env  Env
	prg  *vm.Program
	sub  *value.Subscription

	cur   *value.Scalar
	err   error
	dirty bool
}

// NewFormula compiles code and binds it to src.  If kind is NoneKind the
// formula takes the kind of its first result.
func NewFormula(src value.Value, code string, kind value.Kind, env Env) (*Formula, error) {
	if !kind.IsLeaf() {
		return nil, fmt.Errorf("%w: formula kind %s is not a scalar", ErrResult, kind)
	}
	prg, err := expr.Compile(code, exprOpts(src)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	f := &Formula{kind: kind, code: code, src: src, env: env, prg: prg, dirty: true}
	f.Init(f)
	if kind == value.NoneKind {
		res, err := run(prg, code, src, env)
		if err != nil {
			return nil, err
		}
		s, err := ToScalar(res)
		if err != nil {
			return nil, err
		}
		f.kind, f.cur, f.dirty = s.Kind(), s, false
	}
	f.sub = src.Subscribe(value.ListenerFunc(f.upstream))
	return f, nil
}

func (f *Formula) upstream(value.Value) {
	f.dirty = true
	f.FireValueChanged()
}

func (f *Formula) compute() *value.Scalar {
	if !f.dirty {
		return f.cur
	}
	f.dirty = false
	f.cur, f.err = f.eval()
	if f.err != nil {
		f.cur = value.NewScalar(f.kind)
	}
	return f.cur
}

func (f *Formula) eval() (*value.Scalar, error) {
	res, err := run(f.prg, f.code, f.src, f.env)
	if err != nil {
		return nil, err
	}
	s, err := ToScalar(res)
	if err != nil {
		return nil, err
	}
	return coerce(s, f.kind)
}

func (f *Formula) Kind() value.Kind { return f.kind }
func (f *Formula) Str() string      { return f.compute().Str() }
func (f *Formula) Long() int64      { return f.compute().Long() }
func (f *Formula) Bool() bool       { return f.compute().Bool() }
func (f *Formula) Float() float64   { return f.compute().Float() }

// Err returns the error from the latest evaluation.
func (f *Formula) Err() error {
	f.compute()
	return f.err
}

// Code returns the expression.
func (f *Formula) Code() string { return f.code }

// Refresh forces recomputation on the next read.
func (f *Formula) Refresh() {
	f.dirty = true
	f.FireValueChanged()
}

// Close detaches the formula from its source.
func (f *Formula) Close() {
	f.sub.Unsubscribe()
}
