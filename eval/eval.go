package eval

import (
	"errors"
	"fmt"
	"math"

	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/value"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	ErrCompile = errors.New("compile error")
	ErrResult  = errors.New("bad expression result")
)

// Eval evaluates code against v.
func Eval(code string, v value.Value, env Env) (any, error) {
	prg, err := expr.Compile(code, exprOpts(v)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return run(prg, code, v, env)
}

func run(prg *vm.Program, code string, v value.Value, env Env) (any, error) {
	if debug.Eval() {
		debug.Logf("eval %q at %s\n", code, value.Path(v))
	}
	return vm.Run(prg, envFor(v, env))
}

// ToScalar converts an expression result to a detached scalar.
func ToScalar(res any) (*value.Scalar, error) {
	switch x := res.(type) {
	case nil:
		return value.NewNone(), nil
	case string:
		return value.NewString(x), nil
	case bool:
		return value.NewBool(x), nil
	case int:
		return value.NewLong(int64(x)), nil
	case int8:
		return value.NewLong(int64(x)), nil
	case int16:
		return value.NewLong(int64(x)), nil
	case int32:
		return value.NewLong(int64(x)), nil
	case int64:
		return value.NewLong(x), nil
	case uint:
		return unsigned(uint64(x)), nil
	case uint8:
		return value.NewLong(int64(x)), nil
	case uint16:
		return value.NewLong(int64(x)), nil
	case uint32:
		return value.NewLong(int64(x)), nil
	case uint64:
		return unsigned(x), nil
	case float32:
		return value.NewFloat(float64(x)), nil
	case float64:
		return value.NewFloat(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrResult, res)
	}
}

func unsigned(u uint64) *value.Scalar {
	if u > math.MaxInt64 {
		return value.NewFloat(float64(u))
	}
	return value.NewLong(int64(u))
}

// coerce converts s to kind k, allowing numeric widening and narrowing.
func coerce(s *value.Scalar, k value.Kind) (*value.Scalar, error) {
	switch {
	case s.Kind() == k:
		return s, nil
	case k == value.FloatKind && s.Kind() == value.LongKind:
		return value.NewFloat(float64(s.Long())), nil
	case k == value.LongKind && s.Kind() == value.FloatKind:
		return value.NewLong(int64(s.Float())), nil
	case k == value.StringKind:
		return value.NewString(value.ScalarString(s)), nil
	}
	return nil, fmt.Errorf("%w: %s result for %s formula", ErrResult, s.Kind(), k)
}
