package eval

import (
	"os"

	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/value"

	"github.com/expr-lang/expr"
)

func root(v value.Value) value.Value {
	for v.Parent() != nil {
		v = v.Parent()
	}
	return v
}

func exprOpts(doc value.Value) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return value.Path(doc), nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := value.Lookup(root(doc), path)
			if err != nil {
				return nil, err
			}
			return encode.ToMap(res), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
