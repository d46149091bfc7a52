// Package parse reads YAML or JSON text into value trees.
package parse

import (
	"fmt"
	"math"

	"github.com/ares-editor/valtree/schema"
	"github.com/ares-editor/valtree/value"

	"github.com/goccy/go-yaml"
)

type ParseOption func(*parseOpts)

type parseOpts struct {
	tmpl  *schema.Template
	infer bool
}

// Template makes Parse check the document against t and gives its
// collections makers from t.
func Template(t *schema.Template) ParseOption {
	return func(o *parseOpts) { o.tmpl = t }
}

// InferMakers controls whether collections without a template get a
// maker inferred from their first member.  It is on by default.
func InferMakers(v bool) ParseOption {
	return func(o *parseOpts) { o.infer = v }
}

// Parse reads a single YAML (or JSON) document.  Mappings become
// composites keeping their key order, sequences become lists and
// scalars keep their natural kind.
func Parse(data []byte, opts ...ParseOption) (value.Value, error) {
	o := &parseOpts{infer: true}
	for _, opt := range opts {
		opt(o)
	}
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	v, err := FromAny(doc, opts...)
	if err != nil {
		return nil, err
	}
	if o.tmpl != nil {
		if err := o.tmpl.Check(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// FromAny converts plain Go values, as produced by YAML or JSON
// decoders, to a value tree.
func FromAny(a any, opts ...ParseOption) (value.Value, error) {
	o := &parseOpts{infer: true}
	for _, opt := range opts {
		opt(o)
	}
	return fromAny(a, o.tmpl, o)
}

func fromAny(a any, t *schema.Template, o *parseOpts) (value.Value, error) {
	switch x := a.(type) {
	case nil:
		return value.NewNone(), nil
	case string:
		return value.NewString(x), nil
	case bool:
		return value.NewBool(x), nil
	case int:
		return value.NewLong(int64(x)), nil
	case int64:
		return value.NewLong(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return value.NewFloat(float64(x)), nil
		}
		return value.NewLong(int64(x)), nil
	case float32:
		return value.NewFloat(float64(x)), nil
	case float64:
		return value.NewFloat(x), nil
	case yaml.MapSlice:
		c := value.NewComposite()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrKeyType, item.Key)
			}
			ch, err := fromAny(item.Value, fieldTemplate(t, k), o)
			if err != nil {
				return nil, err
			}
			c.AddChild(k, ch)
		}
		return c, nil
	case map[string]any:
		return nil, fmt.Errorf("%w: unordered map", ErrType)
	case []any:
		var items *schema.Template
		if t != nil {
			items = t.Items
		}
		vs := make([]value.Value, 0, len(x))
		for _, e := range x {
			ch, err := fromAny(e, items, o)
			if err != nil {
				return nil, err
			}
			vs = append(vs, ch)
		}
		mk := items.MakeFunc()
		if mk == nil && o.infer && len(vs) > 0 {
			mk = schema.FromValue(vs[0]).MakeFunc()
		}
		return value.NewList(mk, vs...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrType, a)
	}
}

func fieldTemplate(t *schema.Template, name string) *schema.Template {
	if t == nil {
		return nil
	}
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Template
		}
	}
	return nil
}
