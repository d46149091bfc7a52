package encode

import (
	"github.com/ares-editor/valtree/value"

	"github.com/goccy/go-yaml"
)

// ToAny converts v to plain Go values: composites become yaml.MapSlice
// so field order survives, collections []any, and scalars string, int64,
// bool, float64 or nil.
func ToAny(v value.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind() {
	case value.StringKind:
		return v.Str()
	case value.LongKind:
		return v.Long()
	case value.BoolKind:
		return v.Bool()
	case value.FloatKind:
		return v.Float()
	case value.CompositeKind:
		res := make(yaml.MapSlice, 0, v.Len())
		for name, ch := range value.All(v) {
			res = append(res, yaml.MapItem{Key: name, Value: ToAny(ch)})
		}
		return res
	case value.CollectionKind:
		res := make([]any, 0, v.Len())
		for _, ch := range value.All(v) {
			res = append(res, ToAny(ch))
		}
		return res
	default:
		return nil
	}
}

// ToMap is like ToAny but composites become map[string]any, the form
// expression environments and JSON patches expect.  Duplicate names keep
// the first value.
func ToMap(v value.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind() {
	case value.CompositeKind:
		res := make(map[string]any, v.Len())
		for name, ch := range value.All(v) {
			if _, ok := res[name]; !ok {
				res[name] = ToMap(ch)
			}
		}
		return res
	case value.CollectionKind:
		res := make([]any, 0, v.Len())
		for _, ch := range value.All(v) {
			res = append(res, ToMap(ch))
		}
		return res
	default:
		return ToAny(v)
	}
}
