package value

// Clone returns a detached deep copy of v made of Scalars, Composites and
// list Collections.  Listeners and parent are not copied.  A cloned
// collection creates members with v's Maker when v has one.
func Clone(v Value) Value {
	switch v.Kind() {
	case CompositeKind:
		res := NewComposite()
		it := v.Iterator()
		for it.Next() {
			res.AddChild(it.Name(), Clone(it.Value()))
		}
		return res
	case CollectionKind:
		var mk MakeFunc
		if m, ok := v.(Maker); ok {
			mk = m.MakeValue
		}
		kids := make([]Value, 0, v.Len())
		it := v.Iterator()
		for it.Next() {
			kids = append(kids, Clone(it.Value()))
		}
		return NewList(mk, kids...)
	default:
		res := newScalar(v.Kind())
		switch v.Kind() {
		case StringKind:
			res.s = v.Str()
		case LongKind:
			res.l = v.Long()
		case BoolKind:
			res.b = v.Bool()
		case FloatKind:
			res.f = v.Float()
		}
		return res
	}
}
