package value

import "strconv"

// Scalar is a terminal value holding one of the leaf kinds.  Only the
// field matching its kind is meaningful.
type Scalar struct {
	Base
	kind Kind
	s    string
	l    int64
	b    bool
	f    float64
}

func newScalar(k Kind) *Scalar {
	v := &Scalar{kind: k}
	v.Init(v)
	return v
}

func NewString(s string) *Scalar {
	v := newScalar(StringKind)
	v.s = s
	return v
}

func NewLong(l int64) *Scalar {
	v := newScalar(LongKind)
	v.l = l
	return v
}

func NewBool(b bool) *Scalar {
	v := newScalar(BoolKind)
	v.b = b
	return v
}

func NewFloat(f float64) *Scalar {
	v := newScalar(FloatKind)
	v.f = f
	return v
}

// NewNone returns a fresh value of kind None.  Unlike Null() it can be
// parented and observed.
func NewNone() *Scalar {
	return newScalar(NoneKind)
}

// NewScalar returns the zero scalar of kind k, or nil if k is not a leaf
// kind.
func NewScalar(k Kind) *Scalar {
	if !k.IsLeaf() {
		return nil
	}
	return newScalar(k)
}

func (v *Scalar) Kind() Kind { return v.kind }

func (v *Scalar) Str() string {
	if v.kind != StringKind {
		return ""
	}
	return v.s
}

func (v *Scalar) SetStr(s string) {
	if v.kind != StringKind || v.s == s {
		return
	}
	v.s = s
	v.FireValueChanged()
}

func (v *Scalar) Long() int64 {
	if v.kind != LongKind {
		return 0
	}
	return v.l
}

func (v *Scalar) SetLong(l int64) {
	if v.kind != LongKind || v.l == l {
		return
	}
	v.l = l
	v.FireValueChanged()
}

func (v *Scalar) Bool() bool {
	if v.kind != BoolKind {
		return false
	}
	return v.b
}

func (v *Scalar) SetBool(b bool) {
	if v.kind != BoolKind || v.b == b {
		return
	}
	v.b = b
	v.FireValueChanged()
}

func (v *Scalar) Float() float64 {
	if v.kind != FloatKind {
		return 0
	}
	return v.f
}

func (v *Scalar) SetFloat(f float64) {
	if v.kind != FloatKind || v.f == f {
		return
	}
	v.f = f
	v.FireValueChanged()
}

// CopyScalar sets dst from src when both have the same leaf kind.  It
// reports whether the kinds matched.
func CopyScalar(dst, src Value) bool {
	if dst.Kind() != src.Kind() {
		return false
	}
	switch src.Kind() {
	case StringKind:
		dst.SetStr(src.Str())
	case LongKind:
		dst.SetLong(src.Long())
	case BoolKind:
		dst.SetBool(src.Bool())
	case FloatKind:
		dst.SetFloat(src.Float())
	case NoneKind:
	default:
		return false
	}
	return true
}

// SetFromString parses s according to v's kind and sets it.
func SetFromString(v Value, s string) error {
	switch v.Kind() {
	case StringKind:
		v.SetStr(s)
	case LongKind:
		l, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		v.SetLong(l)
	case BoolKind:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case FloatKind:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return ErrNotScalar
	}
	return nil
}

// ScalarString formats the scalar held by v, or the kind name for
// non-scalars.
func ScalarString(v Value) string {
	switch v.Kind() {
	case StringKind:
		return strconv.Quote(v.Str())
	case LongKind:
		return strconv.FormatInt(v.Long(), 10)
	case BoolKind:
		return strconv.FormatBool(v.Bool())
	case FloatKind:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case NoneKind:
		return "null"
	default:
		return v.Kind().String()
	}
}
