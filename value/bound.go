package value

// Bound exposes a field of a domain object as a scalar value.  Reads go to
// the getter every time; writes go to the setter and fire when the getter's
// result changed.
type Bound struct {
	Base
	kind Kind

	getS func() string
	setS func(string)
	getL func() int64
	setL func(int64)
	getB func() bool
	setB func(bool)
	getF func() float64
	setF func(float64)
}

func newBound(k Kind) *Bound {
	v := &Bound{kind: k}
	v.Init(v)
	return v
}

// NewBoundString binds get and set.  A nil set makes the value read only.
func NewBoundString(get func() string, set func(string)) *Bound {
	v := newBound(StringKind)
	v.getS, v.setS = get, set
	return v
}

func NewBoundLong(get func() int64, set func(int64)) *Bound {
	v := newBound(LongKind)
	v.getL, v.setL = get, set
	return v
}

func NewBoundBool(get func() bool, set func(bool)) *Bound {
	v := newBound(BoolKind)
	v.getB, v.setB = get, set
	return v
}

func NewBoundFloat(get func() float64, set func(float64)) *Bound {
	v := newBound(FloatKind)
	v.getF, v.setF = get, set
	return v
}

func (v *Bound) Kind() Kind { return v.kind }

func (v *Bound) Str() string {
	if v.getS == nil {
		return ""
	}
	return v.getS()
}

func (v *Bound) SetStr(s string) {
	if v.setS == nil || v.Str() == s {
		return
	}
	v.setS(s)
	v.FireValueChanged()
}

func (v *Bound) Long() int64 {
	if v.getL == nil {
		return 0
	}
	return v.getL()
}

func (v *Bound) SetLong(l int64) {
	if v.setL == nil || v.Long() == l {
		return
	}
	v.setL(l)
	v.FireValueChanged()
}

func (v *Bound) Bool() bool {
	if v.getB == nil {
		return false
	}
	return v.getB()
}

func (v *Bound) SetBool(b bool) {
	if v.setB == nil || v.Bool() == b {
		return
	}
	v.setB(b)
	v.FireValueChanged()
}

func (v *Bound) Float() float64 {
	if v.getF == nil {
		return 0
	}
	return v.getF()
}

func (v *Bound) SetFloat(f float64) {
	if v.setF == nil || v.Float() == f {
		return
	}
	v.setF(f)
	v.FireValueChanged()
}
