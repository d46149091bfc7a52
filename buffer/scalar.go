package buffer

import (
	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/value"
)

// Scalar buffers a string, long, bool, float or none value.
type Scalar struct {
	value.Base
	orig     value.Value
	buf      value.Value
	dirty    bool
	applying bool
	sub      *value.Subscription
}

func NewScalar(orig value.Value) *Scalar {
	b := &Scalar{orig: orig}
	b.Init(b)
	b.snapshot()
	b.sub = orig.Subscribe(value.ListenerFunc(b.upstream))
	return b
}

func (b *Scalar) snapshot() {
	b.buf = value.Clone(b.orig)
	b.dirty = false
}

func (b *Scalar) upstream(value.Value) {
	if b.applying {
		return
	}
	if debug.Buffer() {
		debug.Logf("buffer %s resync (dirty=%t)\n", value.Path(b.orig), b.dirty)
	}
	b.snapshot()
	b.FireValueChanged()
}

func (b *Scalar) Kind() value.Kind      { return b.orig.Kind() }
func (b *Scalar) Original() value.Value { return b.orig }
func (b *Scalar) IsDirty() bool         { return b.dirty }
func (b *Scalar) Release()              { b.sub.Unsubscribe() }
func (b *Scalar) Str() string           { return b.buf.Str() }
func (b *Scalar) Long() int64           { return b.buf.Long() }
func (b *Scalar) Bool() bool            { return b.buf.Bool() }
func (b *Scalar) Float() float64        { return b.buf.Float() }

func (b *Scalar) SetStr(s string) {
	if b.Kind() != value.StringKind || b.buf.Str() == s {
		return
	}
	b.buf.SetStr(s)
	b.edited()
}

func (b *Scalar) SetLong(l int64) {
	if b.Kind() != value.LongKind || b.buf.Long() == l {
		return
	}
	b.buf.SetLong(l)
	b.edited()
}

func (b *Scalar) SetBool(v bool) {
	if b.Kind() != value.BoolKind || b.buf.Bool() == v {
		return
	}
	b.buf.SetBool(v)
	b.edited()
}

func (b *Scalar) SetFloat(f float64) {
	if b.Kind() != value.FloatKind || b.buf.Float() == f {
		return
	}
	b.buf.SetFloat(f)
	b.edited()
}

func (b *Scalar) edited() {
	b.dirty = true
	b.FireValueChanged()
}

func (b *Scalar) Apply() {
	if !b.dirty {
		return
	}
	if debug.Buffer() {
		debug.Logf("buffer %s apply %s\n", value.Path(b.orig), value.ScalarString(b.buf))
	}
	b.applying = true
	value.CopyScalar(b.orig, b.buf)
	b.applying = false
	prev := b.buf
	b.snapshot()
	if !value.Equal(prev, b.buf) {
		b.FireValueChanged()
	}
}
