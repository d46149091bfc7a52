package buffer

import (
	"github.com/ares-editor/valtree/value"
)

// Buffered is a value.Value which defers writes to its original until
// Apply.
type Buffered interface {
	value.Value

	// IsDirty reports whether there are edits not yet applied.
	IsDirty() bool
	// Apply writes pending edits to the original.  It does nothing when
	// the buffer is not dirty.
	Apply()
	// Original returns the wrapped value.
	Original() value.Value
	// Release stops tracking the original.
	Release()
}

// New returns a buffer for orig chosen by its kind.
func New(orig value.Value) Buffered {
	switch orig.Kind() {
	case value.CompositeKind:
		return NewComposite(orig)
	case value.CollectionKind:
		return NewCollection(orig)
	default:
		return NewScalar(orig)
	}
}

func releaseAll(self value.Value, bs []Buffered) {
	for _, b := range bs {
		b.Release()
		if b.Parent() == self {
			b.SetParent(nil)
		}
	}
}
