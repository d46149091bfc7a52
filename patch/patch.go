// Package patch edits value trees with RFC 6902 JSON patches and RFC 7396
// merge patches.
//
// The patch is applied to a JSON rendering of the tree and the result is
// written back through the tree's setters, so listeners see each edit and
// untouched values keep their identity.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/libdiff"
	"github.com/ares-editor/valtree/parse"
	"github.com/ares-editor/valtree/value"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Decode parses a JSON patch, given as JSON or YAML.
func Decode(d []byte) (jsonpatch.Patch, error) {
	v, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	j, err := MarshalJSON(v)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(j)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ops, nil
}

// MarshalJSON renders v as JSON.
func MarshalJSON(v value.Value) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Apply applies a JSON patch to dst and returns the changes made.
func Apply(dst value.Value, ops jsonpatch.Patch) ([]libdiff.Change, error) {
	if debug.Patch() {
		debug.Logf("json patch with %d ops at %s\n", len(ops), value.Path(dst))
	}
	d, err := MarshalJSON(dst)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return assignJSON(dst, out)
}

// Merge applies a JSON merge patch to dst and returns the changes made.
func Merge(dst value.Value, mergePatch []byte) ([]libdiff.Change, error) {
	mv, err := parse.Parse(mergePatch)
	if err != nil {
		return nil, err
	}
	mj, err := MarshalJSON(mv)
	if err != nil {
		return nil, err
	}
	d, err := MarshalJSON(dst)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return assignJSON(dst, out)
}

func assignJSON(dst value.Value, d []byte) ([]libdiff.Change, error) {
	src, err := parse.Parse(d, parse.InferMakers(false))
	if err != nil {
		return nil, err
	}
	return Assign(dst, src)
}

// Assign makes dst equal to src by writing only what differs.  Composite
// fields are matched by name, so field order in src does not matter, and
// a number keeps the kind, Long or Float, it has in dst.
func Assign(dst, src value.Value) ([]libdiff.Change, error) {
	var changes []libdiff.Change
	for _, c := range libdiff.Diff(dst, src) {
		if c, ok := keepNumberKind(c); ok {
			changes = append(changes, c)
		}
	}
	if err := libdiff.Patch(dst, changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// keepNumberKind rewrites a Long/Float replacement to keep the kind of
// From.  It reports false when nothing is left to change.
func keepNumberKind(c libdiff.Change) (libdiff.Change, bool) {
	if c.Op != libdiff.Replace {
		return c, true
	}
	switch {
	case c.From.Kind() == value.FloatKind && c.To.Kind() == value.LongKind:
		c.To = value.NewFloat(float64(c.To.Long()))
	case c.From.Kind() == value.LongKind && c.To.Kind() == value.FloatKind:
		f := c.To.Float()
		if f != float64(int64(f)) {
			return c, true
		}
		c.To = value.NewLong(int64(f))
	default:
		return c, true
	}
	return c, !value.Equal(c.From, c.To)
}
