package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ares-editor/valtree/debug"
	"github.com/ares-editor/valtree/value"
)

type inserter interface {
	InsertValue(index int, child value.Value) bool
}

// fieldEditor is implemented by *value.Composite and by composite
// buffers.
type fieldEditor interface {
	AddField(name string, v value.Value) bool
	RemoveChild(child value.Value) bool
	ReplaceChild(old, v value.Value) bool
}

type resolved struct {
	c      Change
	target value.Value
	parent value.Value
	field  string
	index  int
}

// Patch applies changes produced by Diff(from, to) to root, which should
// be equal to from.  All paths are resolved before anything is modified.
// Scalars are written through their setters so listeners see each edit.
//
// A Replace or Delete whose target no longer holds From fails with
// ErrConflict.
func Patch(root value.Value, changes []Change) error {
	rs := make([]resolved, 0, len(changes))
	for _, c := range changes {
		r, err := resolve(root, c)
		if err != nil {
			return err
		}
		rs = append(rs, r)
	}
	for _, op := range []Op{Replace, Delete, Insert} {
		for i := range rs {
			if rs[i].c.Op != op {
				continue
			}
			if debug.Patch() {
				debug.Logf("patch %s\n", rs[i].c)
			}
			if err := rs[i].apply(); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolve(root value.Value, c Change) (resolved, error) {
	r := resolved{c: c, index: -1}
	switch c.Op {
	case Replace, Delete:
		t, err := value.Lookup(root, c.Path)
		if err != nil {
			return r, err
		}
		if !value.Equal(t, c.From) {
			return r, fmt.Errorf("%w: %s holds %s, expected %s", ErrConflict, c.Path,
				value.Dump(t, false), value.Dump(c.From, false))
		}
		r.target = t
		r.parent = t.Parent()
		return r, nil
	case Insert:
		pp, field, index, err := splitLast(c.Path)
		if err != nil {
			return r, err
		}
		p, err := value.Lookup(root, pp)
		if err != nil {
			return r, err
		}
		r.parent, r.field, r.index = p, field, index
		return r, nil
	}
	return r, fmt.Errorf("%w: unknown op %d at %s", ErrBadChange, c.Op, c.Path)
}

func (r *resolved) apply() error {
	c := r.c
	switch c.Op {
	case Replace:
		t := r.target
		if t.Kind() == c.To.Kind() {
			switch {
			case t.Kind().IsLeaf():
				if c.Delta != "" && t.Kind() == value.StringKind {
					s, err := PatchString(t.Str(), c.Delta)
					if err != nil {
						return fmt.Errorf("%w: %w at %s", ErrBadChange, err, c.Path)
					}
					t.SetStr(s)
					return nil
				}
				value.CopyScalar(t, c.To)
				return nil
			default:
				return Patch(t, Diff(t, c.To))
			}
		}
		if fe, ok := r.parent.(fieldEditor); ok {
			if !fe.ReplaceChild(t, value.Clone(c.To)) {
				return fmt.Errorf("%w: replace refused at %s", ErrConflict, c.Path)
			}
			return nil
		}
		ins, ok := r.parent.(inserter)
		if !ok || r.parent.Kind() != value.CollectionKind {
			return fmt.Errorf("%w: cannot replace %s with %s at %s", ErrBadChange,
				t.Kind(), c.To.Kind(), c.Path)
		}
		if !ins.InsertValue(value.IndexOf(r.parent, t), value.Clone(c.To)) {
			return fmt.Errorf("%w: insert refused at %s", ErrConflict, c.Path)
		}
		if !r.parent.DeleteValue(t) {
			return fmt.Errorf("%w: delete refused at %s", ErrConflict, c.Path)
		}
		return nil
	case Delete:
		if fe, ok := r.parent.(fieldEditor); ok {
			if !fe.RemoveChild(r.target) {
				return fmt.Errorf("%w: delete refused at %s", ErrConflict, c.Path)
			}
			return nil
		}
		if r.parent == nil || !r.parent.DeleteValue(r.target) {
			return fmt.Errorf("%w: delete refused at %s", ErrConflict, c.Path)
		}
		return nil
	case Insert:
		v := value.Clone(c.To)
		if r.index >= 0 {
			if ins, ok := r.parent.(inserter); ok {
				if !ins.InsertValue(r.index, v) {
					return fmt.Errorf("%w: insert refused at %s", ErrConflict, c.Path)
				}
				return nil
			}
			if !r.parent.AddValue(v) {
				return fmt.Errorf("%w: insert refused at %s", ErrConflict, c.Path)
			}
			return nil
		}
		fe, ok := r.parent.(fieldEditor)
		if !ok {
			return fmt.Errorf("%w: cannot add field to %s at %s", ErrBadChange, r.parent.Kind(), c.Path)
		}
		if !fe.AddField(r.field, v) {
			return fmt.Errorf("%w: add refused at %s", ErrConflict, c.Path)
		}
		return nil
	}
	return nil
}

// splitLast splits the final segment off a path.  For an index segment
// index is >= 0, otherwise field holds the (unquoted) field name.
func splitLast(path string) (parent, field string, index int, err error) {
	n := len(path)
	switch {
	case n == 0:
	case path[n-1] == ']':
		i := strings.LastIndexByte(path, '[')
		if i < 0 {
			break
		}
		index, err = strconv.Atoi(path[i+1 : n-1])
		if err != nil {
			return "", "", -1, fmt.Errorf("%w: bad index in %q", value.ErrPath, path)
		}
		return path[:i], "", index, nil
	case path[n-1] == '\'':
		for j := n - 2; j > 0; j-- {
			if path[j] == '\'' && path[j-1] == '.' && (j < 2 || path[j-2] != '\\') {
				name := strings.ReplaceAll(path[j+1:n-1], "\\'", "'")
				return path[:j-1], name, -1, nil
			}
		}
	default:
		if i := strings.LastIndexByte(path, '.'); i >= 0 {
			return path[:i], path[i+1:], -1, nil
		}
	}
	return "", "", -1, fmt.Errorf("%w: no parent in %q", value.ErrPath, path)
}
