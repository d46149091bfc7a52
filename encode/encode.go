package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ares-editor/valtree/format"
	"github.com/ares-editor/valtree/value"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, maxDepth int
	indent          int

	format format.Format

	Color func(value.Kind, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes v to w in the format selected by opts, TreeFormat by
// default.  Colors apply to the tree format only.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.TreeFormat:
		if err := encodeTree(v, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat, format.JSONFormat:
		yOpts := []yaml.EncodeOption{yaml.Indent(es.indent)}
		if es.format.IsJSON() {
			yOpts = append(yOpts, yaml.JSON())
		}
		d, err := yaml.MarshalWithOptions(ToAny(v), yOpts...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) color(k value.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func encodeLine(v value.Value, es *EncState) string {
	k := v.Kind()
	if k == value.NoneKind {
		return es.color(k, KindColor, k.String())
	}
	if k.IsLeaf() {
		return es.color(k, KindColor, k.String()) + " " + es.color(k, ValueColor, value.ScalarString(v))
	}
	return es.color(k, KindColor, k.String()) + es.color(k, SepColor, "("+strconv.Itoa(v.Len())+")")
}

func encodeTree(v value.Value, w io.Writer, es *EncState) error {
	if v == nil {
		return writeString(w, "<nil>")
	}
	if err := writeString(w, encodeLine(v, es)); err != nil {
		return err
	}
	if es.maxDepth > 0 && es.depth >= es.maxDepth {
		return nil
	}
	k := v.Kind()
	pad := strings.Repeat(" ", es.indent)
	for name, ch := range value.All(v) {
		es.depth++
		prefix := "\n" + strings.Repeat(pad, es.depth)
		if k == value.CompositeKind {
			prefix += es.color(k, FieldColor, name) + es.color(k, SepColor, ": ")
		} else {
			prefix += es.color(k, SepColor, "- ")
		}
		if err := writeString(w, prefix); err != nil {
			return err
		}
		if err := encodeTree(ch, w, es); err != nil {
			return err
		}
		es.depth--
	}
	return nil
}
