package encode

import (
	"fmt"
	"io"

	"github.com/ares-editor/valtree/libdiff"
	"github.com/ares-editor/valtree/value"
)

// EncodeChanges lists changes one per line, each prefixed by its sigil.
func EncodeChanges(changes []libdiff.Change, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, c := range changes {
		var line string
		head := c.Op.Sigil() + " " + c.Path
		k := changeKind(c)
		switch c.Op {
		case libdiff.Insert:
			line = es.color(k, InsertColor, head) + ": " + encodeLine(c.To, es)
		case libdiff.Delete:
			line = es.color(k, DeleteColor, head) + ": " + encodeLine(c.From, es)
		case libdiff.Replace:
			line = es.color(k, ReplaceColor, head) + ": " +
				encodeLine(c.From, es) + " -> " + encodeLine(c.To, es)
		default:
			return fmt.Errorf("%w: change op %s", ErrEncoding, c.Op)
		}
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func changeKind(c libdiff.Change) value.Kind {
	if c.To != nil {
		return c.To.Kind()
	}
	return c.From.Kind()
}
