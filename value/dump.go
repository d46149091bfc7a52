package value

import (
	"strconv"
	"strings"
)

// Dump renders v for diagnostics.  Without verbose it is a single line
// naming the kind; with verbose the children follow, one per line.
func Dump(v Value, verbose bool) string {
	if v == nil {
		return "<nil>"
	}
	if !verbose {
		return dumpLine(v)
	}
	buf := &strings.Builder{}
	dumpTo(buf, v, 0)
	return strings.TrimSuffix(buf.String(), "\n")
}

func dumpLine(v Value) string {
	k := v.Kind()
	if k.IsLeaf() {
		if k == NoneKind {
			return k.String()
		}
		return k.String() + " " + ScalarString(v)
	}
	return k.String() + "(" + strconv.Itoa(v.Len()) + ")"
}

func dumpTo(buf *strings.Builder, v Value, depth int) {
	buf.WriteString(dumpLine(v))
	buf.WriteByte('\n')
	it := v.Iterator()
	for it.Next() {
		buf.WriteString(strings.Repeat("  ", depth+1))
		if v.Kind() == CompositeKind {
			buf.WriteString(it.Name())
			buf.WriteString(": ")
		} else {
			buf.WriteString("- ")
		}
		dumpTo(buf, it.Value(), depth+1)
	}
}
