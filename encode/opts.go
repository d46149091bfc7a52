package encode

import "github.com/ares-editor/valtree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Depth limits how deep the tree format descends.  Containers at the
// limit are written on one line.  Zero means no limit.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
