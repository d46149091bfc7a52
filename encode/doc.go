// Package encode writes value trees as text.
//
// # Usage
//
//	// Colored tree for a terminal
//	err := encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// YAML or JSON
//	err := encode.Encode(v, w, encode.EncodeFormat(format.JSONFormat))
//
//	// A plain Go value, as used by expressions and patches
//	a := encode.ToAny(v)
//
// # Related Packages
//
//   - github.com/ares-editor/valtree/value - the value tree
//   - github.com/ares-editor/valtree/parse - text to value trees
package encode
