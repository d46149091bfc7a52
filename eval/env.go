package eval

import (
	"github.com/ares-editor/valtree/encode"
	"github.com/ares-editor/valtree/value"
)

// Env holds extra variables for expressions.
type Env map[string]any

// envFor builds the variables an expression sees when evaluated against
// v.  Entries of extra override the fields of v.
func envFor(v value.Value, extra Env) map[string]any {
	self := encode.ToMap(v)
	env := map[string]any{}
	if m, ok := self.(map[string]any); ok {
		for k, x := range m {
			env[k] = x
		}
	}
	env["self"] = self
	for k, x := range extra {
		env[k] = x
	}
	return env
}
