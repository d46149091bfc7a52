// Package format names the text formats a value tree can be read from
// or written to.
package format
