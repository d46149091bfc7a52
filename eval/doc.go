// Package eval derives values from value trees with expr expressions.
//
// A [Formula] is a read-only scalar computed from a source value and
// recomputed when the source changes.  A [Filter] is a collection source
// holding the members of another collection which satisfy a predicate.
//
// Expressions see the fields of the value they are evaluated against as
// variables, the value itself as self, and the functions whereami(),
// getpath(path) and getenv(name).
package eval
