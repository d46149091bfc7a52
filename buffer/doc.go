// Package buffer provides edit buffers over live values.
//
// A buffered value keeps a private copy of an original value.  Edits made
// through the buffer fire on the buffer only; the original is untouched
// until Apply writes the copy back.
//
//	b := buffer.New(quests)
//	b.NewValue(-1, nil, map[string]string{"name": "d"})
//	b.IsDirty() // true
//	b.Apply()   // quests now has the new member
//
// There is no discard operation.  Whenever the original changes by other
// means the buffer takes a fresh copy of it and any pending edit is lost.
//
// Collection buffers record membership changes in added and removed lists.
// Adding a value that is pending removal cancels the removal, and deleting
// a value that is pending addition cancels the addition.  Apply first
// applies every member buffer, then adds, then removes.
package buffer
