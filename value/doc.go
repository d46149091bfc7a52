// Package value provides observable value trees.
//
// # Overview
//
// A Value is a node exposing either a scalar (string, long, bool, float or
// none) or a set of children.  Business objects are presented to a user
// interface as Value trees so that every panel can read, edit and observe
// them in the same way.
//
// The Kind of a value never changes.  Scalar accessors behave like a match
// on the kind: reading a mismatched kind yields the zero value and writing
// one does nothing.
//
//	name := value.NewString("a")
//	name.Long()      // 0, not a long
//	name.SetStr("a") // no-op, no notification
//
// # Trees
//
// Composite values have a fixed list of named children; Collection values
// have an ordered list of unnamed children which is computed by a Source
// and may be added to or deleted from.
//
//	rec := value.NewComposite().
//		AddChild("id", value.NewLong(1)).
//		AddChild("name", value.NewString("a"))
//	list := value.NewList(nil, rec)
//
// Every value has at most one parent.  The parent link is a back reference
// used for propagation only; the owner of a child clears it before
// releasing the child.
//
// # Notifications
//
// Subscribe registers a Listener and returns a Subscription whose
// Unsubscribe method detaches it.  FireValueChanged calls the listeners in
// subscription order and then the parent's ChildChanged, which by default
// fires the parent in turn, so a change travels to the root.  Notification
// is synchronous and there is no event queue.
//
// A listener which writes back into the tree it observes must guard
// against its own notifications.
//
// # Iteration
//
// Iterator returns an independent cursor:
//
//	it := v.Iterator()
//	for it.Next() {
//		fmt.Println(it.Name(), it.Value().Dump(false))
//	}
//
// All adapts the same walk to a range-over-func sequence.
//
// # Thread Safety
//
// Values are not safe for concurrent use.
//
// # Related Packages
//
//   - github.com/ares-editor/valtree/buffer - edit buffers with apply
//   - github.com/ares-editor/valtree/mirror - retargetable proxies
//   - github.com/ares-editor/valtree/libdiff - structural diffs
package value
