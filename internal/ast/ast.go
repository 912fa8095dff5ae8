// Package ast defines a tagged-union abstract syntax tree: every
// non-terminal node carries a discriminant that names its active
// variant, construction zeroes the payload and sets the discriminant,
// and Free walks the tree depth-first, recursing into exactly the
// fields the discriminant says are live.
//
// Node allocation is tracked by a package-level counter so the ownership
// invariant ("freeing a subtree frees every reachable descendant exactly
// once") is checkable from tests without an external instrumenting
// allocator — see ast_test.go.
package ast

import "sync/atomic"

var live int64

// Live returns the number of constructed-but-not-yet-freed nodes. Tests
// use it to assert that Free walks the whole subtree and that no node is
// freed twice.
func Live() int64 { return atomic.LoadInt64(&live) }

func track()   { atomic.AddInt64(&live, 1) }
func untrack() { atomic.AddInt64(&live, -1) }

// Node is the common interface every AST node implements.
type Node interface {
	// Free recursively releases the node's owned children, then itself.
	// Calling Free on a node whose discriminant is not one of its
	// variant's recognized tags is a fatal programming error and panics.
	Free()
}

// freed is embedded by every node to guard against double-free: a node
// is the sole owner of its children, so Free must run exactly once.
type freed struct {
	done bool
}

func (f *freed) checkAndMark(what string) {
	if f.done {
		panic("ast: double free of " + what)
	}
	f.done = true
	untrack()
}
