/*
Package mbtree provides a generic, in-memory B-tree of configurable order.

The tree stores a set of ordered keys (any type satisfying cmp.Ordered) and
offers point lookup, range queries, ordered traversal and a structural
invariant checker. It is meant as an embeddable indexing primitive, not as a
database: there is no persistence, no value payload and no internal
synchronization. Clients sharing a tree between goroutines have to serialize
access themselves.

Order

The order M is the maximum number of children of an internal node. Every
node holds at most M-1 keys; every node except the root holds at least
⌈M/2⌉-1 keys. M must be at least 3.

Insertion descends recursively to a leaf and splits overfull nodes on the way
back up, promoting the median key to the parent. Deletion replaces keys found
in internal nodes with their in-order successor and repairs deficient nodes
bottom-up, trying in this order: borrow from the left sibling, borrow from the
right sibling, merge with the left sibling, merge with the right sibling.

Duplicate keys are rejected: inserting a key already present is a no-op and
reports false.

Debugging

Tree2Dot writes a Graphviz DOT rendering of the node structure,
Fprint a colored, level-by-level console dump. Structural events are traced
to the tracer selected by key "mbtree".

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package mbtree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mbtree'.
func tracer() tracing.Trace {
	return tracing.Select("mbtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
