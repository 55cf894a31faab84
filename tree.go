package mbtree

import (
	"cmp"
	"fmt"
)

// Tree is an in-memory B-tree holding a set of ordered keys.
//
// The zero value is an empty tree of DefaultOrder. Use New for any other
// order. A Tree is not safe for concurrent use.
type Tree[K cmp.Ordered] struct {
	cfg  Config
	root *node[K] // nil means empty tree
	n    int      // number of keys stored
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered](cfg Config) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("cannot create tree: %v", err)
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K]{cfg: cfg}, nil
}

// BuildFromOrdered creates a tree of the given order and inserts elements one
// after the other. It does not bulk-load: the result is identical to calling
// Insert for every element, so elements need not actually be sorted.
func BuildFromOrdered[K cmp.Ordered](elements []K, order int) (*Tree[K], error) {
	tree, err := New[K](Config{Order: order})
	if err != nil {
		return nil, err
	}
	for _, key := range elements {
		tree.Insert(key)
	}
	return tree, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config {
	return t.cfg.normalized()
}

// Order returns the maximum number of children per node.
func (t *Tree[K]) Order() int {
	return t.cfg.normalized().Order
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Height returns the number of edges from the root to any leaf. Both an empty
// tree and a tree consisting of a single leaf have height 0.
func (t *Tree[K]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	h := 0
	for n := t.root; !n.leaf; n = n.children[0] {
		h++
	}
	return h
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	if t.IsEmpty() {
		return false
	}
	return t.search(t.root, key)
}

func (t *Tree[K]) search(n *node[K], key K) bool {
	i, found := n.find(key)
	if found {
		return true
	}
	if n.leaf {
		return false
	}
	return t.search(n.children[i], key)
}

// MinKey returns the smallest key of the tree, or ErrEmptyTree.
func (t *Tree[K]) MinKey() (K, error) {
	var zero K
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: no minimum key", ErrEmptyTree)
	}
	return t.root.leftmost().keys[0], nil
}

// MaxKey returns the largest key of the tree, or ErrEmptyTree.
func (t *Tree[K]) MaxKey() (K, error) {
	var zero K
	if t.IsEmpty() {
		return zero, fmt.Errorf("%w: no maximum key", ErrEmptyTree)
	}
	leaf := t.root.rightmost()
	return leaf.keys[leaf.count()-1], nil
}

// Clear removes all keys. The configuration is kept.
func (t *Tree[K]) Clear() {
	if t == nil {
		return
	}
	if t.root != nil {
		t.root.release()
	}
	tracer().Debugf("clear: dropped %d keys", t.n)
	t.root = nil
	t.n = 0
}
