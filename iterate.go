package mbtree

import "iter"

// ForEachKey walks all keys in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEachKey(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachKeyNode(t.root, fn)
}

func (t *Tree[K]) forEachKeyNode(n *node[K], fn func(key K) bool) bool {
	assert(n != nil, "forEachKeyNode called with nil node")
	for i, key := range n.keys {
		if !n.leaf && !t.forEachKeyNode(n.children[i], fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	if n.leaf {
		return true
	}
	return t.forEachKeyNode(n.children[len(n.keys)], fn)
}

// All returns an iterator over all keys in ascending order.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEachKey(yield)
	}
}

// Ascend returns an iterator over the keys k with begin <= k <= end, in
// ascending order. It yields exactly the keys RangeSearch would return, but
// lazily. Mutating the tree while iterating is not allowed.
func (t *Tree[K]) Ascend(begin, end K) iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.IsEmpty() {
			return
		}
		t.ascendNode(t.root, begin, end, yield)
	}
}

// RangeSearch returns the keys k with begin <= k <= end in ascending order.
// The result is never nil; it is empty if no key qualifies or begin > end.
func (t *Tree[K]) RangeSearch(begin, end K) []K {
	out := make([]K, 0)
	if t.IsEmpty() {
		return out
	}
	t.ascendNode(t.root, begin, end, func(key K) bool {
		out = append(out, key)
		return true
	})
	return out
}

// ascendNode visits the keys of the subtree at n which fall into
// [begin, end]. Children left of the lower bound of begin cannot hold
// qualifying keys and are skipped, as is the child left of a key equal to
// begin. The walk ends at the first key > end.
// It returns false once the walk is finished, either because a key exceeded
// end or because yield asked to stop.
func (t *Tree[K]) ascendNode(n *node[K], begin, end K, yield func(K) bool) bool {
	i, exact := n.find(begin)
	for ; i < n.count(); i++ {
		if !n.leaf && !exact && !t.ascendNode(n.children[i], begin, end, yield) {
			return false
		}
		exact = false
		key := n.keys[i]
		if key > end {
			return false
		}
		if !yield(key) {
			return false
		}
	}
	if n.leaf {
		return true
	}
	return t.ascendNode(n.children[n.count()], begin, end, yield)
}
