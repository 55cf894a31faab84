package mbtree

import (
	"cmp"
	"slices"
)

// node is one tree vertex. Internal nodes hold len(keys)+1 children; leaves
// hold none.
//
// Storage is allocated with room for one overflowing key (and child), which is
// the transient state between an insertion and the split it triggers.
type node[K cmp.Ordered] struct {
	// keys are strictly increasing; len(keys) is the node's count.
	keys []K
	// children[i] holds keys < keys[i], children[i+1] keys > keys[i].
	children []*node[K]
	leaf     bool
}

func newLeaf[K cmp.Ordered](order int) *node[K] {
	return &node[K]{
		keys: make([]K, 0, order),
		leaf: true,
	}
}

func newInner[K cmp.Ordered](order int) *node[K] {
	return &node[K]{
		keys:     make([]K, 0, order),
		children: make([]*node[K], 0, order+1),
	}
}

// find returns the index of key in n, or the index of the child the key would
// live under if it is not present. This is the lower bound of key in n.keys.
func (n *node[K]) find(key K) (int, bool) {
	return slices.BinarySearch(n.keys, key)
}

func (n *node[K]) count() int {
	return len(n.keys)
}

func (n *node[K]) insertKeyAt(pos int, key K) {
	n.keys = slices.Insert(n.keys, pos, key)
}

// removeKeyAt removes the key at pos; the vacated tail slot is zeroed.
func (n *node[K]) removeKeyAt(pos int) K {
	key := n.keys[pos]
	n.keys = slices.Delete(n.keys, pos, pos+1)
	return key
}

func (n *node[K]) insertChildAt(pos int, child *node[K]) {
	assert(!n.leaf, "insertChildAt called on leaf")
	n.children = slices.Insert(n.children, pos, child)
}

// removeChildAt removes the child at pos; the vacated tail slot is cleared so
// no stale pointer stays reachable beyond len(children).
func (n *node[K]) removeChildAt(pos int) *node[K] {
	child := n.children[pos]
	n.children = slices.Delete(n.children, pos, pos+1)
	return child
}

// split divides an overfull node around its median key at index order/2.
// n retains the keys (and children) before the median, the returned sibling
// receives those after it, and the median is returned for promotion.
func (n *node[K]) split(order int) (K, *node[K]) {
	assert(n.count() == order, "split called on node which is not overfull")
	mid := order / 2
	median := n.keys[mid]

	var sibling *node[K]
	if n.leaf {
		sibling = newLeaf[K](order)
	} else {
		sibling = newInner[K](order)
		sibling.children = append(sibling.children, n.children[mid+1:]...)
		clear(n.children[mid+1:])
		n.children = n.children[:mid+1]
	}
	sibling.keys = append(sibling.keys, n.keys[mid+1:]...)
	clear(n.keys[mid:])
	n.keys = n.keys[:mid]
	return median, sibling
}

// release drops every reference held by the subtree rooted at n.
func (n *node[K]) release() {
	for _, child := range n.children {
		child.release()
	}
	clear(n.children)
	n.children = n.children[:0]
	clear(n.keys)
	n.keys = n.keys[:0]
}

// leftmost returns the leaf on the left spine of the subtree rooted at n.
func (n *node[K]) leftmost() *node[K] {
	for !n.leaf {
		n = n.children[0]
	}
	return n
}

// rightmost returns the leaf on the right spine of the subtree rooted at n.
func (n *node[K]) rightmost() *node[K] {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n
}
