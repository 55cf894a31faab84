package mbtree

// Insert adds key to the tree and reports whether it was added. A key already
// present is left alone and Insert returns false; the tree is unchanged.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		t.cfg = t.cfg.normalized()
		t.root = newLeaf[K](t.cfg.Order)
		t.root.keys = append(t.root.keys, key)
		t.n = 1
		tracer().Debugf("insert: created root leaf for %v", key)
		return true
	}
	promoted, sibling, inserted := t.insertRecursive(t.root, key)
	if !inserted {
		return false
	}
	if sibling != nil {
		t.growRoot(promoted, sibling)
	}
	t.n++
	return true
}

// growRoot puts a new root above the old one after the old root split.
// Tree height increases by one.
func (t *Tree[K]) growRoot(promoted K, sibling *node[K]) {
	root := newInner[K](t.cfg.Order)
	root.keys = append(root.keys, promoted)
	root.children = append(root.children, t.root, sibling)
	t.root = root
	tracer().Debugf("insert: root split, new root [%v], height now %d", promoted, t.Height())
}

// insertRecursive inserts key into the subtree rooted at n and propagates
// split results.
//
// The returned sibling is non-nil only when n split; it then has to be linked
// into n's parent right of n, with promoted as the separator between them.
// inserted is false if key is a duplicate, in which case nothing was modified.
func (t *Tree[K]) insertRecursive(n *node[K], key K) (promoted K, sibling *node[K], inserted bool) {
	assert(n != nil, "insertRecursive called with nil node")
	pos, found := n.find(key)
	if found {
		return promoted, nil, false
	}
	if n.leaf {
		n.insertKeyAt(pos, key)
	} else {
		childPromoted, childSibling, ok := t.insertRecursive(n.children[pos], key)
		if !ok {
			return promoted, nil, false
		}
		if childSibling == nil {
			return promoted, nil, true
		}
		n.insertKeyAt(pos, childPromoted)
		n.insertChildAt(pos+1, childSibling)
	}
	if !t.overflow(n) {
		return promoted, nil, true
	}
	promoted, sibling = n.split(t.cfg.Order)
	tracer().Debugf("insert: split node at %v into %d + %d keys", promoted, n.count(), sibling.count())
	return promoted, sibling, true
}

// overflow reports whether n holds one key more than allowed.
func (t *Tree[K]) overflow(n *node[K]) bool {
	return n.count() > t.cfg.maxKeys()
}
