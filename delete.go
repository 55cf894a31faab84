package mbtree

// Remove deletes key from the tree and reports whether it was present.
// Removing an absent key leaves the tree unchanged.
func (t *Tree[K]) Remove(key K) bool {
	if t.IsEmpty() {
		return false
	}
	if !t.removeRecursive(t.root, key) {
		return false
	}
	t.n--
	t.shrinkRoot()
	return true
}

// shrinkRoot canonicalizes the root after a delete:
//   - internal root without keys => its single child becomes the root
//   - leaf root without keys => empty tree.
func (t *Tree[K]) shrinkRoot() {
	if t.root.count() > 0 {
		return
	}
	if t.root.leaf {
		t.root = nil
		tracer().Debugf("remove: last key removed, tree is empty")
		return
	}
	assert(len(t.root.children) == 1, "shrinkRoot: empty internal root must have exactly one child")
	old := t.root
	t.root = old.children[0]
	clear(old.children)
	old.children = old.children[:0]
	tracer().Debugf("remove: root collapsed, height now %d", t.Height())
}

// removeRecursive removes key from the subtree rooted at n and reports
// whether it was found.
//
// Keys found in an internal node are replaced by their in-order successor,
// which is then removed from the right child's subtree. After a child
// reported success, a deficient child is repaired before returning, so every
// node except n itself satisfies the occupancy bounds on return.
func (t *Tree[K]) removeRecursive(n *node[K], key K) bool {
	assert(n != nil, "removeRecursive called with nil node")
	pos, found := n.find(key)
	if n.leaf {
		if !found {
			return false
		}
		n.removeKeyAt(pos)
		return true
	}
	if found {
		successor := n.children[pos+1].leftmost().keys[0]
		n.keys[pos] = successor
		pos++
		ok := t.removeRecursive(n.children[pos], successor)
		assert(ok, "removeRecursive: successor vanished from right subtree")
	} else if !t.removeRecursive(n.children[pos], key) {
		return false
	}
	if t.deficient(n.children[pos]) {
		resolved := t.rebalanceChildAfterDelete(n, pos)
		assert(resolved, "removeRecursive: deficient child could not be repaired")
	}
	return true
}

// deficient reports whether non-root node n holds fewer than ⌈M/2⌉-1 keys.
func (t *Tree[K]) deficient(n *node[K]) bool {
	return n.count() < t.cfg.minKeys()
}

// canLend reports whether n can give away a key and stay within bounds.
func (t *Tree[K]) canLend(n *node[K]) bool {
	return n.count() > t.cfg.minKeys()
}

// rebalanceChildAfterDelete repairs the deficient child at slot, trying in
// order: borrow-left, borrow-right, merge-left, merge-right.
func (t *Tree[K]) rebalanceChildAfterDelete(parent *node[K], slot int) bool {
	assert(!parent.leaf, "rebalanceChildAfterDelete called with leaf parent")
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChildAfterDelete slot out of range")
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	if hasLeft && t.canLend(parent.children[slot-1]) {
		t.borrowLeft(parent, slot)
		return true
	}
	if hasRight && t.canLend(parent.children[slot+1]) {
		t.borrowRight(parent, slot)
		return true
	}
	if hasLeft {
		t.mergeLeft(parent, slot)
		return true
	}
	if hasRight {
		t.mergeRight(parent, slot)
		return true
	}
	return false
}

// borrowLeft rotates the separator keys[slot-1] down into the child at slot
// and the left sibling's last key up into the parent. For internal nodes the
// left sibling's last child moves over as the child's first child.
func (t *Tree[K]) borrowLeft(parent *node[K], slot int) {
	child, left := parent.children[slot], parent.children[slot-1]
	child.insertKeyAt(0, parent.keys[slot-1])
	parent.keys[slot-1] = left.removeKeyAt(left.count() - 1)
	if !child.leaf {
		moved := left.removeChildAt(len(left.children) - 1)
		child.insertChildAt(0, moved)
	}
	tracer().Debugf("remove: child %d borrowed from left sibling, separator now %v", slot, parent.keys[slot-1])
}

// borrowRight is the mirror image of borrowLeft: the separator keys[slot]
// becomes the child's last key, the right sibling's first key the new
// separator, and its first child the child's new last child.
func (t *Tree[K]) borrowRight(parent *node[K], slot int) {
	child, right := parent.children[slot], parent.children[slot+1]
	child.insertKeyAt(child.count(), parent.keys[slot])
	parent.keys[slot] = right.removeKeyAt(0)
	if !child.leaf {
		moved := right.removeChildAt(0)
		child.insertChildAt(len(child.children), moved)
	}
	tracer().Debugf("remove: child %d borrowed from right sibling, separator now %v", slot, parent.keys[slot])
}

// mergeLeft appends the separator keys[slot-1] and all of the child's keys
// and children to the left sibling, then unlinks the child from the parent.
func (t *Tree[K]) mergeLeft(parent *node[K], slot int) {
	child, left := parent.children[slot], parent.children[slot-1]
	t.merge(left, parent.removeKeyAt(slot-1), child)
	parent.removeChildAt(slot)
	tracer().Debugf("remove: merged child %d into left sibling (%d keys)", slot, left.count())
}

// mergeRight absorbs the right sibling into the child at slot. It is used
// only when the child is the parent's first child.
func (t *Tree[K]) mergeRight(parent *node[K], slot int) {
	child, right := parent.children[slot], parent.children[slot+1]
	t.merge(child, parent.removeKeyAt(slot), right)
	parent.removeChildAt(slot + 1)
	tracer().Debugf("remove: merged right sibling into child %d (%d keys)", slot, child.count())
}

// merge concatenates separator and the contents of src onto dst. src is
// released afterwards.
func (t *Tree[K]) merge(dst *node[K], separator K, src *node[K]) {
	assert(dst.leaf == src.leaf, "merge called with siblings of different kind")
	assert(dst.count()+1+src.count() <= t.cfg.maxKeys(), "merge would overflow node")
	dst.keys = append(dst.keys, separator)
	dst.keys = append(dst.keys, src.keys...)
	if !dst.leaf {
		dst.children = append(dst.children, src.children...)
	}
	clear(src.keys)
	src.keys = src.keys[:0]
	clear(src.children)
	src.children = src.children[:0]
}
