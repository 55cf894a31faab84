package mbtree

import (
	"cmp"
	"fmt"
	"strings"
)

// Property names a structural B-tree property.
type Property int

const (
	// KeyOrder requires strictly increasing keys within every node.
	KeyOrder Property = iota
	// LeafDepth requires all leaves to live at the same depth.
	LeafDepth
	// Occupancy bounds the key and child counts of every node.
	Occupancy
	// SeparatorBounds requires all keys of children[i] to lie strictly
	// between keys[i-1] and keys[i] of their parent.
	SeparatorBounds
	// KeyCount requires the number of stored keys to match Size().
	KeyCount
)

func (p Property) String() string {
	switch p {
	case KeyOrder:
		return "key order"
	case LeafDepth:
		return "leaf depth"
	case Occupancy:
		return "occupancy"
	case SeparatorBounds:
		return "separator bounds"
	case KeyCount:
		return "key count"
	}
	return fmt.Sprintf("property(%d)", int(p))
}

// Violation describes the first structural property a tree failed.
type Violation struct {
	Property Property
	// Path lists the child indices leading from the root to the offending
	// node. An empty path denotes the root.
	Path     []int
	Expected string
	Actual   string
}

func (v *Violation) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s at node %s", ErrInvariantViolation, v.Property, pathString(v.Path))
	if v.Expected != "" || v.Actual != "" {
		fmt.Fprintf(&b, " (expected %s, got %s)", v.Expected, v.Actual)
	}
	return b.String()
}

// Unwrap makes violations match ErrInvariantViolation with errors.Is.
func (v *Violation) Unwrap() error {
	return ErrInvariantViolation
}

func pathString(path []int) string {
	if len(path) == 0 {
		return "root"
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprint(p)
	}
	return "root/" + strings.Join(parts, "/")
}

// CheckProperties reports whether the tree satisfies all B-tree properties.
// An empty tree passes.
func (t *Tree[K]) CheckProperties() bool {
	return t.Check() == nil
}

// Check validates structural tree invariants and returns a *Violation for the
// first one that fails, or nil.
//
// Properties are verified one after the other over the whole tree: key
// order, leaf depth, occupancy, separator bounds, key count.
func (t *Tree[K]) Check() error {
	if t.IsEmpty() {
		if t != nil && t.n != 0 {
			return &Violation{Property: KeyCount, Expected: "0", Actual: fmt.Sprint(t.n)}
		}
		return nil
	}
	var err error
	if v := t.checkKeyOrder(t.root, nil); v != nil {
		err = v
	} else if v := t.checkLeafDepth(t.root, nil, 0, spineDepth(t.root)); v != nil {
		err = v
	} else if v := t.checkOccupancy(t.root, nil); v != nil {
		err = v
	} else if v := t.checkSeparators(t.root, nil, nil, nil); v != nil {
		err = v
	} else if count := t.countKeys(t.root); count != t.n {
		err = &Violation{Property: KeyCount, Expected: fmt.Sprint(t.n), Actual: fmt.Sprint(count)}
	}
	if err != nil {
		tracer().Infof("check: %v", err)
	}
	return err
}

// childPath extends path by index without aliasing the caller's slice.
func childPath(path []int, index int) []int {
	p := make([]int, len(path), len(path)+1)
	copy(p, path)
	return append(p, index)
}

func (t *Tree[K]) checkKeyOrder(n *node[K], path []int) *Violation {
	for i := 1; i < n.count(); i++ {
		if n.keys[i-1] >= n.keys[i] {
			return &Violation{
				Property: KeyOrder,
				Path:     path,
				Expected: fmt.Sprintf("keys[%d] < keys[%d]", i-1, i),
				Actual:   fmt.Sprintf("%v >= %v", n.keys[i-1], n.keys[i]),
			}
		}
	}
	for i, child := range n.children {
		if v := t.checkKeyOrder(child, childPath(path, i)); v != nil {
			return v
		}
	}
	return nil
}

// spineDepth is the depth of the leftmost leaf below n. It tolerates
// malformed internal nodes without children, which checkLeafDepth reports.
func spineDepth[K cmp.Ordered](n *node[K]) int {
	depth := 0
	for !n.leaf && len(n.children) > 0 {
		n = n.children[0]
		depth++
	}
	return depth
}

// checkLeafDepth verifies every leaf against the depth of the left spine.
func (t *Tree[K]) checkLeafDepth(n *node[K], path []int, depth, expected int) *Violation {
	if n.leaf {
		if depth != expected {
			return &Violation{
				Property: LeafDepth,
				Path:     path,
				Expected: fmt.Sprintf("depth %d", expected),
				Actual:   fmt.Sprintf("depth %d", depth),
			}
		}
		return nil
	}
	if len(n.children) == 0 {
		return &Violation{Property: LeafDepth, Path: path, Expected: "children", Actual: "internal node without children"}
	}
	for i, child := range n.children {
		if v := t.checkLeafDepth(child, childPath(path, i), depth+1, expected); v != nil {
			return v
		}
	}
	return nil
}

func (t *Tree[K]) checkOccupancy(n *node[K], path []int) *Violation {
	isRoot := len(path) == 0
	minKeys, maxKeys := t.cfg.minKeys(), t.cfg.maxKeys()
	minChildren, maxChildren := t.cfg.minChildren(), t.cfg.Order
	if isRoot {
		minKeys, minChildren = 1, 2
	}
	if n.count() < minKeys || n.count() > maxKeys {
		return &Violation{
			Property: Occupancy,
			Path:     path,
			Expected: fmt.Sprintf("%d..%d keys", minKeys, maxKeys),
			Actual:   fmt.Sprintf("%d keys", n.count()),
		}
	}
	if n.leaf {
		if len(n.children) != 0 {
			return &Violation{Property: Occupancy, Path: path, Expected: "0 children", Actual: fmt.Sprintf("%d children", len(n.children))}
		}
		return nil
	}
	if len(n.children) != n.count()+1 {
		return &Violation{
			Property: Occupancy,
			Path:     path,
			Expected: fmt.Sprintf("%d children", n.count()+1),
			Actual:   fmt.Sprintf("%d children", len(n.children)),
		}
	}
	if len(n.children) < minChildren || len(n.children) > maxChildren {
		return &Violation{
			Property: Occupancy,
			Path:     path,
			Expected: fmt.Sprintf("%d..%d children", minChildren, maxChildren),
			Actual:   fmt.Sprintf("%d children", len(n.children)),
		}
	}
	for i, child := range n.children {
		if v := t.checkOccupancy(child, childPath(path, i)); v != nil {
			return v
		}
	}
	return nil
}

// checkSeparators verifies that all keys of n lie in the open interval
// (lower, upper); nil bounds are unbounded.
func (t *Tree[K]) checkSeparators(n *node[K], path []int, lower, upper *K) *Violation {
	for _, key := range n.keys {
		if (lower != nil && key <= *lower) || (upper != nil && key >= *upper) {
			return &Violation{
				Property: SeparatorBounds,
				Path:     path,
				Expected: "key in " + intervalString(lower, upper),
				Actual:   fmt.Sprint(key),
			}
		}
	}
	for i, child := range n.children {
		lo, hi := lower, upper
		if i > 0 {
			lo = &n.keys[i-1]
		}
		if i < n.count() {
			hi = &n.keys[i]
		}
		if v := t.checkSeparators(child, childPath(path, i), lo, hi); v != nil {
			return v
		}
	}
	return nil
}

func intervalString[K any](lower, upper *K) string {
	lo, hi := "-inf", "+inf"
	if lower != nil {
		lo = fmt.Sprint(*lower)
	}
	if upper != nil {
		hi = fmt.Sprint(*upper)
	}
	return "(" + lo + ", " + hi + ")"
}

// countKeys returns the total number of keys under n.
func (t *Tree[K]) countKeys(n *node[K]) int {
	total := n.count()
	for _, child := range n.children {
		total += t.countKeys(child)
	}
	return total
}
