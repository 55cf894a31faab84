package mbtree

import (
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func descending(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = n - i
	}
	return keys
}

func ascending(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	return keys
}

func TestRemoveLeafBorrowLeft(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, descending(4)...)
	assertLevels(t, tree, "[3]", "[1 2] [4]")
	tree.Remove(3)
	assertLevels(t, tree, "[2]", "[1] [4]")
	assertValid(t, tree)
}

func TestRemoveLeafBorrowRight(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, ascending(4)...)
	assertLevels(t, tree, "[2]", "[1] [3 4]")
	tree.Remove(1)
	assertLevels(t, tree, "[3]", "[2] [4]")
	assertValid(t, tree)
}

func TestRemoveLeafMergeLeftShrinksRoot(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, 1, 2, 3)
	tree.Remove(2)
	assertLevels(t, tree, "[1 3]")
	if tree.Height() != 0 {
		t.Fatalf("expected root collapse to height 0, got %d", tree.Height())
	}
	assertValid(t, tree)
}

func TestRemoveLeafMergeRightShrinksRoot(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, 1, 2, 3)
	tree.Remove(1)
	assertLevels(t, tree, "[2 3]")
	assertValid(t, tree)
}

func TestRemoveInnerBorrowLeft(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, descending(9)...)
	assertLevels(t, tree, "[6]", "[2 4] [8]", "[1] [3] [5] [7] [9]")
	tree.Remove(8)
	assertLevels(t, tree, "[4]", "[2] [6]", "[1] [3] [5] [7 9]")
	assertValid(t, tree)
}

func TestRemoveInnerBorrowRight(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, ascending(9)...)
	assertLevels(t, tree, "[4]", "[2] [6 8]", "[1] [3] [5] [7] [9]")
	tree.Remove(1)
	assertLevels(t, tree, "[6]", "[4] [8]", "[2 3] [5] [7] [9]")
	assertValid(t, tree)
}

func TestRemoveInnerMergeCascadesToRoot(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, ascending(7)...)
	tree.Remove(6)
	assertLevels(t, tree, "[2 4]", "[1] [3] [5 7]")
	if tree.Height() != 1 {
		t.Fatalf("expected height 1 after root collapse, got %d", tree.Height())
	}
	assertValid(t, tree)

	tree = newIntTree(t, 3)
	insertAll(t, tree, ascending(7)...)
	tree.Remove(1)
	assertLevels(t, tree, "[4 6]", "[2 3] [5] [7]")
	assertValid(t, tree)
}

func TestRemoveInternalKeyUsesSuccessor(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, ascending(7)...)
	tree.Remove(4)
	assertLevels(t, tree, "[2 5]", "[1] [3] [6 7]")
	assertValid(t, tree)
}

func TestRemoveAbsentKeyLeavesTreeUntouched(t *testing.T) {
	tree := newIntTree(t, 4)
	insertAll(t, tree, 10, 20, 30, 40, 50, 60, 70)
	before := levels(tree)
	for _, k := range []int{0, 15, 35, 65, 100} {
		if tree.Remove(k) {
			t.Fatalf("Remove(%d) reported success for absent key", k)
		}
	}
	assertLevels(t, tree, before...)
	if tree.Size() != 7 {
		t.Fatalf("size changed to %d", tree.Size())
	}
}

func TestRemoveLastKeyEmptiesTree(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, 1)
	if !tree.Remove(1) {
		t.Fatalf("Remove(1) failed")
	}
	if !tree.IsEmpty() || tree.Size() != 0 || tree.Height() != 0 {
		t.Fatalf("expected empty tree after removing last key")
	}
	assertValid(t, tree)
}

func TestRemoveEveryKeyFromDenseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mbtree")
	defer teardown()
	//
	for _, order := range []int{3, 4, 5, 10} {
		for _, n := range []int{1, 2, 10, 64, 150} {
			t.Run(strconv.Itoa(order)+"_"+strconv.Itoa(n), func(t *testing.T) {
				for k := 1; k <= n; k++ {
					tree, err := BuildFromOrdered(ascending(n), order)
					if err != nil {
						t.Fatalf("BuildFromOrdered failed: %v", err)
					}
					if !tree.Remove(k) {
						t.Fatalf("Remove(%d) reported not found", k)
					}
					if tree.Size() != n-1 {
						t.Fatalf("Remove(%d): size %d, want %d", k, tree.Size(), n-1)
					}
					if tree.Contains(k) {
						t.Fatalf("Remove(%d): key still present", k)
					}
					assertValid(t, tree)
				}
			})
		}
	}
}

func TestRemoveAllInVariousOrders(t *testing.T) {
	for _, order := range []int{3, 4, 5, 6, 10} {
		orders := map[string][]int{
			"ascending":  ascending(120),
			"descending": descending(120),
			"interleave": interleaved(120),
		}
		for name, removal := range orders {
			tree, err := BuildFromOrdered(ascending(120), order)
			if err != nil {
				t.Fatalf("BuildFromOrdered failed: %v", err)
			}
			remaining := ascending(120)
			for _, k := range removal {
				if !tree.Remove(k) {
					t.Fatalf("order %d %s: Remove(%d) failed", order, name, k)
				}
				remaining = slices.DeleteFunc(remaining, func(x int) bool { return x == k })
				assertValid(t, tree)
				if got := slices.Collect(tree.All()); !slices.Equal(got, remaining) {
					t.Fatalf("order %d %s: keys after Remove(%d) = %v", order, name, k, got)
				}
			}
			if !tree.IsEmpty() {
				t.Fatalf("order %d %s: tree not empty at the end", order, name)
			}
		}
	}
}

// interleaved removes from the middle outwards.
func interleaved(n int) []int {
	keys := make([]int, 0, n)
	lo, hi := n/2, n/2+1
	for lo >= 1 || hi <= n {
		if lo >= 1 {
			keys = append(keys, lo)
			lo--
		}
		if hi <= n {
			keys = append(keys, hi)
			hi++
		}
	}
	return keys
}
