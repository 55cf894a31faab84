package mbtree

import (
	"slices"
	"testing"
)

func TestRangeSearchBounds(t *testing.T) {
	tree := newIntTree(t, 4)
	for i := 0; i <= 100; i += 5 {
		tree.Insert(i)
	}
	cases := []struct {
		begin, end int
		want       []int
	}{
		{-10, -1, []int{}},
		{101, 200, []int{}},
		{50, 10, []int{}},
		{0, 0, []int{0}},
		{1, 4, []int{}},
		{4, 16, []int{5, 10, 15}},
		{15, 30, []int{15, 20, 25, 30}},
		{95, 1000, []int{95, 100}},
	}
	for _, c := range cases {
		got := tree.RangeSearch(c.begin, c.end)
		if got == nil {
			t.Fatalf("RangeSearch(%d, %d) returned nil", c.begin, c.end)
		}
		if !slices.Equal(got, c.want) {
			t.Fatalf("RangeSearch(%d, %d) = %v, want %v", c.begin, c.end, got, c.want)
		}
		if lazy := slices.Collect(tree.Ascend(c.begin, c.end)); !slices.Equal(lazy, got) {
			t.Fatalf("Ascend(%d, %d) = %v, RangeSearch = %v", c.begin, c.end, lazy, got)
		}
	}
}

func TestRangeSearchFullRange(t *testing.T) {
	for _, order := range []int{3, 4, 7} {
		tree := newIntTree(t, order)
		var want []int
		for i := 0; i < 300; i++ {
			k := (i * 37) % 301
			tree.Insert(k)
			want = append(want, k)
		}
		slices.Sort(want)
		if got := tree.RangeSearch(-1, 1000); !slices.Equal(got, want) {
			t.Fatalf("order %d: full range does not yield all keys in order", order)
		}
	}
}

func TestAscendStopsEarly(t *testing.T) {
	tree := newIntTree(t, 3)
	insertAll(t, tree, ascending(50)...)
	var got []int
	for k := range tree.Ascend(10, 40) {
		if k > 13 {
			break
		}
		got = append(got, k)
	}
	if !slices.Equal(got, []int{10, 11, 12, 13}) {
		t.Fatalf("unexpected early-stopped iteration %v", got)
	}
}

func TestForEachKeyStopsEarly(t *testing.T) {
	tree := newIntTree(t, 4)
	insertAll(t, tree, ascending(30)...)
	count := 0
	tree.ForEachKey(func(k int) bool {
		count++
		return k < 5
	})
	if count != 5 {
		t.Fatalf("expected 5 callbacks, got %d", count)
	}
	tree.ForEachKey(nil)
}

func TestAllOnEmptyTree(t *testing.T) {
	tree := newIntTree(t, 3)
	for k := range tree.All() {
		t.Fatalf("unexpected key %d in empty tree", k)
	}
	for k := range tree.Ascend(0, 10) {
		t.Fatalf("unexpected key %d in empty range", k)
	}
}

func TestAscendSkipsChildLeftOfExactBegin(t *testing.T) {
	// 12 is misplaced left of separator 10 and must not be visited when the
	// walk starts at 10.
	tree := &Tree[int]{
		cfg:  Config{Order: 4},
		root: innerOf(4, []int{10}, leafOf(4, 12), leafOf(4, 20)),
		n:    3,
	}
	if got := tree.RangeSearch(10, 30); !slices.Equal(got, []int{10, 20}) {
		t.Fatalf("RangeSearch(10, 30) = %v, want [10 20]", got)
	}
	if got := tree.RangeSearch(9, 30); !slices.Equal(got, []int{12, 10, 20}) {
		t.Fatalf("RangeSearch(9, 30) = %v, want [12 10 20]", got)
	}
}
