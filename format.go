package mbtree

import (
	"fmt"
	"strings"
)

// Join renders all keys in ascending order, each formatted with fmt.Sprint
// and separated by sep. It is meant for inspection and debugging, not as a
// durable format.
func (t *Tree[K]) Join(sep string) string {
	var b strings.Builder
	first := true
	t.ForEachKey(func(key K) bool {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, key)
		return true
	})
	return b.String()
}

// String renders the keys of t in ascending order, separated by blanks.
func (t *Tree[K]) String() string {
	return t.Join(" ")
}
