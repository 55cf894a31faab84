package mbtree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[K cmp.Ordered] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K cmp.Ordered]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the node structure of a tree in Graphviz DOT format
// (for debugging purposes). Every node is rendered as a record with one
// field per key and one port per child pointer.
func Tree2Dot[K cmp.Ordered](tree *Tree[K], w io.Writer) error {
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	if !tree.IsEmpty() {
		ids := newtable[K]()
		var nodelist, edgelist strings.Builder
		var walk func(n *node[K])
		walk = func(n *node[K]) {
			ID := ids.alloc(n)
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\" %s];\n", ID, recordLabel(n), nodeDotStyles(n.leaf))
			for i, child := range n.children {
				fmt.Fprintf(&edgelist, "\t\"%d\":c%d -> \"%d\";\n", ID, i, ids.alloc(child))
				walk(child)
			}
		}
		walk(tree.root)
		out.WriteString(nodelist.String())
		out.WriteString(edgelist.String())
	}
	out.WriteString("}\n")
	_, err := io.WriteString(w, out.String())
	return err
}

var recordEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

// recordLabel interleaves child ports and keys: <c0>|k0|<c1>|k1|<c2>.
// Leaves carry keys only.
func recordLabel[K cmp.Ordered](n *node[K]) string {
	fields := make([]string, 0, 2*n.count()+1)
	for i, key := range n.keys {
		if !n.leaf {
			fields = append(fields, fmt.Sprintf("<c%d>", i))
		}
		fields = append(fields, recordEscaper.Replace(fmt.Sprint(key)))
	}
	if !n.leaf {
		fields = append(fields, fmt.Sprintf("<c%d>", n.count()))
	}
	return strings.Join(fields, "|")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",fillcolor=\"#e4f0d0\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}
