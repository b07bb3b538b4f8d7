// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwadd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteDot outputs the structure of n in Graphviz DOT format (for debugging
// purposes). Edges go from a composite to its low half, then its high half;
// dashed edges show how the carry is threaded.
//
func WriteDot(w io.Writer, n Network) error {
	if n == nil {
		return errors.WithStack(ErrNilNetwork)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")

	var nodes, edges []string
	count := 0
	bit := 0 // lowest bit covered by the next leaf or chain
	var rec func(n Network) int
	rec = func(n Network) int {
		count++
		id := count
		switch n := n.(type) {
		case *Leaf:
			nodes = append(nodes, fmt.Sprintf("\t\"%d\" [label=\"FA\\nbit %d\",shape=box];\n", id, bit))
			bit++
		case *Chain:
			nodes = append(nodes, fmt.Sprintf("\t\"%d\" [label=\"ripple %d\\nbits %d..%d\",shape=box3d];\n",
				id, n.Width(), bit, bit+n.Width()-1))
			bit += n.Width()
		case *Composite:
			nodes = append(nodes, fmt.Sprintf("\t\"%d\" [label=%d,shape=circle,style=filled,fillcolor=\"#a3d7e4\"];\n",
				id, n.Width()))
			lo := rec(n.low)
			hi := rec(n.high)
			edges = append(edges,
				fmt.Sprintf("\t\"%d\" -> \"%d\" [label=low];\n", id, lo),
				fmt.Sprintf("\t\"%d\" -> \"%d\" [label=high];\n", id, hi),
				fmt.Sprintf("\t\"%d\" -> \"%d\" [style=dashed,label=carry,constraint=false];\n", lo, hi))
		}
		return id
	}
	rec(n)
	for _, s := range nodes {
		bw.WriteString(s)
	}
	for _, s := range edges {
		bw.WriteString(s)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}
