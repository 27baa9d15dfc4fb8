package ioformats

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT renders el as a Graphviz DOT graph (the `-D FILE` CLI output),
// one undirected edge per line labeled with its element tag: a handful of
// fmt.Fprintf calls, no DOT library.
func WriteDOT(w io.Writer, el *EdgeList) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "graph G {"); err != nil {
		return err
	}
	for _, n := range el.Graph.Nodes() {
		if _, err := fmt.Fprintf(bw, "  %d;\n", n); err != nil {
			return err
		}
	}
	for _, a := range el.Graph.Edges() {
		u, v := el.Graph.Tail(a), el.Graph.Head(a)
		tag := el.Tags[a].String()
		if _, err := fmt.Fprintf(bw, "  %d -- %d [label=%q];\n", u, v, tag); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}
	return bw.Flush()
}
