package ioformats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/discopt/cmr-sub003/elt"
	"github.com/discopt/cmr-sub003/realgraph"
)

// EdgeList pairs the realgraph.Graph built from an edge-list file with
// the element tag each edge was given, keyed by ArcID.
type EdgeList struct {
	Graph *realgraph.Graph
	Tags  map[realgraph.ArcID]elt.E
}

// ReadEdgeList parses this format: lines `u v tag`, u/v arbitrary
// string node identifiers, tag one of `r<k>` (tree edge naming row k),
// `c<k>` (cotree edge naming column k), or a bare integer (ambiguous:
// positive = column, negative = row, 's literal wording).
// Unknown tags are tolerated and mapped to a fresh, unnamed element.
func ReadEdgeList(r io.Reader) (*EdgeList, error) {
	g := realgraph.New()
	ids := make(map[string]realgraph.NodeID)
	tags := make(map[realgraph.ArcID]elt.E)
	nextFresh := 1

	nodeID := func(name string) realgraph.NodeID {
		if id, ok := ids[name]; ok {
			return id
		}
		id := g.AddNode()
		ids[name] = id
		return id
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("ioformats.ReadEdgeList: line %d: %w", lineNo, ErrMalformed)
		}
		u := nodeID(fields[0])
		v := nodeID(fields[1])
		a, err := g.AddEdge(u, v)
		if err != nil {
			return nil, fmt.Errorf("ioformats.ReadEdgeList: line %d: %w", lineNo, err)
		}
		tags[a] = parseTag(fields[2], &nextFresh)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformats.ReadEdgeList: %w", err)
	}
	return &EdgeList{Graph: g, Tags: tags}, nil
}

// parseTag decodes one element tag token. An unrecognized token is mapped
// to a fresh column tag, per the format's "unknown tags tolerated" clause.
func parseTag(tok string, nextFresh *int) elt.E {
	switch {
	case strings.HasPrefix(tok, "r") || strings.HasPrefix(tok, "R"):
		if k, err := strconv.Atoi(tok[1:]); err == nil && k >= 1 {
			return elt.Row(k - 1)
		}
	case strings.HasPrefix(tok, "c") || strings.HasPrefix(tok, "C"):
		if k, err := strconv.Atoi(tok[1:]); err == nil && k >= 1 {
			return elt.Column(k - 1)
		}
	default:
		if k, err := strconv.Atoi(tok); err == nil && k != 0 {
			if k > 0 {
				return elt.Column(k - 1)
			}
			return elt.Row(-k - 1)
		}
	}
	fresh := *nextFresh
	*nextFresh++
	return elt.Column(fresh - 1)
}

// WriteEdgeList emits el in this format, one line per edge,
// ascending ArcID order (matching the "ascending index order" ordering
// guarantee the rest of the package follows for reproducible output).
func WriteEdgeList(w io.Writer, el *EdgeList) error {
	bw := bufio.NewWriter(w)
	names := make(map[realgraph.NodeID]string, el.Graph.NumNodes())
	for _, n := range el.Graph.Nodes() {
		names[n] = strconv.Itoa(int(n))
	}
	for _, a := range el.Graph.Edges() {
		u, v := el.Graph.Tail(a), el.Graph.Head(a)
		tag := el.Tags[a].String()
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", names[u], names[v], tag); err != nil {
			return err
		}
	}
	return bw.Flush()
}
