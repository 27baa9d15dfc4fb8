package graphic

import (
	"github.com/discopt/cmr-sub003/camion"
	"github.com/discopt/cmr-sub003/matrix"
)

// TreeEdge is one edge of a candidate spanning tree, identified by the
// matrix row it represents.
type TreeEdge struct {
	Row  int
	U, V int
}

// Tree is a candidate spanning tree on NumVertices vertices numbered
// 0..NumVertices-1, with one edge per tree-edge row of the matrix under
// test.
type Tree struct {
	NumVertices int
	Edges       []TreeEdge
}

// Endpoints names the two tree vertices a non-tree-edge column connects.
type Endpoints struct {
	U, V int
}

// Violator names the 2x2 submatrix at which Camion signing failed to
// reconcile two columns, lifted from camion.Violator.
type Violator struct {
	Rows, Columns [2]int
}

// Result is the outcome of DirectTest / DirectTestTernary.
type Result struct {
	IsGraphic bool
	Tree      *Tree
	Endpoints map[int]Endpoints // column -> chosen tree endpoints, when IsGraphic
	Signed    *matrix.Matrix[int8]
	Violator  *Violator
}

func fromCamionViolator(v *camion.Violator) *Violator {
	if v == nil {
		return nil
	}
	return &Violator{Rows: v.Rows, Columns: v.Columns}
}
