package spreduce

import "github.com/discopt/cmr-sub003/elt"

// Reduction records one step performed by Reduce: element Element was
// removed because it was a zero/unit line (Mate is its sole remaining
// neighbour, or elt.Invalid if Element was a zero line) or because it was
// found parallel to another line of the same kind (Mate is that line).
// Negated records whether the relationship carried a sign flip; signs are
// preserved throughout so the lift back to the original matrix stays exact.
type Reduction struct {
	Element elt.E
	Mate    elt.E
	Negated bool
}

// WheelCertificate names the three rows and three columns of a W₃
// submatrix found when series-parallel reduction gets stuck and the
// remainder needs to seed the nested-minor-sequence engine.
type WheelCertificate struct {
	Rows    [3]int
	Columns [3]int
}

// Separation partitions the rows and columns that remain after reduction
// into two nonempty sides, witnessing a 2-separation of the SP-irreducible
// remainder. Confirmed is true when the split came from genuine
// disconnection in the remainder's row/column incidence graph (an actual
// 2-separation), and false when it is isolateLowestDegree's single-line
// guess -- a valid bipartition but not a verified separation, since no
// wheel seed was found to grow from instead.
type Separation struct {
	RowsA, ColumnsA []int
	RowsB, ColumnsB []int
	Confirmed       bool
}
