package separation

import "github.com/discopt/cmr-sub003/matrix"

// Kind classifies a separation by the combined rank of its two
// off-diagonal blocks (this Classification rule).
type Kind int

const (
	// KindTwo is a 2-separation: total off-diagonal rank at most 1.
	KindTwo Kind = iota
	// KindThreeDistributed is a 3-separation with rank 1 in each
	// off-diagonal block.
	KindThreeDistributed
	// KindThreeConcentrated is a 3-separation with rank 2 in one block
	// and 0 in the other (after possibly swapping parts).
	KindThreeConcentrated
)

func (k Kind) String() string {
	switch k {
	case KindTwo:
		return "two"
	case KindThreeDistributed:
		return "threeDistributed"
	case KindThreeConcentrated:
		return "threeConcentrated"
	default:
		return "unknown"
	}
}

// Partition names a proposed row/column split into a "first" (A) and
// "second" (B) part. Every row and column index of the parent matrix
// appears in exactly one of the four slices.
type Partition struct {
	RowsA, ColsA []int
	RowsB, ColsB []int
}

// Violator is the certificate returned when representative scanning finds
// a ternary inconsistency: a 2x2 (or, for the r1+r2 case, 3x3) submatrix
// with |det| = 2.
type Violator struct {
	Rows, Columns []int
}

// Result is the outcome of Analyze: the rank/classification of a proposed
// partition, its representative lines, and (on failure) a violator.
type Result struct {
	Kind Kind

	// RankTopRight and RankBottomLeft are the binary ranks (0, 1, or 2) of
	// the off-diagonal blocks RowsA x ColsB and RowsB x ColsA.
	RankTopRight   int
	RankBottomLeft int

	// Representative rows/columns recorded for each off-diagonal block,
	// in discovery order (at most 2 each), used downstream by Decompose.
	RepTopRightRows    []int
	RepTopRightCols    []int
	RepBottomLeftRows  []int
	RepBottomLeftCols  []int

	Violator *Violator
}

// Child is one of the two matrices a Decompose call produces, tagged with the position of its synthetic
// marker lines within its own index space (not the parent's).
type Child struct {
	Matrix *matrix.Matrix[int8]

	// MarkerRows/MarkerColumns record the index, within Matrix's own
	// coordinates, of each synthetic marker row/column this child carries.
	MarkerRows    []int
	MarkerColumns []int
}

// TwoSum is the result of decomposing a 2-separation: two children whose
// 2-sum recomposes the parent matrix. First is always the top-left block
// (RowsA x ColsA), Second always the bottom-right block (RowsB x ColsB);
// whether First carries a marker row or marker column (and Second the
// other) depends on NonzeroOnTopRight.
type TwoSum struct {
	First, Second     Child
	NonzeroOnTopRight bool // which off-diagonal corner the outer product reoccupies on Compose
}

// ThreeSumSeymour is the result of decomposing a Seymour-style 3-sum
// (rank 2 concentrated in one off-diagonal block).
type ThreeSumSeymour struct {
	First, Second Child
	Epsilon       int8 // +-1, fixed by the parity of a BFS path-sum mod 4
}

// ThreeSumTruemper is the result of decomposing a Truemper-style 3-sum
// (rank 1 distributed across both off-diagonal blocks).
type ThreeSumTruemper struct {
	First, Second Child
	Gamma, Beta   int8 // +-1 each, fixed by BFS path-sum parity
}
