package cmr

import (
	"github.com/discopt/cmr-sub003/decomp"
	"github.com/discopt/cmr-sub003/graphic"
)

// TUResult is the outcome of TestTotalUnimodularity.
type TUResult struct {
	IsTotallyUnimodular bool

	// Decomposition is the full tree Run built; non-nil on both a yes and
	// a no answer, since the violator (on no) is found somewhere inside
	// it.
	Decomposition *decomp.Node

	// Violator names a submatrix with determinant of absolute value >= 2,
	// set only when IsTotallyUnimodular is false.
	Violator *decomp.Violator
}

// RegularResult is the outcome of TestRegular.
type RegularResult struct {
	IsRegular     bool
	Decomposition *decomp.Node
	Violator      *decomp.Violator
}

// NetworkResult is the outcome of TestNetwork / TestConetwork: a direct,
// whole-matrix graphicness decision with a consistent orientation, not a
// full Seymour decomposition.
type NetworkResult struct {
	IsNetwork bool
	*graphic.Result
}

// ModularResult is the outcome of the testUnimodular/testKModular family:
// the rank/determinant pre-processing step plus the TU answer it reduces
// to.
type ModularResult struct {
	Rank          int
	Determinant   int64
	MatchesClaim  bool
	TU            *TUResult
}
