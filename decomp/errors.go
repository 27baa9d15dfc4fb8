package decomp

import "errors"

// ErrIrregular is not itself returned as an error from Run: it names the
// witness recorded on a node's Violator field when step 9 of the dispatch
// table finds no 3-separation and the node is therefore an irregular
// leaf. Run reports irregularity only through the tree (a KindIrregular
// node), also when it stops early on the first irregularity.
var ErrIrregular = errors.New("decomp: matrix is not regular")

// ErrNotGraphic / ErrNotCographic name the short-circuit witnesses
// for callers that only care about graphicness/cographicness and not the
// full decomposition (this foundNongraphic/foundNoncographic
// flags).
var (
	ErrNotGraphic   = errors.New("decomp: matrix is not graphic")
	ErrNotCographic = errors.New("decomp: matrix is not cographic")
)
