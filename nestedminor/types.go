package nestedminor

import (
	"github.com/discopt/cmr-sub003/elt"
	"github.com/discopt/cmr-sub003/matrix"
)

// Sequence is the result of successfully growing M₀ ⊂ M₁ ⊂ … ⊂ Mₗ to
// absorb an entire SP-reduced remainder.
//
// Order lists, in growth order, the original matrix line each successive
// row/column of Matrix came from: Order[:6] is the W₃ seed (three rows
// then three columns), and StepSizes[i] is how many entries of Order the
// i'th growth step contributed (6 for the seed step, 1 for ordinary
// single-line steps, 2 for a rule-2 row+column step).
type Sequence struct {
	Order     []elt.E
	StepSizes []int
	Matrix    *matrix.Matrix[int8]
}
