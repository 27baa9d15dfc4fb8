package separation

import "errors"

// ErrRankExceedsAssumption is returned when an off-diagonal block's binary
// rank exceeds 2, violating the assumption this representative scan
// is built on (the engine is only ever invoked on candidate 2-/3-separations).
var ErrRankExceedsAssumption = errors.New("separation: off-diagonal block rank exceeds 2")

// ErrEmptyPart is returned when a proposed partition leaves one side with
// no rows and no columns.
var ErrEmptyPart = errors.New("separation: partition has an empty side")

// ErrNotASeparation is returned by Compose when the two children's marker
// lines are inconsistent with the 2-sum or 3-sum shape Decompose produced.
var ErrNotASeparation = errors.New("separation: children are not compatible with a sum decomposition")
