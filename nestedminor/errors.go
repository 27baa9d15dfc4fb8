package nestedminor

import "errors"

// ErrEmptySeed is returned when the supplied wheel seed does not name three
// distinct rows and three distinct columns.
var ErrEmptySeed = errors.New("nestedminor: seed must name 3 distinct rows and 3 distinct columns")

// ErrSeedNotInRemainder is returned when a seed line is not present in the
// remainder row/column sets passed to Grow.
var ErrSeedNotInRemainder = errors.New("nestedminor: seed line is not part of the given remainder")
