package spreduce

import "errors"

// ErrNotTernary is returned when Reduce is given a matrix whose entries are
// not in {-1,0,1}.
var ErrNotTernary = errors.New("spreduce: matrix is not ternary")
