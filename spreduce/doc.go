// Package spreduce implements the series-parallel reducer: the iterative
// removal of zero, unit and parallel rows/columns from a binary or ternary
// matrix, producing an ordered reduction certificate plus, when the
// reduction gets stuck, either a wheel submatrix seed or a 2-separation.
//
// The reducer follows a union-find-style incremental structure maintenance
// and queue-draining loop: validate up front, process a FIFO work queue to
// exhaustion, maintain per-element bookkeeping incrementally rather than
// recomputing it from scratch each round.
package spreduce
