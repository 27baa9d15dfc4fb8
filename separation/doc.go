// Package separation implements the k-separation engine:
// given a proposed row/column partition, it computes the binary rank of
// the two off-diagonal blocks via a bounded representative scan, checks
// the same representatives for ternary consistency, classifies the result
// as a 2-separation or a (distributed/concentrated) 3-separation, and
// performs 2-sum and 3-sum decomposition/composition.
//
// The representative scan is grounded on bipartite.BFS's deterministic,
// ascending-index traversal style, generalized here from path-finding to
// incremental rank-over-GF(2) bookkeeping: at most two representative
// rows (or columns) are ever held live, matching the rank<=2 assumption
// this states explicitly for the off-diagonal blocks this engine is
// invoked on. The epsilon/gamma/beta parity parameters of 3-sum
// decomposition need a single point-to-point path rather than group
// reachability, so this package carries its own small signed BFS
// (grounded on the same queue/visited-map shape as bipartite.BFS) instead
// of reusing it directly.
package separation
