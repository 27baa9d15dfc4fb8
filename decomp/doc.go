// Package decomp implements the decomposition node and driver:
// a tree of nodes, each carrying a matrix and the subset of tests already
// decided for it, processed by a FIFO task queue until every node is
// either a typed leaf or an internal node whose children's sum recomposes
// it, or until an irregularity witness short-circuits the whole queue.
//
// The queue/phase-loop shape follows a phase-by-phase blocking structure
// (a scan phase followed by an extension phase, repeated until no further
// progress is possible): each dequeued task runs exactly one applicable
// rule out of the dispatch table and, if the node is not yet decided, is
// re-enqueued for the next rule in sequence, repeating the phase loop
// until stuck. Node's option-style boolean "already tested" fields follow
// an incrementally-maintained adjacency-bookkeeping style (union-find
// over which tests have run, rather than over which vertices are
// connected).
package decomp
