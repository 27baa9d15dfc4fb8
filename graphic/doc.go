// Package graphic implements the (co)graphicness tester: a
// direct test for small matrices and, in the ternary case, Camion signing
// (package camion) to confirm the binary support lifts to a genuine
// network matrix.
//
// Direct test. Rows are candidate tree edges; a graphic binary matrix of
// this shape is exactly the fundamental-cycle matrix of SOME spanning
// tree on (numRows+1) vertices, for SOME choice of endpoints for each
// column (non-tree edge): column j is realizable over tree T iff some
// pair of tree vertices (u,v) has a T-path whose edge set equals column
// j's support exactly. The test enumerates candidate trees via Prüfer
// sequences (decoded via a union-find-flavoured incremental structure
// that repeatedly attaches the lowest-labelled leaf) and, for each
// candidate, checks every column against every tree-vertex pair. This is
// exhaustive rather than the representative-extraction algorithm real
// graphic-matroid recognizers use, so it is bounded to matrices with at
// most directTestRowBound rows — exactly the small-matrix case the
// decomposition driver restricts this path to.
//
// Sequence test (along a nested-minor sequence) is out of scope for this
// package's direct entry point; the decomposition driver falls back to
// the separation engine when a matrix is too large for the direct test
// and has no nested-minor sequence available yet.
package graphic
