// Package cmrsub003 recognizes total unimodularity, regularity, and
// (co)network structure in integer matrices via Seymour's decomposition
// theorem.
//
// The core pipeline is organized under a handful of subpackages:
//
//	matrix/      — sparse (CSR) and packed dense-bit matrix storage
//	bipartite/   — bipartite row/column BFS over a matrix
//	spreduce/    — series-parallel reduction
//	nestedminor/ — nested-minor-sequence growth from a wheel seed
//	graphic/     — direct (co)graphicness testing on small matrices
//	separation/  — 2-sum / 3-sum k-separation analysis
//	camion/      — network-matrix sign reconciliation
//	decomp/      — the decomposition node type and dispatch driver
//	cmr/         — the public façade: TestTotalUnimodularity and friends
//	realgraph/   — the half-arc graph type used by the edge-list formats
//	ioformats/   — dense/sparse/submatrix and edge-list text formats
//	env/         — per-call deadline, scratch arena, and statistics
//
// See cmd/cmr for the command-line surface over the façade.
package cmrsub003
