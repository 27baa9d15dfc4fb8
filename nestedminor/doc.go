// Package nestedminor grows a nested sequence of 3-connected minors
// M₀ ⊂ M₁ ⊂ … ⊂ Mₗ from a W₃ seed, one growth step at a time, until either
// the whole SP-reduced matrix is absorbed or growth gets stuck and the
// placed/unplaced boundary is reported as a 2-separation.
//
// This package has no direct counterpart elsewhere in this module. It works
// on sparse restrictions of the full matrix (no dense bit matrix, no hash
// table, no bipartite BFS), detects parallel lines with its own
// compareRestricted check (the same idiom as the spreduce package's
// compareVectors), and tries candidates in ascending index order, written
// in the same fail-fast, numbered-step style used by this module's other
// greedy-growth passes.
//
// Rule 1 (add a single unprocessed row or column that is not parallel to
// any processed line) is tried first. When no single line qualifies,
// rule 2 looks for an unprocessed row and an unprocessed column sharing a
// nonzero entry that can be placed together without breaking the
// pairwise non-parallel invariant among all placed rows and all placed
// columns; this is the row+column pivot step that lets growth continue
// past matrices no single-line extension can absorb. Only once neither
// rule applies to any remaining candidate does this engine report the
// placed/unplaced boundary as a 2-separation — and even then, that
// candidate partition is independently rank-checked downstream before it
// is trusted (see decomp.splitByGrowthSeparation), since a stuck search
// does not by itself prove the off-diagonal rank is actually <=1.
package nestedminor
