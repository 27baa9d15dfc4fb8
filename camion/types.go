package camion

// Path is the fundamental-cycle path of one column through the candidate
// spanning tree: Rows lists, in true tree-path order (not necessarily
// ascending), the tree-edge rows the column's fundamental cycle passes
// through.
type Path struct {
	Column int
	Rows   []int
}

// Violator names the 2x2 submatrix (two rows, two columns) at which sign
// reconciliation failed.
type Violator struct {
	Rows    [2]int
	Columns [2]int
}
