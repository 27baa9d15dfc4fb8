// Package matrix implements the sparse matrix kernel (row-major compressed
// storage) and the packed dense bit-matrix used by the decomposition engine.
//
// A Matrix[T] stores its nonzero entries in CSR form: a row-pointer array of
// length numRows+1, and two parallel arrays of length numNonzeros giving the
// column index and value of each nonzero, sorted ascending by column within
// each row with no duplicates and no stored zeros. Three entry types are
// supported via the generic parameter T: int8 (binary {0,1} and ternary
// {-1,0,1} matrices), int32 (general integer matrices) and float64 (the one
// double-based fallback determinant used outside the exact integer core).
//
// Complexity notes: Transpose and Slice are linear in the number of
// nonzeros involved; FindEntry is a binary search within a row.
package matrix
