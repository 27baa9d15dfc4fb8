// Package ioformats implements the text formats this/§6.2 name: a
// dense/sparse/submatrix matrix reader+writer and an edge-list graph
// reader+writer, plus a DOT writer for diagnostics. These are deliberately
// kept out of the core packages (matrix, realgraph) so that neither one
// carries a dependency on any text format; cmd/cmr is the only caller.
package ioformats
