package ioformats

import "errors"

// ErrMalformed covers a bad header, a token that does not parse as an
// integer, a row/column count mismatch, or any other deviation from the
// expected format grammar.
var ErrMalformed = errors.New("ioformats: malformed input")

// ErrZeroEntry is returned by the sparse-format reader when a listed
// nonzero's value is 0: zero-valued entries are rejected rather than
// silently dropped.
var ErrZeroEntry = errors.New("ioformats: sparse entry has value 0")
