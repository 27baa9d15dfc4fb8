// Package elt defines the element tag E: a uniform signed-integer name for
// "a row or a column of a matrix", as used throughout the decomposition
// engine to talk about matrix lines without distinguishing rows from
// columns in algorithm plumbing.
//
// Encoding: +k names row k-1, -k names column k-1, 0 is invalid.
package elt

import "fmt"

// E is an element tag: a signed 1-based row/column reference.
type E int32

// Invalid is the distinguished invalid element tag.
const Invalid E = 0

// Row returns the element tag naming row i (0-based).
func Row(i int) E { return E(i + 1) }

// Column returns the element tag naming column j (0-based).
func Column(j int) E { return E(-(j + 1)) }

// IsValid reports whether e names an actual row or column.
func (e E) IsValid() bool { return e != Invalid }

// IsRow reports whether e names a row.
func (e E) IsRow() bool { return e > 0 }

// IsColumn reports whether e names a column.
func (e E) IsColumn() bool { return e < 0 }

// Index returns the 0-based row or column index named by e.
// Panics if e is Invalid.
func (e E) Index() int {
	switch {
	case e > 0:
		return int(e) - 1
	case e < 0:
		return int(-e) - 1
	default:
		panic("elt: Index of Invalid element")
	}
}

// String renders e as "r<k>" or "c<k>" (1-based), matching the CLI/edge-list
// tag syntax of SPEC_FULL.md §6.2, or "invalid".
func (e E) String() string {
	switch {
	case e > 0:
		return fmt.Sprintf("r%d", int(e))
	case e < 0:
		return fmt.Sprintf("c%d", int(-e))
	default:
		return "invalid"
	}
}
