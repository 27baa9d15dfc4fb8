// Package cmr: sentinel error set, one per error kind the façade returns.
// All façade functions return these sentinels (possibly wrapped with
// fmt.Errorf("%w", ...) for detail); callers should check via errors.Is,
// matching the sentinel-set idiom every other package in this module
// uses (see e.g. matrix/errors.go).
package cmr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers a bad token, wrong dimensions, an entry
	// outside {-1,0,+1} where ternary is required, or a non-binary entry
	// where binary is required.
	ErrInvalidInput = errors.New("cmr: invalid input")

	// ErrStructure is returned when a caller-supplied separation does not
	// meet the rank assumptions a decomposition step requires.
	ErrStructure = errors.New("cmr: structure does not meet assumptions")

	// ErrInconsistent is returned when an internal check of a composed or
	// recomposed matrix disagrees with its decomposition.
	ErrInconsistent = errors.New("cmr: internal consistency check failed")

	// ErrOverflow is returned when an integer row-reduction used to
	// extract rank or a determinant-gcd k exceeds the safe int64 range.
	ErrOverflow = errors.New("cmr: integer overflow during rank/k extraction")

	// ErrTimeout is returned when an operation's env.Environment deadline
	// expires before the call completes; it is returned in place of
	// env.ErrDeadlineExceeded (which it does not wrap).
	ErrTimeout = errors.New("cmr: time limit exceeded")

	// ErrTooLarge is an ErrInvalidInput variant returned by
	// TestComplementTotalUnimodularity when a matrix's row+column+global
	// line count would make the 2^(m+n+1) complement enumeration exceed
	// env.Environment.MaxComplementBits, rather than silently truncating
	// the enumeration or hanging on an intractable input.
	ErrTooLarge = fmt.Errorf("cmr: matrix too large for complement enumeration: %w", ErrInvalidInput)
)
