package camion

import "errors"

// ErrPathNotInSupport is returned when a supplied column path names a
// (row, column) pair that is not a nonzero entry of the support matrix.
var ErrPathNotInSupport = errors.New("camion: path references an entry absent from the support matrix")
