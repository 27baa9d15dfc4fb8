package graphic

import "errors"

// ErrTooLarge is returned by DirectTest when the matrix exceeds
// directTestRowBound rows, beyond which exhaustive tree enumeration is not
// attempted.
var ErrTooLarge = errors.New("graphic: matrix too large for the direct test")

// ErrNoTree is returned by VerifyTernary when given a Result that never
// reached a graphic verdict (Tree is nil).
var ErrNoTree = errors.New("graphic: result carries no matched tree")
