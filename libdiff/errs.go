package libdiff

import "errors"

var (
	ErrBadChange = errors.New("bad change")
	ErrConflict  = errors.New("patch conflict")
)
