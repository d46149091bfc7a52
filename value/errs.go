package value

import "errors"

var (
	ErrNotScalar = errors.New("not a scalar value")
	ErrPath      = errors.New("path error")
	ErrNotFound  = errors.New("not found")
)
