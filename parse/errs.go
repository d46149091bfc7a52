package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("parse error")
	ErrKeyType = fmt.Errorf("%w: mapping key is not a string", ErrParse)
	ErrType    = fmt.Errorf("%w: unsupported type", ErrParse)
)
