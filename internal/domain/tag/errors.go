package tag

import "errors"

var (
	ErrNotFound     = errors.New("tag not found")
	ErrInvalidColor = errors.New("color is not a valid hex value")
)
