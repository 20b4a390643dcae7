package prompt

import (
	"errors"

	"pkg.jsn.cam/persongen/internal/generator"
)

var (
	ErrInvalidCount  = errors.New("count is not an integer")
	ErrNegativeCount = generator.ErrNegativeCount
	ErrEmptyPath     = errors.New("output path is empty")
)
