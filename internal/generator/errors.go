package generator

import "errors"

var (
	ErrNegativeCount = errors.New("record count must not be negative")

	// Record validation errors
	ErrAgeOutOfRange    = errors.New("age out of range")
	ErrSalaryOutOfRange = errors.New("salary out of range")
	ErrSalaryPrecision  = errors.New("salary has more than 2 decimal places")
)
