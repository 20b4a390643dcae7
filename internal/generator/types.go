package generator

import "math/rand/v2"

// Record is one synthetic person.
type Record struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Salary float64 `json:"salary"`
}

// Generator produces records for one data shape
type Generator interface {
	// Init initializes the generator with a per-instance random source
	// so that no generator state is shared across the process
	Init(r *rand.Rand)

	// Next returns the next record
	Next() Record

	// Description returns a human-readable description of the records
	Description() string
}

// Progress receives a tick for every generated record.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
}
