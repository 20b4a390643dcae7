package generator

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	MinAge = 3
	MaxAge = 17

	MinSalary = 50.0
	MaxSalary = 5000.0
)

// PersonGenerator generates people with a fake name, an age and a salary
type PersonGenerator struct {
	faker *gofakeit.Faker
}

func (g *PersonGenerator) Init(r *rand.Rand) {
	// the generator is confined to one goroutine, no locking needed
	g.faker = gofakeit.NewFaker(r, false)
}

func (g *PersonGenerator) Next() Record {
	return Record{
		Name:   g.faker.Name(),
		Age:    g.faker.IntRange(MinAge, MaxAge),
		Salary: RoundSalary(g.faker.Float64Range(MinSalary, MaxSalary)),
	}
}

func (g *PersonGenerator) Description() string {
	return "People: {name, age 3-17, salary 50-5000}"
}

// RoundSalary rounds v to 2 decimal places, halves away from zero.
func RoundSalary(v float64) float64 {
	return math.Round(v*100) / 100
}

// Validate reports whether r is within the bounds PersonGenerator guarantees.
func (r Record) Validate() error {
	if r.Age < MinAge || r.Age > MaxAge {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrAgeOutOfRange, r.Age, MinAge, MaxAge)
	}
	if r.Salary < MinSalary || r.Salary > MaxSalary {
		return fmt.Errorf("%w: %.2f not in [%.0f, %.0f]", ErrSalaryOutOfRange, r.Salary, MinSalary, MaxSalary)
	}
	if RoundSalary(r.Salary) != r.Salary {
		return fmt.Errorf("%w: %v", ErrSalaryPrecision, r.Salary)
	}

	return nil
}
