package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundSalary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{50, 50},
		{5000, 5000},
		{123.454, 123.45},
		{123.456, 123.46},
		{4999.999, 5000},
		{50.001, 50},
		{1234.5, 1234.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundSalary(tt.in), "RoundSalary(%v)", tt.in)
	}
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		record  Record
		wantErr error
	}{
		{"lower bounds", Record{Name: "a", Age: 3, Salary: 50}, nil},
		{"upper bounds", Record{Name: "a", Age: 17, Salary: 5000}, nil},
		{"two decimals", Record{Name: "a", Age: 10, Salary: 1234.56}, nil},
		{"age too low", Record{Age: 2, Salary: 100}, ErrAgeOutOfRange},
		{"age too high", Record{Age: 18, Salary: 100}, ErrAgeOutOfRange},
		{"salary too low", Record{Age: 10, Salary: 49.99}, ErrSalaryOutOfRange},
		{"salary too high", Record{Age: 10, Salary: 5000.01}, ErrSalaryOutOfRange},
		{"three decimals", Record{Age: 10, Salary: 100.123}, ErrSalaryPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.record.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPersonGenerator_Description(t *testing.T) {
	t.Parallel()

	g := &PersonGenerator{}
	assert.NotEmpty(t, g.Description())
}
