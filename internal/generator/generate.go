package generator

import "fmt"

// Generate returns exactly n records from g, in generation order.
// g must already be initialized. p may be nil.
func Generate(g Generator, n int, p Progress) ([]Record, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	// non-nil so that zero records encode as []
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.Next())

		if p != nil {
			if err := p.Add(1); err != nil {
				return nil, fmt.Errorf("progress: %w", err)
			}
		}
	}

	return records, nil
}
