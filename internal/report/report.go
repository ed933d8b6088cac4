package report

import (
	"fmt"
	"io"

	"github.com/initify/runsum/internal/mathutil"
)

// FactorialInput is the argument whose factorial closes the report.
const FactorialInput = 5

// Numbers returns the sequence summed by the report loop.
func Numbers() []int {
	return []int{1, 2, 3, 4, 5}
}

// Write prints each number with its running sum, then the factorial line.
func Write(w io.Writer) error {
	nums := Numbers()
	for i, sum := range mathutil.PrefixSums(nums...) {
		if _, err := fmt.Fprintf(w, "Current number: %d\nRunning sum: %d\n", nums[i], sum); err != nil {
			return fmt.Errorf("write running sum: %w", err)
		}
	}
	fact := mathutil.Factorial(FactorialInput)
	if _, err := fmt.Fprintf(w, "Factorial of %d: %d\n", FactorialInput, fact); err != nil {
		return fmt.Errorf("write factorial: %w", err)
	}
	return nil
}
