// Package builder provides validation helpers shared by House() and the
// functional options.
package builder

// validateCount ensures that the count supplied to step is ≥ 0.
// Returns "<Step>: got <n>: builder: count must be non-negative" otherwise.
//
// Complexity: O(1) time and space.
func validateCount(step string, n int) error {
	if n < 0 {
		return stepErrorf(step, ErrNegativeCount, "got %d", n)
	}

	return nil
}
