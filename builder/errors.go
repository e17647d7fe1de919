// SPDX-License-Identifier: MIT
// Package: patterns/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (the step name and the bad value) is attached with %w.
//   • House() never panics; option constructors (WithX) do.

package builder

import (
	"errors"
	"fmt"
)

// ErrNegativeCount indicates that a build step received a count below zero.
// Usage: if errors.Is(err, ErrNegativeCount) { /* fix the recipe */ }.
var ErrNegativeCount = errors.New("builder: count must be non-negative")

// stepErrorf wraps err with the given step context.
// It returns an error of the form "<Step>: <formatted message>: <err>".
func stepErrorf(step string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", step, inner, err)
}
