// SPDX-License-Identifier: MIT
// Package: patterns/builder
//
// options.go: functional options for one-off houses.
//
// Contract:
//   • Options are functional (type Option func(HouseBuilder)).
//   • Option constructors VALIDATE and PANIC on negative counts.
//   • Build drives a fresh ConcreteHouseBuilder; options apply left to right,
//     so a later WithWalls overrides an earlier one.

package builder

// Option is one construction step applied by Build.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(HouseBuilder)

// WithWalls sets the wall count. Panics if n < 0.
func WithWalls(n int) Option {
	if err := validateCount(StepWalls, n); err != nil {
		panic(err.Error())
	}
	return func(b HouseBuilder) {
		b.BuildWalls(n)
	}
}

// WithDoors sets the door count. Panics if n < 0.
func WithDoors(n int) Option {
	if err := validateCount(StepDoors, n); err != nil {
		panic(err.Error())
	}
	return func(b HouseBuilder) {
		b.BuildDoors(n)
	}
}

// WithWindows sets the window count. Panics if n < 0.
func WithWindows(n int) Option {
	if err := validateCount(StepWindows, n); err != nil {
		panic(err.Error())
	}
	return func(b HouseBuilder) {
		b.BuildWindows(n)
	}
}

// Build creates a House from options. Unset parts stay at zero.
func Build(opts ...Option) (House, error) {
	b := NewHouseBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return b.House()
}
