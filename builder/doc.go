// Package builder demonstrates the Builder pattern by assembling a House
// step by step.
//
// The package offers the following key components:
//
//   - House:                the product; a plain value with wall, door and window counts.
//   - HouseBuilder:         the step interface (BuildWalls, BuildDoors, BuildWindows, House).
//   - ConcreteHouseBuilder: the stock HouseBuilder; remembers the last value of each step.
//   - Director:             knows the recipes (ConstructSimpleHouse 4/1/2,
//     ConstructLuxuryHouse 10/5/8) and drives any HouseBuilder through them.
//   - Build + Option:       functional-options shortcut for one-off houses.
//
// Guarantees:
//
//   - Steps may be called in any order and repeated; the last call wins.
//   - House() never panics. Negative counts surface as errors wrapping
//     ErrNegativeCount, prefixed with the offending step (e.g. "BuildDoors: ...").
//   - Option constructors panic on negative counts, so mistakes in literals
//     fail fast at the call site.
//
// Example:
//
//	b := builder.NewHouseBuilder()
//	builder.NewDirector(b).ConstructSimpleHouse()
//	h, err := b.House()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(h) // House with 4 walls, 1 doors, and 2 windows.
package builder
