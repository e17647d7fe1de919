// SPDX-License-Identifier: MIT

package builder

import "fmt"

// House is the product assembled by a HouseBuilder.
type House struct {
	Walls   int
	Doors   int
	Windows int
}

// String renders the house the way the demo narrates it.
func (h House) String() string {
	return fmt.Sprintf("House with %d walls, %d doors, and %d windows.", h.Walls, h.Doors, h.Windows)
}

// HouseBuilder declares the construction steps of a House.
type HouseBuilder interface {
	BuildWalls(n int)
	BuildDoors(n int)
	BuildWindows(n int)
	// House returns the assembled product, or an error if any step got a bad count.
	House() (House, error)
}

// ConcreteHouseBuilder is the stock HouseBuilder.
// The zero value is ready to use.
type ConcreteHouseBuilder struct {
	house House
}

// NewHouseBuilder returns an empty builder.
func NewHouseBuilder() *ConcreteHouseBuilder {
	return &ConcreteHouseBuilder{}
}

// BuildWalls sets the wall count.
func (b *ConcreteHouseBuilder) BuildWalls(n int) { b.house.Walls = n }

// BuildDoors sets the door count.
func (b *ConcreteHouseBuilder) BuildDoors(n int) { b.house.Doors = n }

// BuildWindows sets the window count.
func (b *ConcreteHouseBuilder) BuildWindows(n int) { b.house.Windows = n }

// House validates the counts (walls, then doors, then windows) and returns a
// copy of the product; the builder can keep going afterwards.
func (b *ConcreteHouseBuilder) House() (House, error) {
	if err := validateCount(StepWalls, b.house.Walls); err != nil {
		return House{}, err
	}
	if err := validateCount(StepDoors, b.house.Doors); err != nil {
		return House{}, err
	}
	if err := validateCount(StepWindows, b.house.Windows); err != nil {
		return House{}, err
	}
	return b.house, nil
}

// Director drives a HouseBuilder through fixed recipes.
type Director struct {
	builder HouseBuilder
}

// NewDirector binds a director to b.
func NewDirector(b HouseBuilder) *Director {
	return &Director{builder: b}
}

// ConstructSimpleHouse runs the 4 walls / 1 door / 2 windows recipe.
func (d *Director) ConstructSimpleHouse() {
	d.builder.BuildWalls(SimpleWalls)
	d.builder.BuildDoors(SimpleDoors)
	d.builder.BuildWindows(SimpleWindows)
}

// ConstructLuxuryHouse runs the 10 walls / 5 doors / 8 windows recipe.
func (d *Director) ConstructLuxuryHouse() {
	d.builder.BuildWalls(LuxuryWalls)
	d.builder.BuildDoors(LuxuryDoors)
	d.builder.BuildWindows(LuxuryWindows)
}
