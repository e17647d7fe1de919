// SPDX-License-Identifier: MIT

// Package decorator demonstrates the Decorator pattern: condiments wrap a
// Coffee and extend both its description and its cost, in the order they
// are applied.
//
//	c := decorator.Sugar(decorator.Milk(decorator.SimpleCoffee{}))
//	c.Description() // "Simple Coffee, Milk, Sugar"
//	c.Cost()        // 2.70
package decorator

import "github.com/katalvlaran/patterns/internal/narrate"

// Prices of the base coffee and the condiments.
const (
	BaseCost  = 2.00
	MilkCost  = 0.50
	SugarCost = 0.20
)

// Coffee is the component interface.
type Coffee interface {
	Description() string
	Cost() float64
}

// SimpleCoffee is the undecorated component.
type SimpleCoffee struct{}

// Description returns "Simple Coffee".
func (SimpleCoffee) Description() string { return "Simple Coffee" }

// Cost returns BaseCost.
func (SimpleCoffee) Cost() float64 { return BaseCost }

// Condiment is a decorator adding a named ingredient with a price.
type Condiment struct {
	inner Coffee
	name  string
	price float64
}

// Wrap decorates c with an ingredient called name costing price.
func Wrap(c Coffee, name string, price float64) *Condiment {
	return &Condiment{inner: c, name: name, price: price}
}

// Milk decorates c with milk.
func Milk(c Coffee) *Condiment { return Wrap(c, "Milk", MilkCost) }

// Sugar decorates c with sugar.
func Sugar(c Coffee) *Condiment { return Wrap(c, "Sugar", SugarCost) }

// Description appends ", <name>" to the wrapped description.
func (d *Condiment) Description() string {
	return d.inner.Description() + ", " + d.name
}

// Cost adds the condiment price to the wrapped cost.
func (d *Condiment) Cost() float64 {
	return d.inner.Cost() + d.price
}

// Unwrap returns the decorated coffee.
func (d *Condiment) Unwrap() Coffee { return d.inner }

// Describe narrates "<description> - <cost>", e.g. "Simple Coffee, Milk - $2.50".
func Describe(c Coffee, n *narrate.Narrator) {
	n.Sayf("%s - %s", c.Description(), n.Money(c.Cost()))
}
