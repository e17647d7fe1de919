// SPDX-License-Identifier: MIT

package factory

import (
	"strings"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// Shape is the product interface of ShapeFactory.
type Shape interface {
	Draw(n *narrate.Narrator)
}

// Circle is a concrete Shape.
type Circle struct{}

// Draw narrates drawing a circle.
func (Circle) Draw(n *narrate.Narrator) { n.Say("Drawing a Circle.") }

// Square is a concrete Shape.
type Square struct{}

// Draw narrates drawing a square.
func (Square) Draw(n *narrate.Narrator) { n.Say("Drawing a Square.") }

// Rectangle is a concrete Shape.
type Rectangle struct{}

// Draw narrates drawing a rectangle.
func (Rectangle) Draw(n *narrate.Narrator) { n.Say("Drawing a Rectangle.") }

// ShapeFactory hides which concrete Shape is built for a given name.
type ShapeFactory struct{}

// GetShape returns the shape registered under kind, ignoring case.
// Empty and unknown kinds yield nil; callers must check before use.
func (ShapeFactory) GetShape(kind string) Shape {
	switch strings.ToLower(kind) {
	case "circle":
		return Circle{}
	case "square":
		return Square{}
	case "rectangle":
		return Rectangle{}
	default:
		return nil
	}
}
