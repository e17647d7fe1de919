// SPDX-License-Identifier: MIT

// Package bridge demonstrates the Bridge pattern: shapes (the abstraction)
// delegate drawing to a Renderer (the implementor), and either side can vary
// without touching the other.
package bridge

import (
	"strconv"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// Renderer is the implementor side of the bridge.
type Renderer interface {
	RenderCircle(radius float64)
	RenderSquare(side float64)
}

// RasterRenderer draws with pixels.
type RasterRenderer struct {
	n *narrate.Narrator
}

// NewRasterRenderer narrates through n.
func NewRasterRenderer(n *narrate.Narrator) *RasterRenderer {
	return &RasterRenderer{n: n}
}

// RenderCircle narrates a raster circle.
func (r *RasterRenderer) RenderCircle(radius float64) {
	r.n.Sayf("Drawing a circle of radius %s using Raster rendering.", num(radius))
}

// RenderSquare narrates a raster square.
func (r *RasterRenderer) RenderSquare(side float64) {
	r.n.Sayf("Drawing a square of side %s using Raster rendering.", num(side))
}

// VectorRenderer draws with paths.
type VectorRenderer struct {
	n *narrate.Narrator
}

// NewVectorRenderer narrates through n.
func NewVectorRenderer(n *narrate.Narrator) *VectorRenderer {
	return &VectorRenderer{n: n}
}

// RenderCircle narrates a vector circle.
func (r *VectorRenderer) RenderCircle(radius float64) {
	r.n.Sayf("Drawing a circle of radius %s using Vector rendering.", num(radius))
}

// RenderSquare narrates a vector square.
func (r *VectorRenderer) RenderSquare(side float64) {
	r.n.Sayf("Drawing a square of side %s using Vector rendering.", num(side))
}

// num prints the shortest decimal form: 5 -> "5", 2.5 -> "2.5".
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Shape is the abstraction side of the bridge.
type Shape interface {
	Draw()
	SetRenderer(r Renderer)
}

// shape holds the bridge to the implementor.
type shape struct {
	renderer Renderer
}

// SetRenderer swaps the implementor at runtime.
func (s *shape) SetRenderer(r Renderer) { s.renderer = r }

// Circle is a refined abstraction.
type Circle struct {
	shape
	radius float64
}

// NewCircle binds a circle to r.
func NewCircle(r Renderer, radius float64) *Circle {
	return &Circle{shape: shape{renderer: r}, radius: radius}
}

// Draw renders the circle through the current renderer.
func (c *Circle) Draw() { c.renderer.RenderCircle(c.radius) }

// Square is a refined abstraction.
type Square struct {
	shape
	side float64
}

// NewSquare binds a square to r.
func NewSquare(r Renderer, side float64) *Square {
	return &Square{shape: shape{renderer: r}, side: side}
}

// Draw renders the square through the current renderer.
func (s *Square) Draw() { s.renderer.RenderSquare(s.side) }
