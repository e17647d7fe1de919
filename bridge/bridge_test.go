package bridge_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/bridge"
	"github.com/katalvlaran/patterns/internal/narrate"
)

func TestShapes_DelegateToRenderer(t *testing.T) {
	var buf bytes.Buffer
	n := narrate.New(&buf)

	shapes := []bridge.Shape{
		bridge.NewCircle(bridge.NewRasterRenderer(n), 5),
		bridge.NewSquare(bridge.NewVectorRenderer(n), 2.5),
	}
	for _, s := range shapes {
		s.Draw()
	}

	want := "Drawing a circle of radius 5 using Raster rendering.\n" +
		"Drawing a square of side 2.5 using Vector rendering.\n"
	assert.Equal(t, want, buf.String())
}

func TestSetRenderer_SwapsImplementor(t *testing.T) {
	var buf bytes.Buffer
	n := narrate.New(&buf)

	c := bridge.NewCircle(bridge.NewRasterRenderer(n), 3)
	c.Draw()
	c.SetRenderer(bridge.NewVectorRenderer(n))
	c.Draw()

	want := "Drawing a circle of radius 3 using Raster rendering.\n" +
		"Drawing a circle of radius 3 using Vector rendering.\n"
	assert.Equal(t, want, buf.String())
}

func ExampleNewCircle() {
	n := narrate.New(os.Stdout)
	raster := bridge.NewRasterRenderer(n)
	vector := bridge.NewVectorRenderer(n)

	bridge.NewCircle(raster, 5).Draw()
	bridge.NewSquare(raster, 4).Draw()
	bridge.NewCircle(vector, 5).Draw()
	bridge.NewSquare(vector, 4).Draw()
	// Output:
	// Drawing a circle of radius 5 using Raster rendering.
	// Drawing a square of side 4 using Raster rendering.
	// Drawing a circle of radius 5 using Vector rendering.
	// Drawing a square of side 4 using Vector rendering.
}
