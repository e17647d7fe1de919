package decorator_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/decorator"
	"github.com/katalvlaran/patterns/internal/narrate"
)

func TestDecorators_ComposeInOrder(t *testing.T) {
	var c decorator.Coffee = decorator.SimpleCoffee{}
	assert.Equal(t, "Simple Coffee", c.Description())
	assert.InDelta(t, 2.00, c.Cost(), 1e-9)

	c = decorator.Milk(c)
	assert.Equal(t, "Simple Coffee, Milk", c.Description())
	assert.InDelta(t, 2.50, c.Cost(), 1e-9)

	c = decorator.Sugar(c)
	assert.Equal(t, "Simple Coffee, Milk, Sugar", c.Description())
	assert.InDelta(t, 2.70, c.Cost(), 1e-9)
}

func TestDecorators_OrderMattersForDescription(t *testing.T) {
	c := decorator.Milk(decorator.Sugar(decorator.SimpleCoffee{}))
	assert.Equal(t, "Simple Coffee, Sugar, Milk", c.Description())
	assert.InDelta(t, 2.70, c.Cost(), 1e-9)
	assert.Equal(t, "Simple Coffee, Sugar", c.Unwrap().Description())
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	n := narrate.New(&buf)

	c := decorator.Wrap(decorator.SimpleCoffee{}, "Vanilla", 0.75)
	decorator.Describe(c, n)

	assert.Equal(t, "Simple Coffee, Vanilla - $2.75\n", buf.String())
}

func ExampleDescribe() {
	n := narrate.New(os.Stdout)

	var c decorator.Coffee = decorator.SimpleCoffee{}
	decorator.Describe(c, n)
	c = decorator.Milk(c)
	decorator.Describe(c, n)
	c = decorator.Sugar(c)
	decorator.Describe(c, n)
	// Output:
	// Simple Coffee - $2.00
	// Simple Coffee, Milk - $2.50
	// Simple Coffee, Milk, Sugar - $2.70
}
