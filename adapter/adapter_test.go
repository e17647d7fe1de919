package adapter_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/patterns/adapter"
)

func TestAdapter_Request(t *testing.T) {
	var target adapter.Target = adapter.New(adapter.Adaptee{})
	assert.Equal(t, "This is 'Specific request from Adaptee'", target.Request())
}

func TestTargetFunc(t *testing.T) {
	a := adapter.Adaptee{}
	var target adapter.Target = adapter.TargetFunc(a.SpecificRequest)
	assert.Equal(t, "Specific request from Adaptee", target.Request())
}

func ExampleAdapter_Request() {
	var target adapter.Target = adapter.New(adapter.Adaptee{})
	fmt.Println(target.Request())
	// Output: This is 'Specific request from Adaptee'
}
