package factory_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/patterns/factory"
	"github.com/katalvlaran/patterns/internal/narrate"
)

func ExampleShapeFactory_GetShape() {
	n := narrate.New(os.Stdout)
	f := factory.ShapeFactory{}

	for _, kind := range []string{"circle", "square", "rectangle", "hexagon"} {
		if s := f.GetShape(kind); s != nil {
			s.Draw(n)
		}
	}
	// Output:
	// Drawing a Circle.
	// Drawing a Square.
	// Drawing a Rectangle.
}

func ExampleCreateDocument() {
	n := narrate.New(os.Stdout)

	for _, kind := range []string{"word", "pdf", "excel", "txt"} {
		doc, err := factory.CreateDocument(kind)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		doc.Open(n)
	}
	// Output:
	// Opening Word document.
	// Opening PDF document.
	// Opening Excel document.
	// error: factory: invalid document type: "txt"
}
