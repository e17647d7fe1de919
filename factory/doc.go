// Package factory demonstrates the Factory pattern in its two classic
// flavours: a shape factory that returns nothing for unknown names, and a
// document factory that rejects unknown names with an error.
//
// Errors (sentinel):
//
//   - ErrInvalidDocumentType: CreateDocument was asked for a type it does not know.
//
// Example:
//
//	f := factory.ShapeFactory{}
//	if s := f.GetShape("circle"); s != nil {
//	    s.Draw(n)
//	}
//
//	doc, err := factory.CreateDocument("pdf")
//	if err != nil {
//	    return err
//	}
//	doc.Open(n)
package factory
