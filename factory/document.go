// SPDX-License-Identifier: MIT

package factory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// ErrInvalidDocumentType indicates CreateDocument received an unknown type.
var ErrInvalidDocumentType = errors.New("factory: invalid document type")

// Document is the product interface of CreateDocument.
type Document interface {
	Open(n *narrate.Narrator)
}

// WordDocument opens as a Word file.
type WordDocument struct{}

// Open narrates opening the document.
func (WordDocument) Open(n *narrate.Narrator) { n.Say("Opening Word document.") }

// PdfDocument opens as a PDF file.
type PdfDocument struct{}

// Open narrates opening the document.
func (PdfDocument) Open(n *narrate.Narrator) { n.Say("Opening PDF document.") }

// ExcelDocument opens as an Excel file.
type ExcelDocument struct{}

// Open narrates opening the document.
func (ExcelDocument) Open(n *narrate.Narrator) { n.Say("Opening Excel document.") }

// CreateDocument builds the document registered under kind, ignoring case.
// Unknown kinds return an error wrapping ErrInvalidDocumentType.
func CreateDocument(kind string) (Document, error) {
	switch strings.ToLower(kind) {
	case "word":
		return WordDocument{}, nil
	case "pdf":
		return PdfDocument{}, nil
	case "excel":
		return ExcelDocument{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDocumentType, kind)
	}
}
