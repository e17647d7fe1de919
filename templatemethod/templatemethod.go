// SPDX-License-Identifier: MIT

// Package templatemethod demonstrates the Template Method pattern: Process
// fixes the order of a data pipeline, and each Steps implementation fills in
// the format-specific stages.
//
// Stage order: ReadData, ParseData, process parsed data, save to database.
// The last two stages are shared and cannot be overridden.
package templatemethod

import "github.com/katalvlaran/patterns/internal/narrate"

// Steps supplies the format-specific stages.
type Steps interface {
	ReadData(n *narrate.Narrator)
	ParseData(n *narrate.Narrator)
}

// Process runs the template.
func Process(n *narrate.Narrator, s Steps) {
	s.ReadData(n)
	s.ParseData(n)
	processParsedData(n)
	saveData(n)
}

func processParsedData(n *narrate.Narrator) {
	n.Say("Processing parsed data...")
}

func saveData(n *narrate.Narrator) {
	n.Say("Saving data to the database...")
}

// XMLSource reads XML files.
type XMLSource struct{}

func (XMLSource) ReadData(n *narrate.Narrator)  { n.Say("Reading XML data from file...") }
func (XMLSource) ParseData(n *narrate.Narrator) { n.Say("Parsing XML data...") }

// JSONSource reads JSON files.
type JSONSource struct{}

func (JSONSource) ReadData(n *narrate.Narrator)  { n.Say("Reading JSON data from file...") }
func (JSONSource) ParseData(n *narrate.Narrator) { n.Say("Parsing JSON data...") }
