// Package builder defines the step names and recipe constants shared by the
// builder and the director.
package builder

//-----------------------------------------------------------------------------
// Step Name Constants
//   used to prefix errors with the step that received a bad value.
//-----------------------------------------------------------------------------

const (
	// StepWalls is the canonical name for the BuildWalls step.
	StepWalls = "BuildWalls"
	// StepDoors is the canonical name for the BuildDoors step.
	StepDoors = "BuildDoors"
	// StepWindows is the canonical name for the BuildWindows step.
	StepWindows = "BuildWindows"
)

//-----------------------------------------------------------------------------
// Director Recipes
//-----------------------------------------------------------------------------

const (
	// SimpleWalls, SimpleDoors and SimpleWindows describe ConstructSimpleHouse.
	SimpleWalls   = 4
	SimpleDoors   = 1
	SimpleWindows = 2

	// LuxuryWalls, LuxuryDoors and LuxuryWindows describe ConstructLuxuryHouse.
	LuxuryWalls   = 10
	LuxuryDoors   = 5
	LuxuryWindows = 8
)
