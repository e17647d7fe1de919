// SPDX-License-Identifier: MIT

// Package catalog registers every pattern demonstration and runs them in
// order.
//
// Each Demo carries its name, the title used in its section header, its GoF
// category, a short markdown summary and a Run function that narrates the
// demonstration through the Env's Narrator.
//
// All returns the demos grouped creational, structural, behavioral. Lookup
// resolves a name case-insensitively, ignoring '-', '_' and spaces, so
// "Chain-of-Responsibility", "chain_of_responsibility" and "chain" all find
// the same demo.
//
// RunAll runs a selection (everything when no names are given):
//
//	Executing Observer Pattern >>>>>
//	----------------------------------------------------
//	Notified John Doe of AAPL's price change to $155.00
//	...
//	<blank line>
//
// Names are resolved before anything is printed, so a typo fails fast.
// RunAll stops at the first demo error or when ctx is cancelled.
package catalog
