// Package patterns is a runnable catalogue of the classic design patterns,
// each one a small, self-contained demonstration that narrates what it does.
//
// 🚀 What is in here?
//
//	Eighteen patterns, one package each:
//		• Creational: singleton, factory, abstractfactory, builder, prototype
//		• Structural: adapter, bridge, composite, decorator, facade
//		• Behavioral: observer, strategy, command, iterator, chain,
//		  templatemethod, memento, interpreter
//
// ✨ How the pieces fit
//
//   - Every demo speaks through internal/narrate: one call, one line, with
//     locale-aware money formatting and a zap logger kept off the narration stream.
//   - catalog registers the demos in GoF order and runs any selection of them,
//     each under an "Executing <Pattern> Pattern >>>>>" header.
//   - cmd/patterns is the CLI: run, list, describe and eval, configured from
//     YAML or TOML.
//
// Quick start:
//
//	go run ./cmd/patterns                       # every demo
//	go run ./cmd/patterns run observer decorator
//	go run ./cmd/patterns describe chain-of-responsibility
//	go run ./cmd/patterns eval "5 + (10 - 3)"
//
// Packages never share state; each demo can be read, run and tested on its own.
package patterns
