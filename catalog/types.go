// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"errors"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// ErrUnknownPattern is wrapped when a name matches no demo.
var ErrUnknownPattern = errors.New("catalog: unknown pattern")

// Category is the GoF family a pattern belongs to.
type Category string

const (
	Creational Category = "creational"
	Structural Category = "structural"
	Behavioral Category = "behavioral"
)

// Env is what a demo runs against.
type Env struct {
	// Narrator receives every line. Nil means discard.
	Narrator *narrate.Narrator

	// Theme picks the widget family of the abstract factory demo
	// ("light" or "dark"). Empty means light.
	Theme string
}

func (e Env) narrator() *narrate.Narrator {
	if e.Narrator == nil {
		return narrate.Discard()
	}
	return e.Narrator
}

// Demo is one runnable pattern demonstration.
type Demo struct {
	Name     string
	Title    string
	Category Category
	Summary  string
	Run      func(ctx context.Context, env Env) error
}
