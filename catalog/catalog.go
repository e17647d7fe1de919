// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/internal/narrate"
)

var aliases = map[string]string{
	"chainofresponsibility": "chain",
	"cor":                   "chain",
	"factorymethod":         "factory",
	"template":              "templatemethod",
}

// All returns every demo in catalogue order. The slice is a fresh copy.
func All() []Demo {
	out := make([]Demo, len(demos))
	copy(out, demos)
	return out
}

// Names returns the canonical demo names in catalogue order.
func Names() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a demo by name or alias.
func Lookup(name string) (Demo, error) {
	key := normalize(name)
	if canon, ok := aliases[key]; ok {
		key = canon
	}
	for _, d := range demos {
		if d.Name == key {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Resolve maps names to demos, keeping their order. No names means All.
func Resolve(names ...string) ([]Demo, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Demo, 0, len(names))
	for _, name := range names {
		d, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// RunAll runs the named demos, or all of them, each under its section header
// and followed by a blank line.
func RunAll(ctx context.Context, env Env, names ...string) error {
	selected, err := Resolve(names...)
	if err != nil {
		return err
	}
	if env.Narrator == nil {
		env.Narrator = narrate.Discard()
	}
	n := env.Narrator
	log := n.Logger()

	for _, d := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("running demo", zap.String("pattern", d.Name), zap.String("category", string(d.Category)))

		n.Section(d.Title)
		if err := d.Run(ctx, env); err != nil {
			return fmt.Errorf("catalog: %s: %w", d.Name, err)
		}
		n.Blank()
	}
	return nil
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
