// SPDX-License-Identifier: MIT

// Package prototype demonstrates the Prototype pattern: new objects are made
// by copying an existing one and adjusting the copy.
//
// Shapes implement Prototype[Shape]. A Registry keeps named templates and
// hands out fresh copies, so callers never see the stored originals.
package prototype

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownPrototype indicates Registry.Spawn was asked for an unregistered name.
var ErrUnknownPrototype = errors.New("prototype: unknown prototype")

// Prototype is implemented by values that can produce independent copies of themselves.
type Prototype[T any] interface {
	Clone() T
}

// Shape is a clonable, printable figure.
type Shape interface {
	Clone() Shape
	String() string
}

var (
	_ Prototype[Shape] = (*Circle)(nil)
	_ Prototype[Shape] = (*Rectangle)(nil)
)

// Circle is a Shape with a radius.
type Circle struct {
	Color  string
	Radius int
}

// Clone returns a copy of c.
func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle with color: %s, radius: %d", c.Color, c.Radius)
}

// Rectangle is a Shape with a width and height.
type Rectangle struct {
	Color  string
	Width  int
	Height int
}

// Clone returns a copy of r.
func (r *Rectangle) Clone() Shape {
	cp := *r
	return &cp
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle with color: %s, width: %d, height: %d", r.Color, r.Width, r.Height)
}

// Registry stores named prototypes. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]Shape
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[string]Shape)}
}

// Register stores a copy of s under name, replacing any previous entry.
func (r *Registry) Register(name string, s Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shapes[name] = s.Clone()
}

// Spawn returns a fresh copy of the prototype registered under name.
func (r *Registry) Spawn(name string) (Shape, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrototype, name)
	}
	return s.Clone(), nil
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
