// SPDX-License-Identifier: MIT

// Package adapter demonstrates the Adapter pattern: an Adaptee with an
// incompatible method is wrapped so that clients can use it as a Target.
package adapter

import "fmt"

// Target is the interface clients expect.
type Target interface {
	Request() string
}

// Adaptee offers the needed behavior under a different method name.
type Adaptee struct{}

// SpecificRequest is the incompatible method.
func (Adaptee) SpecificRequest() string {
	return "Specific request from Adaptee"
}

// Adapter makes an Adaptee usable as a Target.
type Adapter struct {
	adaptee Adaptee
}

// New wraps a.
func New(a Adaptee) *Adapter {
	return &Adapter{adaptee: a}
}

// Request forwards to the adaptee and reshapes its answer.
func (a *Adapter) Request() string {
	return fmt.Sprintf("This is '%s'", a.adaptee.SpecificRequest())
}

// TargetFunc lets an ordinary function act as a Target.
type TargetFunc func() string

// Request calls f.
func (f TargetFunc) Request() string { return f() }
