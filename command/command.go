// SPDX-License-Identifier: MIT

// Package command demonstrates the Command pattern: a RemoteControl (the
// invoker) triggers requests packaged as Command values, without knowing
// which receiver does the work.
package command

import (
	"errors"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// ErrNoCommand indicates PressButton was called before a command was set.
var ErrNoCommand = errors.New("command: no command set")

// Command is a packaged request.
type Command interface {
	Execute()
}

// CommandFunc adapts a function to Command.
type CommandFunc func()

// Execute calls f.
func (f CommandFunc) Execute() { f() }

// Light is the receiver.
type Light struct {
	n  *narrate.Narrator
	on bool
}

// NewLight returns a switched-off light narrating through n.
func NewLight(n *narrate.Narrator) *Light {
	return &Light{n: n}
}

// On switches the light on.
func (l *Light) On() {
	l.on = true
	l.n.Say("The light is on.")
}

// Off switches the light off.
func (l *Light) Off() {
	l.on = false
	l.n.Say("The light is off.")
}

// IsOn reports the light's state.
func (l *Light) IsOn() bool { return l.on }

// LightOnCommand switches a light on.
type LightOnCommand struct{ light *Light }

// NewLightOnCommand binds the command to l.
func NewLightOnCommand(l *Light) *LightOnCommand { return &LightOnCommand{light: l} }

// Execute switches the light on.
func (c *LightOnCommand) Execute() { c.light.On() }

// LightOffCommand switches a light off.
type LightOffCommand struct{ light *Light }

// NewLightOffCommand binds the command to l.
func NewLightOffCommand(l *Light) *LightOffCommand { return &LightOffCommand{light: l} }

// Execute switches the light off.
func (c *LightOffCommand) Execute() { c.light.Off() }

// RemoteControl is the invoker. The zero value has no command.
type RemoteControl struct {
	command Command
}

// SetCommand loads the command run by PressButton.
func (r *RemoteControl) SetCommand(c Command) {
	r.command = c
}

// PressButton executes the loaded command.
func (r *RemoteControl) PressButton() error {
	if r.command == nil {
		return ErrNoCommand
	}
	r.command.Execute()
	return nil
}
