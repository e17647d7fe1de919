// SPDX-License-Identifier: MIT

// Package abstractfactory demonstrates the Abstract Factory pattern with a
// small UI toolkit offering light and dark widget families.
//
// A UIFactory creates a matching Button and TextBox. Client code receives a
// factory and never names a concrete widget type, so switching the theme is a
// one-line change at the call site (or a config value, see ForTheme).
package abstractfactory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// ErrUnknownTheme indicates ForTheme received a name with no factory.
var ErrUnknownTheme = errors.New("abstractfactory: unknown theme")

// Button is the first abstract product.
type Button interface {
	Render(n *narrate.Narrator)
}

// TextBox is the second abstract product.
type TextBox interface {
	Render(n *narrate.Narrator)
}

// UIFactory creates one family of widgets.
type UIFactory interface {
	CreateButton() Button
	CreateTextBox() TextBox
}

type lightButton struct{}

func (lightButton) Render(n *narrate.Narrator) { n.Say("Rendering a light-themed button.") }

type lightTextBox struct{}

func (lightTextBox) Render(n *narrate.Narrator) { n.Say("Rendering a light-themed textbox.") }

type darkButton struct{}

func (darkButton) Render(n *narrate.Narrator) { n.Say("Rendering a dark-themed button.") }

type darkTextBox struct{}

func (darkTextBox) Render(n *narrate.Narrator) { n.Say("Rendering a dark-themed textbox.") }

// LightThemeFactory builds light widgets.
type LightThemeFactory struct{}

// CreateButton returns a light button.
func (LightThemeFactory) CreateButton() Button { return lightButton{} }

// CreateTextBox returns a light textbox.
func (LightThemeFactory) CreateTextBox() TextBox { return lightTextBox{} }

// DarkThemeFactory builds dark widgets.
type DarkThemeFactory struct{}

// CreateButton returns a dark button.
func (DarkThemeFactory) CreateButton() Button { return darkButton{} }

// CreateTextBox returns a dark textbox.
func (DarkThemeFactory) CreateTextBox() TextBox { return darkTextBox{} }

// ForTheme resolves a theme name ("light" or "dark", any case) to its factory.
func ForTheme(name string) (UIFactory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return LightThemeFactory{}, nil
	case "dark":
		return DarkThemeFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// Client owns one widget of each kind, created by the factory it was given.
type Client struct {
	button  Button
	textBox TextBox
}

// NewClient creates the widgets through f.
func NewClient(f UIFactory) *Client {
	return &Client{
		button:  f.CreateButton(),
		textBox: f.CreateTextBox(),
	}
}

// RenderUI renders the button, then the textbox.
func (c *Client) RenderUI(n *narrate.Narrator) {
	c.button.Render(n)
	c.textBox.Render(n)
}
