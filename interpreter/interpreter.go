// SPDX-License-Identifier: MIT

// Package interpreter demonstrates the Interpreter pattern with a tiny
// arithmetic language of integers, addition and subtraction.
//
// Grammar:
//
//	expr := term { ("+" | "-") term }
//	term := integer | "(" expr ")"
//
// Number is the terminal expression; Add and Subtract are non-terminals that
// combine two sub-expressions. Parse builds the tree from source text,
// folding operators left to right so "10 - 3 - 2" means "(10 - 3) - 2".
//
// Example:
//
//	e, err := interpreter.Parse("5 + (10 - 3)")
//	// e.String() == "(5 + (10 - 3))", e.Interpret() == 12
package interpreter

import "strconv"

// Expression is any node of the tree.
type Expression interface {
	Interpret() int
	String() string
}

// Number is a literal integer.
type Number int

func (n Number) Interpret() int { return int(n) }
func (n Number) String() string { return strconv.Itoa(int(n)) }

// Add is Left + Right.
type Add struct {
	Left, Right Expression
}

func (a Add) Interpret() int { return a.Left.Interpret() + a.Right.Interpret() }
func (a Add) String() string { return "(" + a.Left.String() + " + " + a.Right.String() + ")" }

// Subtract is Left - Right.
type Subtract struct {
	Left, Right Expression
}

func (s Subtract) Interpret() int { return s.Left.Interpret() - s.Right.Interpret() }
func (s Subtract) String() string { return "(" + s.Left.String() + " - " + s.Right.String() + ")" }
