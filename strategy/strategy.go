// SPDX-License-Identifier: MIT

// Package strategy demonstrates the Strategy pattern: a PaymentProcessor
// delegates payment to whichever PaymentStrategy is currently selected.
package strategy

import (
	"errors"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// ErrNoStrategy indicates Process was called before any strategy was set.
var ErrNoStrategy = errors.New("strategy: no payment strategy set")

// PaymentStrategy pays an amount in some way.
type PaymentStrategy interface {
	Pay(amount float64)
}

// PaymentFunc adapts a function to PaymentStrategy.
type PaymentFunc func(amount float64)

// Pay calls f.
func (f PaymentFunc) Pay(amount float64) { f(amount) }

// CreditCardPayment pays by card.
type CreditCardPayment struct{ n *narrate.Narrator }

// NewCreditCardPayment narrates through n.
func NewCreditCardPayment(n *narrate.Narrator) *CreditCardPayment {
	return &CreditCardPayment{n: n}
}

// Pay narrates "Paid <amount> using Credit Card."
func (c *CreditCardPayment) Pay(amount float64) {
	c.n.Sayf("Paid %s using Credit Card.", c.n.Money(amount))
}

// PayPalPayment pays through PayPal.
type PayPalPayment struct{ n *narrate.Narrator }

// NewPayPalPayment narrates through n.
func NewPayPalPayment(n *narrate.Narrator) *PayPalPayment {
	return &PayPalPayment{n: n}
}

// Pay narrates "Paid <amount> using PayPal."
func (p *PayPalPayment) Pay(amount float64) {
	p.n.Sayf("Paid %s using PayPal.", p.n.Money(amount))
}

// PaymentProcessor is the strategy context.
// The zero value has no strategy.
type PaymentProcessor struct {
	strategy PaymentStrategy
}

// SetStrategy selects the strategy used by subsequent Process calls.
func (p *PaymentProcessor) SetStrategy(s PaymentStrategy) {
	p.strategy = s
}

// Process pays amount with the current strategy.
func (p *PaymentProcessor) Process(amount float64) error {
	if p.strategy == nil {
		return ErrNoStrategy
	}
	p.strategy.Pay(amount)
	return nil
}
