// SPDX-License-Identifier: MIT

// Package observer demonstrates the Observer pattern with a stock ticker:
// investors register with a Stock and are told about every price change.
//
// Guarantees:
//
//   - Observers are notified synchronously, in registration order.
//   - Registering the same observer twice notifies it twice; Remove drops the
//     first registration only.
//   - Removing an observer that was never registered is a no-op.
//   - An observer may Register or Remove during Update; the change takes
//     effect from the next Notify.
//   - Observers are matched by ==. A value whose dynamic type is not
//     comparable never matches, so Remove leaves it registered.
package observer

import (
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// Observer receives price updates.
type Observer interface {
	Update(symbol string, price float64)
}

// Subject manages observers.
type Subject interface {
	Register(o Observer)
	Remove(o Observer)
	Notify()
}

// Stock is the concrete subject.
type Stock struct {
	symbol    string
	price     float64
	observers []Observer
	log       *zap.Logger
}

// NewStock returns a stock quoted at price. A nil logger is replaced by a no-op one.
func NewStock(symbol string, price float64, log *zap.Logger) *Stock {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stock{symbol: symbol, price: price, log: log}
}

// Symbol returns the ticker symbol.
func (s *Stock) Symbol() string { return s.symbol }

// Price returns the current price.
func (s *Stock) Price() float64 { return s.price }

// SetPrice stores the new price and notifies every observer.
func (s *Stock) SetPrice(price float64) {
	s.price = price
	s.Notify()
}

// Register appends o to the observer list.
func (s *Stock) Register(o Observer) {
	s.observers = append(s.observers, o)
	s.log.Debug("observer registered", zap.String("symbol", s.symbol), zap.Int("observers", len(s.observers)))
}

// Remove drops the first registration of o.
func (s *Stock) Remove(o Observer) {
	for i, cur := range s.observers {
		if sameObserver(cur, o) {
			s.observers = slices.Delete(slices.Clone(s.observers), i, i+1)
			s.log.Debug("observer removed", zap.String("symbol", s.symbol), zap.Int("observers", len(s.observers)))
			return
		}
	}
}

// Notify pushes the current symbol and price to every observer.
func (s *Stock) Notify() {
	for _, o := range slices.Clone(s.observers) {
		o.Update(s.symbol, s.price)
	}
}

func sameObserver(a, b Observer) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta == nil {
		return true
	}
	return reflect.ValueOf(a).Comparable() && a == b
}

// Investor is an observer that narrates each notification.
type Investor struct {
	name string
	n    *narrate.Narrator
}

// NewInvestor returns an investor narrating through n.
func NewInvestor(name string, n *narrate.Narrator) *Investor {
	return &Investor{name: name, n: n}
}

// Name returns the investor's name.
func (i *Investor) Name() string { return i.name }

// Update narrates "Notified <name> of <symbol>'s price change to <price>".
func (i *Investor) Update(symbol string, price float64) {
	i.n.Sayf("Notified %s of %s's price change to %s", i.name, symbol, i.n.Money(price))
}
