package observer_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	zapobserver "go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/patterns/internal/narrate"
	"github.com/katalvlaran/patterns/observer"
)

// recorder remembers every update it receives.
type recorder struct {
	prices []float64
}

func (r *recorder) Update(_ string, price float64) {
	r.prices = append(r.prices, price)
}

func TestSetPrice_NotifiesInRegistrationOrder(t *testing.T) {
	var buf bytes.Buffer
	n := narrate.New(&buf)

	stock := observer.NewStock("AAPL", 150, nil)
	stock.Register(observer.NewInvestor("John Doe", n))
	stock.Register(observer.NewInvestor("Jane Smith", n))

	stock.SetPrice(155)

	want := "Notified John Doe of AAPL's price change to $155.00\n" +
		"Notified Jane Smith of AAPL's price change to $155.00\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 155.0, stock.Price())
	assert.Equal(t, "AAPL", stock.Symbol())
}

func TestRemove_StopsNotifications(t *testing.T) {
	stock := observer.NewStock("AAPL", 150, nil)
	kept, removed := &recorder{}, &recorder{}
	stock.Register(removed)
	stock.Register(kept)

	stock.SetPrice(155)
	stock.Remove(removed)
	stock.SetPrice(160)

	assert.Equal(t, []float64{155}, removed.prices)
	assert.Equal(t, []float64{155, 160}, kept.prices)
}

func TestRemove_UnregisteredIsNoop(t *testing.T) {
	stock := observer.NewStock("MSFT", 300, nil)
	r := &recorder{}
	stock.Register(r)

	stock.Remove(&recorder{})
	stock.Notify()

	assert.Equal(t, []float64{300}, r.prices)
}

func TestRegisterTwice_RemoveDropsOne(t *testing.T) {
	stock := observer.NewStock("GOOG", 100, nil)
	r := &recorder{}
	stock.Register(r)
	stock.Register(r)

	stock.SetPrice(101)
	stock.Remove(r)
	stock.SetPrice(102)

	assert.Equal(t, []float64{101, 101, 102}, r.prices)
}

// leaver unregisters itself on its first update.
type leaver struct {
	stock *observer.Stock
	hits  int
}

func (l *leaver) Update(string, float64) {
	l.hits++
	l.stock.Remove(l)
}

func TestNotify_ObserverRemovingItselfDuringUpdate(t *testing.T) {
	stock := observer.NewStock("AAPL", 1, nil)
	first := &leaver{stock: stock}
	second, third := &recorder{}, &recorder{}
	stock.Register(first)
	stock.Register(second)
	stock.Register(third)

	stock.SetPrice(2)
	assert.Equal(t, 1, first.hits)
	assert.Equal(t, []float64{2}, second.prices)
	assert.Equal(t, []float64{2}, third.prices)

	stock.SetPrice(3)
	assert.Equal(t, 1, first.hits)
	assert.Equal(t, []float64{2, 3}, second.prices)
	assert.Equal(t, []float64{2, 3}, third.prices)
}

// history is a value observer whose type is not comparable.
type history struct {
	seen []float64
}

func (history) Update(string, float64) {}

func TestRemove_NonComparableObserverDoesNotPanic(t *testing.T) {
	stock := observer.NewStock("AAPL", 1, nil)
	r := &recorder{}
	stock.Register(history{seen: []float64{1}})
	stock.Register(r)

	require.NotPanics(t, func() { stock.Remove(history{seen: []float64{1}}) })
	stock.Remove(r)
	stock.SetPrice(2)
	assert.Empty(t, r.prices)
}

func TestStock_LogsRegistrations(t *testing.T) {
	core, logs := zapobserver.New(zap.DebugLevel)
	stock := observer.NewStock("AAPL", 150, zap.New(core))
	r := &recorder{}

	stock.Register(r)
	stock.Remove(r)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "observer registered", entries[0].Message)
	assert.Equal(t, "observer removed", entries[1].Message)
	assert.Equal(t, "AAPL", entries[1].ContextMap()["symbol"])
}

func ExampleStock_SetPrice() {
	n := narrate.New(os.Stdout)
	stock := observer.NewStock("AAPL", 150, nil)
	john := observer.NewInvestor("John Doe", n)
	jane := observer.NewInvestor("Jane Smith", n)

	stock.Register(john)
	stock.Register(jane)
	stock.SetPrice(155)
	stock.Remove(john)
	stock.SetPrice(165)
	// Output:
	// Notified John Doe of AAPL's price change to $155.00
	// Notified Jane Smith of AAPL's price change to $155.00
	// Notified Jane Smith of AAPL's price change to $165.00
}
