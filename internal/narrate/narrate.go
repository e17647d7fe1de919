// SPDX-License-Identifier: MIT
//
// Package narrate is the console every pattern demo speaks through.
//
// A Narrator bundles three things a demo needs:
//   - the writer that receives narration lines (stdout in the CLI, a buffer in tests);
//   - a locale-aware money formatter (golang.org/x/text/message);
//   - a diagnostic *zap.Logger, kept apart from the narration stream.
//
// One call writes one line. Headers stay uncolored unless WithHeaderStyle is given.
package narrate

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RuleWidth is the width of the dash rule printed under every section header.
const RuleWidth = 52

// DefaultSymbol is the currency symbol used when WithSymbol is not given.
const DefaultSymbol = "$"

// Narrator writes demonstration lines to an io.Writer.
// It is not safe for concurrent use; demos narrate from one goroutine.
type Narrator struct {
	out     io.Writer
	printer *message.Printer
	symbol  string
	log     *zap.Logger
	header  *lipgloss.Style
}

// Option configures a Narrator.
type Option func(*Narrator)

// WithLocale selects the locale used for number grouping in Money.
func WithLocale(tag language.Tag) Option {
	return func(n *Narrator) {
		n.printer = message.NewPrinter(tag)
	}
}

// WithSymbol overrides the currency symbol. Panics on an empty symbol.
func WithSymbol(symbol string) Option {
	if strings.TrimSpace(symbol) == "" {
		panic("narrate: WithSymbol(\"\")")
	}
	return func(n *Narrator) {
		n.symbol = symbol
	}
}

// WithLogger attaches a diagnostic logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("narrate: WithLogger(nil)")
	}
	return func(n *Narrator) {
		n.log = l
	}
}

// WithHeaderStyle renders section titles through a lipgloss style.
func WithHeaderStyle(style lipgloss.Style) Option {
	return func(n *Narrator) {
		n.header = &style
	}
}

// New returns a Narrator writing to out. Defaults: en-US grouping, "$",
// a no-op logger and unstyled headers.
func New(out io.Writer, opts ...Option) *Narrator {
	if out == nil {
		out = io.Discard
	}
	n := &Narrator{
		out:     out,
		printer: message.NewPrinter(language.AmericanEnglish),
		symbol:  DefaultSymbol,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Discard returns a Narrator that drops every line.
func Discard() *Narrator {
	return New(io.Discard)
}

// Writer exposes the underlying narration writer.
func (n *Narrator) Writer() io.Writer {
	return n.out
}

// Logger returns the diagnostic logger; never nil.
func (n *Narrator) Logger() *zap.Logger {
	return n.log
}

// Say writes its operands followed by a newline, like fmt.Println.
func (n *Narrator) Say(a ...any) {
	_, _ = fmt.Fprintln(n.out, a...)
}

// Sayf writes a formatted line; the trailing newline is added here.
func (n *Narrator) Sayf(format string, args ...any) {
	_, _ = fmt.Fprintf(n.out, format+"\n", args...)
}

// Blank writes an empty line.
func (n *Narrator) Blank() {
	_, _ = io.WriteString(n.out, "\n")
}

// Section writes the header that precedes every demo:
//
//	Executing Observer Pattern >>>>>
//	----------------------------------------------------
func (n *Narrator) Section(title string) {
	line := fmt.Sprintf("Executing %s Pattern >>>>>", title)
	if n.header != nil {
		line = n.header.Render(line)
	}
	n.Say(line)
	n.Say(strings.Repeat("-", RuleWidth))
}

// Money formats amount as a currency value with exactly two fraction digits,
// grouped according to the narrator's locale: 1250 -> "$1,250.00" for en-US.
func (n *Narrator) Money(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + n.symbol + n.printer.Sprintf("%.2f", amount)
}
