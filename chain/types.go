// SPDX-License-Identifier: MIT

package chain

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestType classifies a support request.
type RequestType string

// Request types understood by the stock handlers.
const (
	Basic     RequestType = "Basic"
	Technical RequestType = "Technical"
	Billing   RequestType = "Billing"
)

// Request is a support ticket.
type Request struct {
	ID          uuid.UUID
	Type        RequestType
	Description string
}

// NewRequest returns a request with a fresh ID.
func NewRequest(kind RequestType, description string) Request {
	return Request{ID: uuid.New(), Type: kind, Description: description}
}

// Options configures a handler.
type Options struct {
	Logger *zap.Logger
}

// Option is a functional option for handler constructors.
type Option func(*Options)

// WithLogger attaches a diagnostic logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("chain: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}
