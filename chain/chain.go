// SPDX-License-Identifier: MIT

package chain

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// Handler is one link of the chain.
type Handler interface {
	// SetNext links h after the receiver and returns h.
	SetNext(h Handler) Handler
	// Handle processes or forwards req and reports whether any link handled it.
	Handle(req Request) bool
}

// SupportHandler accepts exactly one RequestType.
type SupportHandler struct {
	name  string
	kind  RequestType
	label string
	n     *narrate.Narrator
	log   *zap.Logger
	next  Handler
}

// NewHandler builds a handler named name that accepts kind. When handling it
// narrates "<name>: Handling <label> support request - <description>".
func NewHandler(name string, kind RequestType, label string, n *narrate.Narrator, opts ...Option) *SupportHandler {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SupportHandler{name: name, kind: kind, label: label, n: n, log: cfg.Logger}
}

// NewBasicSupportHandler accepts Basic requests.
func NewBasicSupportHandler(n *narrate.Narrator, opts ...Option) *SupportHandler {
	return NewHandler("BasicSupportHandler", Basic, "basic", n, opts...)
}

// NewTechnicalSupportHandler accepts Technical requests.
func NewTechnicalSupportHandler(n *narrate.Narrator, opts ...Option) *SupportHandler {
	return NewHandler("TechnicalSupportHandler", Technical, "technical", n, opts...)
}

// NewBillingSupportHandler accepts Billing requests.
func NewBillingSupportHandler(n *narrate.Narrator, opts ...Option) *SupportHandler {
	return NewHandler("BillingSupportHandler", Billing, "billing", n, opts...)
}

// Name returns the handler name.
func (h *SupportHandler) Name() string { return h.name }

// SetNext links next after h and returns next.
func (h *SupportHandler) SetNext(next Handler) Handler {
	h.next = next
	return next
}

// Handle accepts req if its type matches, otherwise forwards it. A request
// reaching the end of the chain unhandled is dropped and Handle returns false.
func (h *SupportHandler) Handle(req Request) bool {
	if req.Type == h.kind {
		h.n.Sayf("%s: Handling %s support request - %s", h.name, h.label, req.Description)
		return true
	}
	if h.next == nil {
		h.log.Debug("request dropped",
			zap.String("handler", h.name),
			zap.Stringer("request_id", req.ID),
			zap.String("type", string(req.Type)))
		return false
	}
	h.log.Debug("request forwarded",
		zap.String("handler", h.name),
		zap.Stringer("request_id", req.ID),
		zap.String("type", string(req.Type)))
	return h.next.Handle(req)
}

// Build links handlers in order and returns the head, or nil for no handlers.
func Build(handlers ...Handler) Handler {
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i+1 < len(handlers); i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return handlers[0]
}
