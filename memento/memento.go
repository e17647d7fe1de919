// SPDX-License-Identifier: MIT

// Package memento demonstrates the Memento pattern with a text editor and an
// undo history.
//
//   - Editor (originator) captures its state in a Memento and restores from one.
//   - Memento is opaque: callers can read its metadata but not change it.
//   - History (caretaker) keeps mementos last-in-first-out; Undo pops the most
//     recent one into the editor and reports false once nothing is left.
//
// A History can be exported as JSON and imported back, e.g. to carry undo
// state across runs of a demo.
package memento

import (
	"time"

	"github.com/google/uuid"
)

// Memento is a snapshot of an Editor.
type Memento struct {
	id        uuid.UUID
	content   string
	createdAt time.Time
}

// ID identifies the snapshot.
func (m Memento) ID() uuid.UUID { return m.id }

// Content is the saved editor text.
func (m Memento) Content() string { return m.content }

// CreatedAt is when the snapshot was taken.
func (m Memento) CreatedAt() time.Time { return m.createdAt }

// Editor is the originator.
type Editor struct {
	Content string
}

// Save captures the current content.
func (e *Editor) Save() Memento {
	return Memento{id: uuid.New(), content: e.Content, createdAt: time.Now().UTC()}
}

// Restore overwrites the content with the snapshot's.
func (e *Editor) Restore(m Memento) {
	e.Content = m.content
}

// History is the caretaker. The zero value is an empty history.
type History struct {
	stack []Memento
}

// Save pushes a snapshot of e.
func (h *History) Save(e *Editor) {
	h.stack = append(h.stack, e.Save())
}

// Undo pops the most recent snapshot into e. It returns false, leaving e
// untouched, when the history is empty.
func (h *History) Undo(e *Editor) bool {
	if len(h.stack) == 0 {
		return false
	}
	last := len(h.stack) - 1
	m := h.stack[last]
	h.stack[last] = Memento{}
	h.stack = h.stack[:last]
	e.Restore(m)
	return true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.stack) }

// Peek returns the snapshot Undo would restore next.
func (h *History) Peek() (Memento, bool) {
	if len(h.stack) == 0 {
		return Memento{}, false
	}
	return h.stack[len(h.stack)-1], true
}
