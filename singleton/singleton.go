// SPDX-License-Identifier: MIT

package singleton

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/patterns/internal/narrate"
)

// Singleton is the one-per-process object handed out by Instance.
type Singleton struct {
	id uuid.UUID
}

var (
	instance atomic.Pointer[Singleton]
	mu       sync.Mutex
	builds   atomic.Int64
)

// Instance returns the process-wide Singleton, creating it on first use.
//
// Implementation:
//   - Stage 1: atomic load; return immediately once the instance exists.
//   - Stage 2: take the mutex and check again, because another goroutine may
//     have finished construction while we waited.
//   - Stage 3: construct and publish with an atomic store.
func Instance() *Singleton {
	if s := instance.Load(); s != nil {
		return s
	}

	mu.Lock()
	defer mu.Unlock()

	if s := instance.Load(); s != nil {
		return s
	}

	s := &Singleton{id: uuid.New()}
	builds.Add(1)
	instance.Store(s)
	return s
}

// ID returns the identifier assigned at construction.
func (s *Singleton) ID() uuid.UUID {
	return s.id
}

// DoSomething narrates a sample action performed by the instance.
func (s *Singleton) DoSomething(n *narrate.Narrator) {
	n.Say("Singleton instance is doing something!")
}

// Constructions reports how many times the instance has been built in this
// process. It is 0 before the first Instance call and 1 afterwards.
func Constructions() int64 {
	return builds.Load()
}
