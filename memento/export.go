// SPDX-License-Identifier: MIT

package memento

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// ErrInvalidHistory is returned when imported history data is malformed.
var ErrInvalidHistory = errors.New("memento: history json is not valid")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type snapshotDTO struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Export encodes the history oldest-first as a JSON array.
func (h *History) Export() ([]byte, error) {
	dtos := make([]snapshotDTO, len(h.stack))
	for i, m := range h.stack {
		dtos[i] = snapshotDTO{ID: m.id, Content: m.content, CreatedAt: m.createdAt}
	}
	b, err := json.Marshal(dtos)
	if err != nil {
		return nil, fmt.Errorf("memento: export: %w", err)
	}
	return b, nil
}

// Import decodes data produced by Export. Every snapshot must carry a non-nil ID.
func Import(data []byte) (*History, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return nil, ErrInvalidHistory
	}

	var dtos []snapshotDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHistory, err)
	}

	h := &History{stack: make([]Memento, 0, len(dtos))}
	for i, d := range dtos {
		if d.ID == uuid.Nil {
			return nil, fmt.Errorf("%w: snapshot %d has no id", ErrInvalidHistory, i)
		}
		h.stack = append(h.stack, Memento{id: d.ID, content: d.Content, createdAt: d.CreatedAt})
	}
	return h, nil
}
