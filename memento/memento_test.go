package memento_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patterns/memento"
)

func TestUndo_RestoresMostRecentFirst(t *testing.T) {
	e := &memento.Editor{}
	var h memento.History

	e.Content = "First"
	h.Save(e)
	e.Content = "Second"
	h.Save(e)
	e.Content = "Third"

	require.True(t, h.Undo(e))
	assert.Equal(t, "Second", e.Content)
	assert.Equal(t, 1, h.Len())

	require.True(t, h.Undo(e))
	assert.Equal(t, "First", e.Content)
	assert.Equal(t, 0, h.Len())
}

func TestUndo_ExhaustedLeavesEditorUntouched(t *testing.T) {
	e := &memento.Editor{Content: "draft"}
	var h memento.History

	require.False(t, h.Undo(e))
	assert.Equal(t, "draft", e.Content)

	h.Save(e)
	e.Content = "edited"
	require.True(t, h.Undo(e))
	require.False(t, h.Undo(e))
	assert.Equal(t, "draft", e.Content)
}

func TestMemento_IsASnapshot(t *testing.T) {
	e := &memento.Editor{Content: "v1"}
	m := e.Save()
	e.Content = "v2"

	assert.Equal(t, "v1", m.Content())
	assert.False(t, m.CreatedAt().IsZero())
	assert.NotEqual(t, e.Save().ID(), m.ID())

	e.Restore(m)
	assert.Equal(t, "v1", e.Content)
}

func TestPeek(t *testing.T) {
	var h memento.History
	_, ok := h.Peek()
	require.False(t, ok)

	h.Save(&memento.Editor{Content: "a"})
	h.Save(&memento.Editor{Content: "b"})
	m, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", m.Content())
	assert.Equal(t, 2, h.Len())
}

func TestExportImport(t *testing.T) {
	var h memento.History
	h.Save(&memento.Editor{Content: "one"})
	h.Save(&memento.Editor{Content: "two"})
	top, _ := h.Peek()

	data, err := h.Export()
	require.NoError(t, err)

	restored, err := memento.Import(data)
	require.NoError(t, err)
	require.Equal(t, 2, restored.Len())

	got, _ := restored.Peek()
	assert.Equal(t, top.ID(), got.ID())
	assert.True(t, top.CreatedAt().Equal(got.CreatedAt()))

	e := &memento.Editor{Content: "three"}
	require.True(t, restored.Undo(e))
	assert.Equal(t, "two", e.Content)
	require.True(t, restored.Undo(e))
	assert.Equal(t, "one", e.Content)
}

func TestImport_Invalid(t *testing.T) {
	inputs := []string{
		`{not json`,
		`{"id":"x"}`,
		`[{"id":"not-a-uuid","content":"a"}]`,
		`[{"content":"missing id"}]`,
	}
	for _, in := range inputs {
		_, err := memento.Import([]byte(in))
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, memento.ErrInvalidHistory), in)
	}
}

func ExampleHistory_Undo() {
	e := &memento.Editor{}
	var h memento.History

	e.Content = "State #1"
	h.Save(e)
	e.Content = "State #2"
	h.Save(e)
	e.Content = "State #3"
	fmt.Println("Current:", e.Content)

	for h.Undo(e) {
		fmt.Println("Undo:", e.Content)
	}
	fmt.Println("Nothing left to undo")
	// Output:
	// Current: State #3
	// Undo: State #2
	// Undo: State #1
	// Nothing left to undo
}
