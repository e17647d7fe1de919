package singleton_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/patterns/internal/narrate"
	"github.com/katalvlaran/patterns/singleton"
)

func TestInstance_ReturnsSamePointer(t *testing.T) {
	s1 := singleton.Instance()
	s2 := singleton.Instance()

	require.NotNil(t, s1)
	assert.Same(t, s1, s2)
	assert.Equal(t, s1.ID(), s2.ID())
	assert.Equal(t, int64(1), singleton.Constructions())
}

func TestInstance_ConcurrentCallers(t *testing.T) {
	defer goleak.VerifyNone(t)

	const callers = 64
	got := make([]*singleton.Singleton, callers)

	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			got[i] = singleton.Instance()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	want := singleton.Instance()
	for i, s := range got {
		require.Same(t, want, s, "caller %d saw a different instance", i)
	}
	assert.Equal(t, int64(1), singleton.Constructions())
}

func TestDoSomething(t *testing.T) {
	var buf bytes.Buffer
	singleton.Instance().DoSomething(narrate.New(&buf))
	assert.Equal(t, "Singleton instance is doing something!\n", buf.String())
}
