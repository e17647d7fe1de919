package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/patterns/builder"
)

// BuilderSuite exercises the director recipes and the builder validation.
type BuilderSuite struct {
	suite.Suite
	b *builder.ConcreteHouseBuilder
}

func (s *BuilderSuite) SetupTest() {
	s.b = builder.NewHouseBuilder()
}

// TestSimpleHouse verifies the 4/1/2 recipe.
func (s *BuilderSuite) TestSimpleHouse() {
	builder.NewDirector(s.b).ConstructSimpleHouse()

	got, err := s.b.House()
	require.NoError(s.T(), err)
	if diff := cmp.Diff(builder.House{Walls: 4, Doors: 1, Windows: 2}, got); diff != "" {
		s.T().Fatalf("simple house mismatch (-want +got):\n%s", diff)
	}
	require.Equal(s.T(), "House with 4 walls, 1 doors, and 2 windows.", got.String())
}

// TestLuxuryHouse verifies the 10/5/8 recipe.
func (s *BuilderSuite) TestLuxuryHouse() {
	builder.NewDirector(s.b).ConstructLuxuryHouse()

	got, err := s.b.House()
	require.NoError(s.T(), err)
	require.Equal(s.T(), "House with 10 walls, 5 doors, and 8 windows.", got.String())
}

// TestLastStepWins checks that a builder can be redirected.
func (s *BuilderSuite) TestLastStepWins() {
	d := builder.NewDirector(s.b)
	d.ConstructLuxuryHouse()
	d.ConstructSimpleHouse()

	got, err := s.b.House()
	require.NoError(s.T(), err)
	require.Equal(s.T(), builder.House{Walls: 4, Doors: 1, Windows: 2}, got)
}

// TestNegativeCount reports the first offending step.
func (s *BuilderSuite) TestNegativeCount() {
	s.b.BuildWalls(4)
	s.b.BuildDoors(-1)
	s.b.BuildWindows(-3)

	_, err := s.b.House()
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, builder.ErrNegativeCount))
	require.Contains(s.T(), err.Error(), builder.StepDoors)
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func TestBuild_Options(t *testing.T) {
	h, err := builder.Build(builder.WithWalls(6), builder.WithDoors(2), builder.WithWalls(8))
	require.NoError(t, err)
	require.Equal(t, builder.House{Walls: 8, Doors: 2}, h)

	require.Panics(t, func() { builder.WithWindows(-1) })
}

func TestZeroValueBuilder(t *testing.T) {
	var b builder.ConcreteHouseBuilder
	h, err := b.House()
	require.NoError(t, err)
	require.Equal(t, "House with 0 walls, 0 doors, and 0 windows.", h.String())
}
