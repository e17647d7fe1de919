package chain_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/patterns/chain"
	"github.com/katalvlaran/patterns/internal/narrate"
)

// ChainSuite drives a basic -> technical -> billing chain.
type ChainSuite struct {
	suite.Suite
	buf  bytes.Buffer
	logs *observer.ObservedLogs
	head chain.Handler
}

func (s *ChainSuite) SetupTest() {
	s.buf.Reset()
	core, logs := observer.New(zap.DebugLevel)
	s.logs = logs
	log := chain.WithLogger(zap.New(core))

	n := narrate.New(&s.buf)
	basic := chain.NewBasicSupportHandler(n, log)
	basic.SetNext(chain.NewTechnicalSupportHandler(n, log)).
		SetNext(chain.NewBillingSupportHandler(n, log))
	s.head = basic
}

// TestHeadHandles checks that the first handler stops the chain.
func (s *ChainSuite) TestHeadHandles() {
	ok := s.head.Handle(chain.NewRequest(chain.Basic, "Password reset"))

	require.True(s.T(), ok)
	require.Equal(s.T(), "BasicSupportHandler: Handling basic support request - Password reset\n", s.buf.String())
	require.Zero(s.T(), s.logs.Len())
}

// TestForwarding checks that non-matching handlers pass the request on.
func (s *ChainSuite) TestForwarding() {
	ok := s.head.Handle(chain.NewRequest(chain.Billing, "Refund request"))

	require.True(s.T(), ok)
	require.Equal(s.T(), "BillingSupportHandler: Handling billing support request - Refund request\n", s.buf.String())
	require.Equal(s.T(), 2, s.logs.FilterMessage("request forwarded").Len())
}

// TestUnmatchedIsDropped checks that the end of the chain drops silently.
func (s *ChainSuite) TestUnmatchedIsDropped() {
	req := chain.NewRequest("Sales", "Bulk discount")
	ok := s.head.Handle(req)

	require.False(s.T(), ok)
	require.Empty(s.T(), s.buf.String())

	dropped := s.logs.FilterMessage("request dropped").All()
	require.Len(s.T(), dropped, 1)
	require.Equal(s.T(), "BillingSupportHandler", dropped[0].ContextMap()["handler"])
	require.Equal(s.T(), req.ID.String(), dropped[0].ContextMap()["request_id"])
}

func TestChainSuite(t *testing.T) {
	suite.Run(t, new(ChainSuite))
}

func TestBuild(t *testing.T) {
	var buf bytes.Buffer
	n := narrate.New(&buf)

	require.Nil(t, chain.Build())

	head := chain.Build(
		chain.NewBillingSupportHandler(n),
		chain.NewHandler("SalesHandler", "Sales", "sales", n),
	)
	require.True(t, head.Handle(chain.NewRequest("Sales", "Quote")))
	require.Equal(t, "SalesHandler: Handling sales support request - Quote\n", buf.String())
}

func TestNewRequest_AssignsDistinctIDs(t *testing.T) {
	a := chain.NewRequest(chain.Basic, "x")
	b := chain.NewRequest(chain.Basic, "x")
	require.NotEqual(t, a.ID, b.ID)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { chain.WithLogger(nil) })
}
