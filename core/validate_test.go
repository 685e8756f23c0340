package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsegraph/sparsegraph/core"
)

// europe builds the symmetric six-city reference graph used throughout the
// package documentation: London–Paris–Berlin–Rome–Madrid–Lisbon.
func europe() core.Graph {
	g := core.NewGraph(6)
	g.AddEdge(0, 1, 311)  // London–Paris
	g.AddEdge(1, 2, 878)  // Paris–Berlin
	g.AddEdge(1, 3, 1439) // Paris–Rome
	g.AddEdge(1, 4, 1053) // Paris–Madrid
	g.AddEdge(2, 3, 1181) // Berlin–Rome
	g.AddEdge(4, 5, 623)  // Madrid–Lisbon
	return g
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, core.Validate(europe(),
		core.WithSymmetryCheck(),
		core.WithConnectivityCheck(),
	))
}

func TestValidate_EmptyGraph(t *testing.T) {
	require.NoError(t, core.Validate(core.NewGraph(0), core.WithConnectivityCheck()))
}

func TestValidate_NeighborOutOfRange(t *testing.T) {
	g := core.Graph{{5: 1.0}} // single node referencing a ghost neighbor
	err := core.Validate(g)
	require.ErrorIs(t, err, core.ErrNeighborOutOfRange)
}

func TestValidate_NegativeWeight(t *testing.T) {
	g := core.Graph{{1: -2.0}, {}}
	err := core.Validate(g)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestValidate_Asymmetric(t *testing.T) {
	g := core.NewGraph(2)
	g.AddArc(0, 1, 1.0) // no mirror
	err := core.Validate(g, core.WithSymmetryCheck())
	require.ErrorIs(t, err, core.ErrAsymmetric)
}

func TestValidate_AsymmetricWeightMismatch(t *testing.T) {
	g := core.NewGraph(2)
	g.AddArc(0, 1, 1.0)
	g.AddArc(1, 0, 2.0)
	err := core.Validate(g, core.WithSymmetryCheck())
	require.ErrorIs(t, err, core.ErrAsymmetric)
}

func TestValidate_Disconnected(t *testing.T) {
	g := core.NewGraph(3)
	g.AddEdge(0, 1, 1.0) // node 2 is an island
	err := core.Validate(g, core.WithConnectivityCheck())
	require.ErrorIs(t, err, core.ErrDisconnected)
}

func TestValidate_ConnectivityForcesSymmetry(t *testing.T) {
	g := core.NewGraph(2)
	g.AddArc(0, 1, 1.0)
	err := core.Validate(g, core.WithConnectivityCheck())
	require.ErrorIs(t, err, core.ErrAsymmetric)
}

func TestConnected(t *testing.T) {
	g := europe()
	require.True(t, core.Connected(g, 0))
	require.True(t, core.Connected(g, 5))
	require.False(t, core.Connected(g, -1))

	g2 := core.NewGraph(3)
	g2.AddEdge(0, 1, 1.0)
	require.False(t, core.Connected(g2, 0))
	// The island only reaches itself.
	require.False(t, core.Connected(g2, 2))
}

func TestConnected_SingleNode(t *testing.T) {
	require.True(t, core.Connected(core.NewGraph(1), 0))
}
