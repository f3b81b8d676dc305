package basis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/basis"
)

func TestMovementOppositeIsAnInvolution(t *testing.T) {
	for _, m := range []basis.Movement{basis.Up, basis.Right, basis.Down, basis.Left} {
		require.Equal(t, m, m.Opposite().Opposite())
		require.NotEqual(t, m, m.Opposite())
	}
}

func TestMovementTurnRightIsAFourCycle(t *testing.T) {
	require.Equal(t, basis.Right, basis.Up.TurnRight())
	require.Equal(t, basis.Down, basis.Right.TurnRight())
	require.Equal(t, basis.Left, basis.Down.TurnRight())
	require.Equal(t, basis.Up, basis.Left.TurnRight())
}

func TestMovementTurnLeftUndoesTurnRight(t *testing.T) {
	for _, m := range []basis.Movement{basis.Up, basis.Right, basis.Down, basis.Left} {
		require.Equal(t, m, m.TurnRight().TurnLeft())
		require.Equal(t, m, m.TurnLeft().TurnRight())
	}
}

func TestMovementStringMatchesAnswerAlphabet(t *testing.T) {
	require.Equal(t, "U", basis.Up.String())
	require.Equal(t, "R", basis.Right.String())
	require.Equal(t, "D", basis.Down.String())
	require.Equal(t, "L", basis.Left.String())
}

func TestColorEuclideanDistance(t *testing.T) {
	black := basis.Color{R: 0, G: 0, B: 0}
	white := basis.Color{R: 255, G: 255, B: 255}
	require.InDelta(t, 441.67, black.EuclideanDistance(white), 0.01)
	require.Equal(t, 0.0, black.EuclideanDistance(black))
}
