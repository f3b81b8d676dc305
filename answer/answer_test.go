package answer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/answer"
	"github.com/tilecraft/fragsolve/basis"
)

func TestEncodeRoundTripAnswer(t *testing.T) {
	rotations := []basis.Rot{basis.R0, basis.R90, basis.R180, basis.R270}
	ops := []basis.Operation{
		{
			Select:    [2]uint8{1, 1},
			Movements: []basis.Movement{basis.Up, basis.Right, basis.Down, basis.Left},
		},
	}

	got := answer.Encode(rotations, 2, 2, ops)
	require.Equal(t, "0123\r\n1\r\n11\r\n4\r\nURDL\r\n", string(got))
}

func TestEncodeNoOperations(t *testing.T) {
	rotations := []basis.Rot{basis.R0, basis.R0}
	got := answer.Encode(rotations, 1, 2, nil)
	require.Equal(t, "00\r\n0\r\n", string(got))
}

func TestEncodePanicsOnDimensionMismatch(t *testing.T) {
	require.Panics(t, func() {
		answer.Encode([]basis.Rot{basis.R0}, 2, 2, nil)
	})
}
