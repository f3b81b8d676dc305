package moveresolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/moveresolve"
)

func TestActionsToOperationsGroupsSwapsUnderTheirSelect(t *testing.T) {
	actions := []moveresolve.GridAction{
		moveresolve.NewSelect(grid.Pos{X: 1, Y: 2}),
		moveresolve.NewSwap(basis.Right),
		moveresolve.NewSwap(basis.Down),
		moveresolve.NewSelect(grid.Pos{X: 0, Y: 0}),
		moveresolve.NewSwap(basis.Up),
	}

	ops := moveresolve.ActionsToOperations(actions)
	require.Equal(t, []basis.Operation{
		{Select: [2]uint8{1, 2}, Movements: []basis.Movement{basis.Right, basis.Down}},
		{Select: [2]uint8{0, 0}, Movements: []basis.Movement{basis.Up}},
	}, ops)
}

func TestActionsToOperationsOfEmptyActionsIsNil(t *testing.T) {
	require.Nil(t, moveresolve.ActionsToOperations(nil))
}

func TestActionsToOperationsPanicsOnSwapBeforeSelect(t *testing.T) {
	require.Panics(t, func() {
		moveresolve.ActionsToOperations([]moveresolve.GridAction{moveresolve.NewSwap(basis.Left)})
	})
}
