package moveresolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/grid/board"
	"github.com/tilecraft/fragsolve/moveresolve"
)

// replay applies a sequence of contest operations to a fresh board built
// from the same movements Resolve was given, the same way a contest
// judge would interpret the answer.
func replay(g grid.Grid, movements []grid.Movement2, ops []basis.Operation) *board.Board {
	field := grid.WithDefault[grid.Pos](g)
	for _, p := range g.AllPos().Collect() {
		field.Set(p, p)
	}
	for _, m := range movements {
		field.Set(m.From, m.To)
	}
	b := board.New(nil, field)

	for _, op := range ops {
		b.Select(grid.Pos{X: op.Select[0], Y: op.Select[1]})
		for _, m := range op.Movements {
			sel := *b.Selected()
			b.SwapTo(g.MovePosTo(sel, m))
		}
	}
	return b
}

func TestResolveSolvesATinyBoardExactly(t *testing.T) {
	g := grid.New(2, 2)
	a, c := g.Pos(0, 0), g.Pos(1, 0)
	movements := []grid.Movement2{
		{From: a, To: c},
		{From: c, To: a},
	}
	param := moveresolve.ResolveParam{SelectLimit: 10, SwapCost: 1, SelectCost: 1}

	var ops []basis.Operation
	for got := range moveresolve.Resolve(g, movements, param) {
		ops = got
		break
	}
	require.NotEmpty(t, ops)

	solved := replay(g, movements, ops)
	for _, p := range g.AllPos().Collect() {
		require.Equal(t, p, solved.Forward(p))
	}
}

func TestReduceCostNeverIncreasesDistance(t *testing.T) {
	g := grid.New(3, 3)
	field := grid.WithDefault[grid.Pos](g)
	for _, p := range g.AllPos().Collect() {
		field.Set(p, p)
	}
	a, c := g.Pos(0, 0), g.Pos(2, 2)
	field.Set(a, c)
	field.Set(c, a)
	b := board.New(nil, field)

	param := moveresolve.ResolveParam{SelectLimit: 10, SwapCost: 1, SelectCost: 1}
	table := moveresolve.PreCalcSqManhattan(g)
	startDist := moveresolve.NewSqManhattan(b.Field(), table)

	found := false
	for actions, dist := range moveresolve.ReduceCost(b, param, 0.5) {
		found = true
		require.LessOrEqual(t, uint32(dist), uint32(startDist))
		require.NotEmpty(t, actions)
		break
	}
	require.True(t, found)
}
