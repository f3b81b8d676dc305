package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/grid/board"
)

func identityField(g grid.Grid) grid.VecOnGrid[grid.Pos] {
	field := grid.WithDefault[grid.Pos](g)
	for _, p := range g.AllPos().Collect() {
		field.Set(p, p)
	}
	return field
}

func TestNewDerivesReverseFromForward(t *testing.T) {
	g := grid.New(4, 4)
	field := identityField(g)
	field.Set(g.Pos(0, 0), g.Pos(1, 1))
	field.Set(g.Pos(1, 1), g.Pos(0, 0))

	b := board.New(nil, field)
	for _, p := range g.AllPos().Collect() {
		require.Equal(t, p, b.Reverse(b.Forward(p)), "reverse(forward(%v)) should be identity", p)
	}
}

func TestSwapToMovesSelectionAndPreservesPermutation(t *testing.T) {
	g := grid.New(4, 4)
	field := identityField(g)
	sel := g.Pos(0, 0)
	b := board.New(&sel, field)

	b.SwapTo(g.Pos(1, 0))
	require.Equal(t, g.Pos(1, 0), *b.Selected())
	require.Equal(t, g.Pos(0, 0), b.Forward(g.Pos(1, 0)))
	require.Equal(t, g.Pos(1, 0), b.Forward(g.Pos(0, 0)))

	for _, p := range g.AllPos().Collect() {
		require.Equal(t, p, b.Reverse(b.Forward(p)))
	}
}

func TestSwapToPanicsOnNonAdjacentTarget(t *testing.T) {
	g := grid.New(4, 4)
	sel := g.Pos(0, 0)
	b := board.New(&sel, identityField(g))
	require.Panics(t, func() {
		b.SwapTo(g.Pos(2, 2))
	})
}

func TestSwapToPanicsOnLockedTarget(t *testing.T) {
	g := grid.New(4, 4)
	sel := g.Pos(0, 0)
	b := board.New(&sel, identityField(g))
	b.Lock(g.Pos(1, 0))
	require.Panics(t, func() {
		b.SwapTo(g.Pos(1, 0))
	})
}

func TestSelectPanicsOnLockedCell(t *testing.T) {
	g := grid.New(4, 4)
	b := board.New(nil, identityField(g))
	b.Lock(g.Pos(2, 2))
	require.Panics(t, func() {
		b.Select(g.Pos(2, 2))
	})
}

func TestLockExcludesFromAroundOf(t *testing.T) {
	g := grid.New(4, 4)
	b := board.New(nil, identityField(g))
	b.Lock(g.Pos(1, 0))

	around := b.AroundOf(g.Pos(0, 0))
	require.NotContains(t, around, g.Pos(1, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	g := grid.New(4, 4)
	sel := g.Pos(0, 0)
	b := board.New(&sel, identityField(g))
	b.Lock(g.Pos(3, 3))

	clone := b.Clone()
	clone.SwapTo(g.Pos(1, 0))
	clone.Unlock(g.Pos(3, 3))

	require.Equal(t, g.Pos(0, 0), *b.Selected())
	require.True(t, b.IsLocked(g.Pos(3, 3)))
	require.False(t, clone.IsLocked(g.Pos(3, 3)))
}

func TestFinderIterWalksOneRow(t *testing.T) {
	g := grid.New(6, 6)
	f := board.NewFinder(g)

	row := f.Iter().Collect()
	require.Len(t, row, 6)
	for i, p := range row {
		require.Equal(t, g.Pos(uint8(i), 0), p)
	}
}

func TestFinderRotateToSwapsWidthAndHeight(t *testing.T) {
	g := grid.New(6, 4)
	f := board.NewFinder(g)
	require.Equal(t, uint8(6), f.Width())
	require.Equal(t, uint8(4), f.Height())

	f.RotateTo(1)
	require.Equal(t, uint8(4), f.Width())
	require.Equal(t, uint8(6), f.Height())

	row := f.Iter().Collect()
	require.Len(t, row, int(f.Width()))
}

func TestFinderRotateToFourTimesIsIdentity(t *testing.T) {
	g := grid.New(6, 4)
	f := board.NewFinder(g)
	for i := 0; i < 4; i++ {
		f.RotateTo(1)
	}
	require.Equal(t, uint8(0), f.Rotation())
	require.Equal(t, uint8(6), f.Width())
	require.Equal(t, uint8(4), f.Height())
	require.Equal(t, grid.Pos{X: 0, Y: 0}, f.Offset())
}

func TestFinderSliceUpShrinksHeight(t *testing.T) {
	g := grid.New(6, 6)
	f := board.NewFinder(g)
	f.SliceUp()
	require.Equal(t, uint8(5), f.Height())
	require.Equal(t, uint8(6), f.Width())
}
