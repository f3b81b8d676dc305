// Package grid provides the toroidal 2-D index space every other fragsolve
// package builds on: Pos coordinates, the Grid they live in, a dense
// VecOnGrid container, and rectangular range iteration.
//
// This plays the role lvlath's gridgraph package plays for integer terrain
// grids, adapted from "land/water connectivity" to "permutation of square
// fragments": Pos replaces gridgraph.Cell, Grid replaces GridGraph, and
// neighbor lookup wraps at the edges instead of stopping at them, because
// the contest board is a torus (spec.md §3).
package grid

import (
	"fmt"

	"github.com/tilecraft/fragsolve/basis"
)

// Pos is a coordinate within a Grid. Both fields are always less than the
// owning Grid's Width/Height; Grid is the only place that should construct
// one away from a known-valid pair.
type Pos struct {
	X, Y uint8
}

// String renders Pos for debugging and test failure messages.
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid is a bounded W x H index space, W and H at most 16 (spec.md §3).
// Movement across Grid wraps on both axes: the movement layer treats the
// board as a torus.
type Grid struct {
	Width, Height uint8
}

// New builds a Grid. Panics if either dimension exceeds 16, matching the
// invariant enforced by spec.md's Pos bit-packing.
func New(width, height uint8) Grid {
	if width > 16 || height > 16 {
		panic("grid: width and height must each be at most 16")
	}
	return Grid{Width: width, Height: height}
}

// IsValid reports whether pos lies within g.
func (g Grid) IsValid(pos Pos) bool {
	return pos.X < g.Width && pos.Y < g.Height
}

// Pos constructs a Pos after checking it is valid for g.
func (g Grid) Pos(x, y uint8) Pos {
	if x >= g.Width || y >= g.Height {
		panic(fmt.Sprintf("grid: (%d, %d) out of bounds for %dx%d", x, y, g.Width, g.Height))
	}
	return Pos{X: x, Y: y}
}

// ClampingPos clamps x and y into g's bounds before constructing a Pos.
func (g Grid) ClampingPos(x, y uint8) Pos {
	if x >= g.Width {
		x = g.Width - 1
	}
	if y >= g.Height {
		y = g.Height - 1
	}
	return Pos{X: x, Y: y}
}

// UpOf returns the cell directly above pos, wrapping to the bottom row.
func (g Grid) UpOf(pos Pos) Pos {
	if pos.Y == 0 {
		return Pos{pos.X, g.Height - 1}
	}
	return Pos{pos.X, pos.Y - 1}
}

// RightOf returns the cell directly right of pos, wrapping to column 0.
func (g Grid) RightOf(pos Pos) Pos {
	if pos.X+1 == g.Width {
		return Pos{0, pos.Y}
	}
	return Pos{pos.X + 1, pos.Y}
}

// DownOf returns the cell directly below pos, wrapping to the top row.
func (g Grid) DownOf(pos Pos) Pos {
	if pos.Y+1 == g.Height {
		return Pos{pos.X, 0}
	}
	return Pos{pos.X, pos.Y + 1}
}

// LeftOf returns the cell directly left of pos, wrapping to the last column.
func (g Grid) LeftOf(pos Pos) Pos {
	if pos.X == 0 {
		return Pos{g.Width - 1, pos.Y}
	}
	return Pos{pos.X - 1, pos.Y}
}

// AroundOf returns the four toroidal neighbors of pos in Up, Right, Down,
// Left order.
func (g Grid) AroundOf(pos Pos) [4]Pos {
	return [4]Pos{g.UpOf(pos), g.RightOf(pos), g.DownOf(pos), g.LeftOf(pos)}
}

func loopDist(a, b, size uint8) uint32 {
	var d int
	if a > b {
		d = int(a - b)
	} else {
		d = int(b - a)
	}
	if other := int(size) - d; other < d {
		d = other
	}
	return uint32(d)
}

// LoopingManhattanDist returns the toroidal Manhattan distance between a
// and b: min(|ax-bx|, W-|ax-bx|) + min(|ay-by|, H-|ay-by|).
func (g Grid) LoopingManhattanDist(a, b Pos) uint32 {
	return loopDist(a.X, b.X, g.Width) + loopDist(a.Y, b.Y, g.Height)
}

// LoopingMinVec returns the signed (dx, dy) of minimum absolute sum from a
// to b on the torus, breaking ties by preferring the positive direction.
func (g Grid) LoopingMinVec(a, b Pos) (int32, int32) {
	dx := minSignedDelta(a.X, b.X, g.Width)
	dy := minSignedDelta(a.Y, b.Y, g.Height)
	return dx, dy
}

func minSignedDelta(from, to, size uint8) int32 {
	direct := int32(to) - int32(from)
	var wrapped int32
	if direct >= 0 {
		wrapped = direct - int32(size)
	} else {
		wrapped = direct + int32(size)
	}
	if abs32(wrapped) < abs32(direct) {
		return wrapped
	}
	if abs32(wrapped) == abs32(direct) && wrapped > direct {
		return wrapped
	}
	return direct
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// MovePosTo returns the cell one step from pos in the given direction,
// wrapping on the torus.
func (g Grid) MovePosTo(pos Pos, m basis.Movement) Pos {
	switch m {
	case basis.Up:
		return g.UpOf(pos)
	case basis.Right:
		return g.RightOf(pos)
	case basis.Down:
		return g.DownOf(pos)
	case basis.Left:
		return g.LeftOf(pos)
	default:
		panic("grid: invalid movement")
	}
}

// BetweenPos returns the movement that takes a single step from `from` to
// the adjacent cell `to`. Panics if from and to are not toroidal neighbors.
func BetweenPos(g Grid, from, to Pos) basis.Movement {
	for _, m := range [...]basis.Movement{basis.Up, basis.Right, basis.Down, basis.Left} {
		if g.MovePosTo(from, m) == to {
			return m
		}
	}
	panic(fmt.Sprintf("grid: %v is not a neighbor of %v", to, from))
}

// PosPair is a (from, to) pair of positions, used to describe where a
// fragment currently sits and where it belongs.
type PosPair struct {
	From, To Pos
}

// Movement2 is the (dst, src) movement-list element moveresolve.Resolve
// consumes: From (dst) is the position a fragment currently sits at, and
// To (src) is its original position. It is the same shape as PosPair,
// named to match the move-resolution data-flow vocabulary.
type Movement2 = PosPair

// Index maps pos to its offset in a row-major dense array for this Grid.
func (g Grid) Index(pos Pos) int {
	return int(pos.Y)*int(g.Width) + int(pos.X)
}
