// Package moveresolve turns a permutation of fragment positions into a
// legal sequence of contest operations: select a cell, then chain
// adjacent swaps. It chooses between an exact IDA* search and an
// approximate row-by-row solver depending on board size.
package moveresolve

import "github.com/tilecraft/fragsolve/grid"

// SqManhattan is the sum, over every cell, of the squared toroidal
// Manhattan distance between that cell and the cell it currently holds.
// It supports an O(1) delta update on a single swap, making it cheap to
// carry as part of a search state's cost.
type SqManhattan uint32

// SqManhattanTable precomputes the squared toroidal Manhattan distance
// between every pair of positions in a Grid, so SqManhattan.SwapOn never
// has to recompute one.
type SqManhattanTable map[[2]grid.Pos]SqManhattan

// PreCalcSqManhattan builds the distance table for g.
func PreCalcSqManhattan(g grid.Grid) SqManhattanTable {
	table := make(SqManhattanTable, int(g.Width)*int(g.Height)*int(g.Width)*int(g.Height))
	fromIter := g.AllPos()
	for {
		from, ok := fromIter.Next()
		if !ok {
			break
		}
		toIter := g.AllPos()
		for {
			to, ok := toIter.Next()
			if !ok {
				break
			}
			d := g.LoopingManhattanDist(from, to)
			table[[2]grid.Pos{from, to}] = SqManhattan(d * d)
		}
	}
	return table
}

// NewSqManhattan sums the precomputed table entry for every (pos,
// owner) pair currently on field, giving the SqManhattan value for a
// board's starting permutation.
func NewSqManhattan(field grid.VecOnGrid[grid.Pos], table SqManhattanTable) SqManhattan {
	var total SqManhattan
	field.IterWithPos(func(pos, owner grid.Pos) {
		total += table[[2]grid.Pos{pos, owner}]
	})
	return total
}

// SwapOn returns the SqManhattan value after swapping the fragments
// currently held at pair[0] and pair[1] within field.
func (s SqManhattan) SwapOn(pair [2]grid.Pos, field grid.VecOnGrid[grid.Pos], table SqManhattanTable) SqManhattan {
	a, b := pair[0], pair[1]
	ownerA, ownerB := field.Get(a), field.Get(b)
	prev := table[[2]grid.Pos{a, ownerA}] + table[[2]grid.Pos{b, ownerB}]
	next := table[[2]grid.Pos{a, ownerB}] + table[[2]grid.Pos{b, ownerA}]
	return s + next - prev
}

// leastMovements is the closed-form admissible lower bound on the number
// of adjacent swaps needed to move a single tile by the signed toroidal
// displacement (dx, dy).
func leastMovements(dx, dy int32) uint32 {
	if dx == 0 && dy == 0 {
		return 0
	}
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	d := dx - dy
	if d < 0 {
		d = -d
	}
	min := dx
	if dy < min {
		min = dy
	}
	ret := uint32(5*d + 6*min - 4)
	if dx == dy {
		ret += 2
	}
	return ret
}

// LeastMovements sums leastMovements over every cell of a board, an
// additive lower bound on remaining swap count. Resolve's solvers do not
// use it: the exact search is guided by SqManhattan and the row solver
// routes by plain step count.
type LeastMovements uint32

// NewLeastMovements computes the LeastMovements value of field from
// scratch: the sum, over every cell, of the least number of swaps needed
// to route the fragment currently there to its goal position.
func NewLeastMovements(field grid.VecOnGrid[grid.Pos]) LeastMovements {
	g := field.Grid
	var total LeastMovements
	field.IterWithPos(func(pos, owner grid.Pos) {
		dx, dy := g.LoopingMinVec(pos, owner)
		total += LeastMovements(leastMovements(dx, dy))
	})
	return total
}

// Less reports whether l is strictly smaller than o, satisfying
// dijkstra.Cost/idastar.Cost/beamsearch.Cost.
func (l LeastMovements) Less(o LeastMovements) bool { return l < o }

// Op combines two LeastMovements values, satisfying dijkstra.Cost.
func (l LeastMovements) Op(o LeastMovements) LeastMovements { return l + o }

// SwapOn returns the LeastMovements value after swapping the fragment
// currently at from into to, within a field where field[pos] names the
// original position of the fragment sitting at pos. Panics if the update
// would go negative, which indicates field/from/to are inconsistent.
func (l LeastMovements) SwapOn(field grid.VecOnGrid[grid.Pos], from, to grid.Pos) LeastMovements {
	g := field.Grid
	owner := field.Get(from)
	beforeDx, beforeDy := g.LoopingMinVec(from, owner)
	before := leastMovements(beforeDx, beforeDy)
	afterDx, afterDy := g.LoopingMinVec(to, owner)
	after := leastMovements(afterDx, afterDy)

	res := int64(4) + int64(l) + int64(after) - int64(before)
	if res < 0 {
		panic("moveresolve: least-movements delta went negative; field/from/to are inconsistent")
	}
	return LeastMovements(res)
}

// Add sums two LeastMovements values.
func (l LeastMovements) Add(o LeastMovements) LeastMovements { return l + o }
