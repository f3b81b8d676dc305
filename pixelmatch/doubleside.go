package pixelmatch

import (
	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/fragment"
	"github.com/tilecraft/fragsolve/grid"
)

func getEdgePixels(g grid.VecOnGrid[*fragment.Fragment], pos grid.Pos, dir basis.Dir) []basis.Color {
	f := g.Get(pos)
	if f == nil {
		panic("pixelmatch: reference cell is not yet placed")
	}
	return f.Edge(dir).Pixels
}

// fillByDoubleSideCell places the best-matching fragment at pos given two
// already-placed reference neighbors, scoring against the concatenation
// of both reference edges read in reverse.
func fillByDoubleSideCell(fragments *[]fragment.Fragment, grid_ grid.VecOnGrid[*fragment.Fragment], hints *Hints, pos grid.Pos, ref1 EdgePos, ref2 EdgePos) {
	reference := append(reversed(getEdgePixels(grid_, ref1.Pos, ref1.Dir)), reversed(getEdgePixels(grid_, ref2.Pos, ref2.Dir))...)

	var blockAnchor grid.Pos
	var blockIndex int
	switch {
	case ref1.Dir == basis.North || ref1.Dir == basis.South:
		blockAnchor, blockIndex = ref1.Pos, 0
	case ref2.Dir == basis.North || ref2.Dir == basis.South:
		blockAnchor, blockIndex = ref2.Pos, 1
	default:
		panic("pixelmatch: neither reference edge runs along the vertical axis")
	}
	blockAnchor = grid_.Get(blockAnchor).Pos
	blocked := hints.TakeBlocklist(blockAnchor)

	best := findByDoubleSide(*fragments, reference, blocked, blockIndex)

	f, ok := findAndRemove(fragments, best.pos)
	if !ok {
		panic("pixelmatch: candidate fragment vanished before apply")
	}
	placed := f.Rotate(ref1.Dir.CalcRot(best.dir))
	grid_.Set(pos, &placed)
}

// fillByDoubleSide fills the four quadrants surrounding the two placed
// axes, working outward from rootPos so both reference neighbors of every
// cell are always already placed.
func fillByDoubleSide(fragments *[]fragment.Fragment, fragmentGrid grid.VecOnGrid[*fragment.Fragment], hints *Hints, rootPos grid.Pos, g grid.Grid) {
	// quadrant 1: x > rootPos.X, y < rootPos.Y
	for x := rootPos.X + 1; x < g.Width; x++ {
		for y := int(rootPos.Y) - 1; y >= 0; y-- {
			py := uint8(y)
			fillByDoubleSideCell(fragments, fragmentGrid, hints, grid.Pos{X: x, Y: py},
				EdgePos{Pos: grid.Pos{X: x, Y: py + 1}, Dir: basis.North},
				EdgePos{Pos: grid.Pos{X: x - 1, Y: py}, Dir: basis.East})
		}
	}

	// quadrant 2: x < rootPos.X, y < rootPos.Y
	for x := int(rootPos.X) - 1; x >= 0; x-- {
		px := uint8(x)
		for y := int(rootPos.Y) - 1; y >= 0; y-- {
			py := uint8(y)
			fillByDoubleSideCell(fragments, fragmentGrid, hints, grid.Pos{X: px, Y: py},
				EdgePos{Pos: grid.Pos{X: px + 1, Y: py}, Dir: basis.West},
				EdgePos{Pos: grid.Pos{X: px, Y: py + 1}, Dir: basis.North})
		}
	}

	// quadrant 3: x < rootPos.X, y > rootPos.Y
	for x := int(rootPos.X) - 1; x >= 0; x-- {
		px := uint8(x)
		for y := rootPos.Y + 1; y < g.Height; y++ {
			fillByDoubleSideCell(fragments, fragmentGrid, hints, grid.Pos{X: px, Y: y},
				EdgePos{Pos: grid.Pos{X: px, Y: y - 1}, Dir: basis.South},
				EdgePos{Pos: grid.Pos{X: px + 1, Y: y}, Dir: basis.West})
		}
	}

	// quadrant 4: x > rootPos.X, y > rootPos.Y
	for x := rootPos.X + 1; x < g.Width; x++ {
		for y := rootPos.Y + 1; y < g.Height; y++ {
			fillByDoubleSideCell(fragments, fragmentGrid, hints, grid.Pos{X: x, Y: y},
				EdgePos{Pos: grid.Pos{X: x - 1, Y: y}, Dir: basis.East},
				EdgePos{Pos: grid.Pos{X: x, Y: y - 1}, Dir: basis.South})
		}
	}
}
