// Package pixelmatch reconstructs the original arrangement of a shuffled,
// rotated set of image fragments by comparing edge pixel colors: a
// bidirectional "shaker" pass grows two axes out from the known root
// fragment, then a four-quadrant pass fills every remaining cell using
// its two already-placed neighbors.
package pixelmatch

import (
	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/fragment"
	"github.com/tilecraft/fragsolve/grid"
)

// Resolve reconstructs the placement and rotation of every fragment in
// fragments onto g. The fragment whose original position is (0,0) is
// assumed to be the root and is placed at rotation R0; hints, if
// non-nil, bias the search with operator-provided corrections.
//
// Returns the filled grid and the root fragment's position within it.
func Resolve(fragments []fragment.Fragment, g grid.Grid, hints *Hints) (grid.VecOnGrid[fragment.Fragment], grid.Pos) {
	if hints == nil {
		hints = NewHints()
	}

	pool := append([]fragment.Fragment(nil), fragments...)
	root, ok := findAndRemove(&pool, grid.Pos{X: 0, Y: 0})
	if !ok {
		panic("pixelmatch: no fragment with original position (0,0)")
	}

	up, down := shakerFill(g.Height, &pool, basis.North, root, hints)
	left, right := shakerFill(g.Width, &pool, basis.West, root, hints)

	rootPos := grid.Pos{X: uint8(len(left)), Y: uint8(len(up))}

	ptrGrid := grid.WithDefault[*fragment.Fragment](g)
	placeShakerResult(ptrGrid, root, rootPos, up, down, left, right)

	fillByDoubleSide(&pool, ptrGrid, hints, rootPos, g)

	result := grid.WithDefault[fragment.Fragment](g)
	ptrGrid.IterWithPos(func(pos grid.Pos, f *fragment.Fragment) {
		if f == nil {
			panic("pixelmatch: cell left unfilled after matching")
		}
		result.Set(pos, *f)
	})
	return result, rootPos
}

func placeShakerResult(g grid.VecOnGrid[*fragment.Fragment], root fragment.Fragment, rootPos grid.Pos, up, down, left, right []fragment.Fragment) {
	place := func(x, y int, f fragment.Fragment) {
		v := f
		g.Set(grid.Pos{X: uint8(x), Y: uint8(y)}, &v)
	}

	place(int(rootPos.X), int(rootPos.Y), root)

	for i, f := range up {
		place(int(rootPos.X), int(rootPos.Y)-1-i, f)
	}
	for i, f := range down {
		place(int(rootPos.X), int(rootPos.Y)+1+i, f)
	}
	for i, f := range left {
		place(int(rootPos.X)-1-i, int(rootPos.Y), f)
	}
	for i, f := range right {
		place(int(rootPos.X)+1+i, int(rootPos.Y), f)
	}
}
