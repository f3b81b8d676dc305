package board

import (
	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
)

// Finder is a rotatable, shrinkable viewport onto a Board's grid: it lets
// the approximate row-solver read and move through the board as if it had
// been rotated and had rows peeled off the top, without actually
// permuting any underlying storage.
type Finder struct {
	offset   grid.Pos
	width    uint8
	height   uint8
	rotation uint8
}

// NewFinder returns an unrotated Finder spanning the whole of g.
func NewFinder(g grid.Grid) *Finder {
	return &Finder{
		offset:   grid.Pos{X: 0, Y: 0},
		width:    g.Width,
		height:   g.Height,
		rotation: 0,
	}
}

// Width returns the viewport's current width.
func (f *Finder) Width() uint8 { return f.width }

// Height returns the viewport's current height.
func (f *Finder) Height() uint8 { return f.height }

// Offset returns the viewport's top-left corner in underlying grid space.
func (f *Finder) Offset() grid.Pos { return f.offset }

// Rotation returns the current rotation, 0..3 clockwise quarter turns.
func (f *Finder) Rotation() uint8 { return f.rotation }

func (f *Finder) asGrid() grid.Grid {
	return grid.New(f.width, f.height)
}

// MovePosTo moves pos one step in movement, reinterpreted through the
// viewport's current rotation.
func (f *Finder) MovePosTo(pos grid.Pos, movement basis.Movement) grid.Pos {
	g := f.asGrid()
	switch f.rotation {
	case 0:
		// movement unchanged
	case 1:
		movement = movement.TurnLeft()
	case 2:
		movement = movement.Opposite()
	case 3:
		movement = movement.TurnRight()
	default:
		panic("board: invalid rotation")
	}
	return g.MovePosTo(pos, movement)
}

// RotateTo rotates the viewport clockwise by rotation quarter turns,
// swapping width/height and recomputing the offset so the viewport keeps
// covering the same physical cells.
func (f *Finder) RotateTo(rotation uint8) {
	g := f.asGrid()
	f.rotation = (f.rotation + rotation) % 4
	f.width, f.height = f.height, f.width

	rotated := rotatedPos((rotation+3)%4, grid.Pos{X: 0, Y: 0}, g)
	f.offset = grid.Pos{X: rotated.X + f.offset.X, Y: rotated.Y + f.offset.Y}
}

// SliceUp shrinks the viewport by one row from its top edge.
func (f *Finder) SliceUp() {
	f.height--
}

// Iter returns an iterator over the Width cells of one row of the
// viewport: it starts at Offset and steps in the reading direction of the
// current rotation. Only that one row is walked.
func (f *Finder) Iter() *FinderIter {
	g := f.asGrid()
	var movement basis.Movement
	switch f.rotation {
	case 0:
		movement = basis.Right
	case 1:
		movement = basis.Down
	case 2:
		movement = basis.Left
	case 3:
		movement = basis.Up
	default:
		panic("board: invalid rotation")
	}
	start := f.offset
	end := f.MovePosTo(start, movement.Opposite())
	next := start
	return &FinderIter{
		finder:   f,
		grid:     g,
		movement: movement,
		next:     &next,
		end:      end,
	}
}

// FinderIter walks a Finder's viewport one Pos at a time.
type FinderIter struct {
	finder   *Finder
	grid     grid.Grid
	movement basis.Movement
	next     *grid.Pos
	end      grid.Pos
}

// Next returns the next Pos in the walk and true, or the zero Pos and
// false once exhausted.
func (it *FinderIter) Next() (grid.Pos, bool) {
	if it.next == nil {
		return grid.Pos{}, false
	}
	ret := *it.next
	if ret == it.end {
		it.next = nil
	} else {
		advanced := it.finder.MovePosTo(ret, it.movement)
		it.next = &advanced
	}
	return ret, true
}

// Collect drains the iterator into a slice.
func (it *FinderIter) Collect() []grid.Pos {
	var out []grid.Pos
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

// rotatedPos computes the position pos lands on after rotating rotation
// clockwise quarter turns within a width x height grid.
func rotatedPos(rotation uint8, pos grid.Pos, g grid.Grid) grid.Pos {
	switch rotation % 4 {
	case 0:
		return pos
	case 1:
		return grid.Pos{X: g.Width - 1 - pos.Y, Y: pos.X}
	case 2:
		return grid.Pos{X: g.Width - 1 - pos.X, Y: g.Height - 1 - pos.Y}
	case 3:
		return grid.Pos{X: pos.Y, Y: g.Height - 1 - pos.X}
	default:
		panic("board: invalid rotation")
	}
}
