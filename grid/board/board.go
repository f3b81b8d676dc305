// Package board implements the permutation field the movement-resolution
// core operates on: a Board tracks which original cell now occupies each
// grid position, the inverse mapping, a movable "selected" cursor, and a
// set of temporarily locked cells.
//
// Board plays the same structural role lvlath's core.Graph plays for
// graph algorithms — the shared mutable state every search (Dijkstra,
// IDA*, beam search) reads and mutates — but as a dense permutation array
// instead of an adjacency list, since every fragsolve board has exactly
// Width*Height vertices connected in a fixed toroidal grid topology.
package board

import (
	"fmt"

	"github.com/tilecraft/fragsolve/grid"
)

// Board is (select, forward, reverse, locked) from spec.md §3. Its
// invariants — reverse[forward[p]] == p for all p, select never in locked,
// locked never containing select — are enforced by panicking the moment a
// mutator would violate them, per spec.md §7's "invariant violation...
// fatal; indicates programmer error and halts the process".
type Board struct {
	selected *grid.Pos
	forward  grid.VecOnGrid[grid.Pos]
	reverse  grid.VecOnGrid[grid.Pos]
	locked   map[grid.Pos]struct{}
}

// New builds a Board from a permutation field: field[pos] is the original
// position of the fragment currently sitting at pos. The inverse (reverse)
// mapping is derived automatically.
func New(selected *grid.Pos, field grid.VecOnGrid[grid.Pos]) *Board {
	reverse := field.Clone()
	field.IterWithPos(func(pos grid.Pos, owner grid.Pos) {
		reverse.Set(owner, pos)
	})
	return &Board{
		selected: selected,
		forward:  field,
		reverse:  reverse,
		locked:   make(map[grid.Pos]struct{}),
	}
}

// Grid returns the Board's underlying Grid.
func (b *Board) Grid() grid.Grid { return b.forward.Grid }

// Selected returns the currently selected cell, or nil if none.
func (b *Board) Selected() *grid.Pos { return b.selected }

// Select moves the cursor to toSelect. Panics if toSelect is locked.
func (b *Board) Select(toSelect grid.Pos) {
	if _, locked := b.locked[toSelect]; locked {
		panic(fmt.Sprintf("board: cannot select locked cell %v", toSelect))
	}
	p := toSelect
	b.selected = &p
}

// Forward returns the original position of the fragment now at pos.
func (b *Board) Forward(pos grid.Pos) grid.Pos { return b.forward.Get(pos) }

// Reverse returns the current position of the fragment originally at pos.
func (b *Board) Reverse(pos grid.Pos) grid.Pos { return b.reverse.Get(pos) }

// Field exposes the forward permutation for read-only inspection by
// distance heuristics and search states.
func (b *Board) Field() grid.VecOnGrid[grid.Pos] { return b.forward }

// SwapTo swaps the selected cell with its toroidal neighbor toSwap and
// moves the selection along with it. Swapping with the selected cell
// itself is a no-op. Panics if nothing is selected, or if toSwap is
// locked or is not adjacent to the current selection.
func (b *Board) SwapTo(toSwap grid.Pos) {
	if b.selected == nil {
		panic("board: no cell is selected")
	}
	sel := *b.selected
	dist := b.Grid().LoopingManhattanDist(sel, toSwap)
	if dist == 0 {
		return
	}
	if _, locked := b.locked[toSwap]; locked {
		panic(fmt.Sprintf("board: cannot swap into locked cell %v", toSwap))
	}
	if dist != 1 {
		panic(fmt.Sprintf("board: swap target %v is not adjacent to selection %v", toSwap, sel))
	}
	b.reverse.Swap(b.forward.Get(sel), b.forward.Get(toSwap))
	b.forward.Swap(sel, toSwap)
	b.selected = &toSwap
}

// SwapManyTo applies SwapTo for each position in order.
func (b *Board) SwapManyTo(toSwaps []grid.Pos) {
	for _, p := range toSwaps {
		b.SwapTo(p)
	}
}

// AroundOf returns the unlocked toroidal neighbors of pos.
func (b *Board) AroundOf(pos grid.Pos) []grid.Pos {
	all := b.Grid().AroundOf(pos)
	out := make([]grid.Pos, 0, 4)
	for _, p := range all {
		if _, locked := b.locked[p]; !locked {
			out = append(out, p)
		}
	}
	return out
}

// IsLocked reports whether pos is currently locked.
func (b *Board) IsLocked(pos grid.Pos) bool {
	_, locked := b.locked[pos]
	return locked
}

// Lock marks pos as locked. Panics if pos is the current selection.
func (b *Board) Lock(pos grid.Pos) bool {
	if b.selected != nil && *b.selected == pos {
		panic(fmt.Sprintf("board: cannot lock the selected cell %v", pos))
	}
	_, already := b.locked[pos]
	b.locked[pos] = struct{}{}
	return !already
}

// Unlock removes pos's lock, if any, and reports whether it had been locked.
func (b *Board) Unlock(pos grid.Pos) bool {
	_, was := b.locked[pos]
	delete(b.locked, pos)
	return was
}

// FirstUnlocked returns the first unlocked Pos in row-major order, if any.
func (b *Board) FirstUnlocked() (grid.Pos, bool) {
	r := b.Grid().AllPos()
	for {
		p, ok := r.Next()
		if !ok {
			return grid.Pos{}, false
		}
		if _, locked := b.locked[p]; !locked {
			return p, true
		}
	}
}

// Clone returns a deep-enough copy: independent forward/reverse arrays and
// lock set, safe to mutate without affecting b.
func (b *Board) Clone() *Board {
	locked := make(map[grid.Pos]struct{}, len(b.locked))
	for p := range b.locked {
		locked[p] = struct{}{}
	}
	var sel *grid.Pos
	if b.selected != nil {
		p := *b.selected
		sel = &p
	}
	return &Board{
		selected: sel,
		forward:  b.forward.Clone(),
		reverse:  b.reverse.Clone(),
		locked:   locked,
	}
}

// NewFinder returns a fresh, unrotated Finder over b's Grid.
func (b *Board) NewFinder() *Finder {
	return NewFinder(b.Grid())
}
