package moveresolve

import (
	"github.com/cespare/xxhash/v2"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/grid/board"
)

// completer is the exact move-resolver's search state: a Board plus the
// SqManhattan distance remaining to a fully-solved field, searched with
// idastar.Search down to dist==0. It implements idastar.State directly
// rather than through an intermediate interface, per the "inline the
// state type at each call site" shape the reference state types use.
type completer struct {
	b          *board.Board
	prevAction *GridAction
	dist       SqManhattan
	table      SqManhattanTable
	param      ResolveParam
}

// newCompleter builds the initial completer state for b, computing its
// starting SqManhattan distance from table.
func newCompleter(b *board.Board, table SqManhattanTable, param ResolveParam) *completer {
	return &completer{
		b:     b,
		dist:  NewSqManhattan(b.Field(), table),
		table: table,
		param: param,
	}
}

// Hash digests everything that distinguishes this state for search
// deduplication: the current permutation, the selected cell, and the
// remaining select budget. Fields never move pixels, only identities, so
// hashing the forward permutation is enough to detect state repeats.
func (c *completer) Hash() uint64 {
	h := xxhash.New()
	var buf [2]byte
	c.b.Field().IterWithPos(func(_ grid.Pos, owner grid.Pos) {
		buf[0], buf[1] = owner.X, owner.Y
		_, _ = h.Write(buf[:])
	})
	if sel := c.b.Selected(); sel != nil {
		buf[0], buf[1] = sel.X, sel.Y
		_, _ = h.Write(buf[:])
	}
	_, _ = h.Write([]byte{c.param.SelectLimit})
	return h.Sum64()
}

func (c *completer) Apply(action GridAction) *completer {
	next := &completer{
		b:     c.b.Clone(),
		dist:  c.dist,
		table: c.table,
		param: c.param,
	}
	a := action
	next.prevAction = &a

	if action.IsSelect {
		next.b.Select(action.Select)
		next.param.SelectLimit--
		return next
	}

	selected := *c.b.Selected()
	nextSwap := c.b.Grid().MovePosTo(selected, action.Swap)
	next.dist = c.dist.SwapOn([2]grid.Pos{selected, nextSwap}, c.b.Field(), c.table)
	next.b.SwapTo(nextSwap)
	return next
}

// nextActions lists candidate actions: when nothing is selected yet,
// every out-of-place cell is a Select candidate; once a cell is
// selected, the four swap directions (minus the one undoing the
// previous swap) are candidates, plus — only right after a swap, with
// select budget remaining — a fresh Select for any other out-of-place
// cell.
func (c *completer) nextActions() []GridAction {
	var outOfPlace []grid.Pos
	c.b.Field().IterWithPos(func(pos, owner grid.Pos) {
		if pos != owner {
			outOfPlace = append(outOfPlace, owner)
		}
	})

	if c.prevAction == nil {
		actions := make([]GridAction, len(outOfPlace))
		for i, p := range outOfPlace {
			actions[i] = NewSelect(p)
		}
		return actions
	}

	selected := *c.b.Selected()
	var undoes basis.Movement
	wasSwap := !c.prevAction.IsSelect
	if wasSwap {
		undoes = c.prevAction.Swap.Opposite()
	}

	var actions []GridAction
	for _, to := range c.b.AroundOf(selected) {
		m := grid.BetweenPos(c.b.Grid(), selected, to)
		if wasSwap && m == undoes {
			continue
		}
		actions = append(actions, NewSwap(m))
	}

	if wasSwap && c.param.SelectLimit >= 1 {
		for _, p := range outOfPlace {
			if p != selected {
				actions = append(actions, NewSelect(p))
			}
		}
	}
	return actions
}

func (c *completer) isGoal() bool { return c.dist == 0 }

func (c *completer) costOn(action GridAction) cost {
	if action.IsSelect {
		return cost(c.param.SelectCost)
	}
	return cost(c.param.SwapCost)
}

// --- idastar.State[*completer, GridAction, cost] ---

func (c *completer) NextActions() []GridAction        { return c.nextActions() }
func (c *completer) IsGoal() bool                      { return c.isGoal() }
func (c *completer) Heuristic() cost                   { return cost(c.dist) }
func (c *completer) CostOn(action GridAction) cost     { return c.costOn(action) }
