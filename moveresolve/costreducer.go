package moveresolve

import (
	"github.com/cespare/xxhash/v2"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/grid/board"
)

// costReducer is the beam-search state backing ReduceCost: rather than
// searching to a fully solved board, it stops as soon as dist has
// shrunk to a target fraction of its starting value — useful as a
// bounded-effort improvement pass rather than a full solve.
type costReducer struct {
	b           *board.Board
	prevAction  *GridAction
	initialDist SqManhattan
	dist        SqManhattan
	table       SqManhattanTable
	param       ResolveParam
	targetFrac  float64
}

func newCostReducer(b *board.Board, table SqManhattanTable, param ResolveParam, targetFrac float64) *costReducer {
	dist := NewSqManhattan(b.Field(), table)
	return &costReducer{
		b:           b,
		initialDist: dist,
		dist:        dist,
		table:       table,
		param:       param,
		targetFrac:  targetFrac,
	}
}

func (c *costReducer) Hash() uint64 {
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

func (c *costReducer) Apply(action GridAction) *costReducer {
	next := &costReducer{
		b:           c.b.Clone(),
		initialDist: c.initialDist,
		dist:        c.dist,
		table:       c.table,
		param:       c.param,
		targetFrac:  c.targetFrac,
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

func (c *costReducer) NextActions() []GridAction {
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

// IsGoal reports whether dist has fallen to targetFrac of its starting
// value. targetFrac is whatever ReduceCost's caller passed; no default is
// applied.
func (c *costReducer) IsGoal() bool {
	return float64(c.dist) <= c.targetFrac*float64(c.initialDist)
}

func (c *costReducer) CostOn(action GridAction) cost {
	if action.IsSelect {
		return cost(c.param.SelectCost)
	}
	return cost(c.param.SwapCost)
}

// MaxCost bounds a single beam-search pass to a fifth of the remaining
// distance, matching the reference cost reducer's pruning budget.
func (c *costReducer) MaxCost() cost { return cost(uint32(c.dist) / 5) }

func (c *costReducer) EnrichmentKey() int { return int(c.param.SelectLimit) }
