package moveresolve

import (
	"errors"

	"github.com/tilecraft/fragsolve/dijkstra"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/grid/board"
)

// ErrNoRoute is returned by SolveRows when some cell's route to its goal
// is blocked by already-locked (placed) cells — spec.md's "Routine R
// failure" soft-failure case, which the caller is expected to recover
// from by trying a different row order or falling through to an exact
// finishing pass, never by panicking.
var ErrNoRoute = errors.New("moveresolve: no route found for the current row ordering")

// stepCost is a plain swap-count cost, used only to find a structurally
// valid route for a single tile — not the LeastMovements heuristic,
// since once a route's shape is fixed the actual action cost is
// determined by ActionsToOperations regardless of how it was found.
type stepCost uint32

func (c stepCost) Less(o stepCost) bool   { return c < o }
func (c stepCost) Op(o stepCost) stepCost { return c + o }

type tileRouteState struct {
	b    *board.Board
	pos  grid.Pos
	goal grid.Pos
	cost stepCost
}

func (s tileRouteState) Cost() stepCost         { return s.cost }
func (s tileRouteState) Pos() grid.Pos          { return s.pos }
func (s tileRouteState) IsGoal() bool           { return s.pos == s.goal }
func (s tileRouteState) NextActions() []grid.Pos { return s.b.AroundOf(s.pos) }
func (s tileRouteState) Apply(newPos grid.Pos) (dijkstra.State[stepCost], bool) {
	return tileRouteState{b: s.b, pos: newPos, goal: s.goal, cost: s.cost + 1}, true
}

// routeTile returns the Select-then-swap-chain that walks the tile
// currently at from to goal, avoiding b's locked cells. Returns
// ErrNoRoute if no such path exists.
func routeTile(b *board.Board, from, goal grid.Pos) ([]GridAction, error) {
	if from == goal {
		return nil, nil
	}
	start := tileRouteState{b: b, pos: from, goal: goal}
	path, _, ok := dijkstra.Run[stepCost](b.Grid(), start, stepCost(1<<30))
	if !ok {
		return nil, ErrNoRoute
	}
	actions := make([]GridAction, 0, len(path))
	actions = append(actions, NewSelect(path[0]))
	for i := 1; i < len(path); i++ {
		actions = append(actions, NewSwap(grid.BetweenPos(b.Grid(), path[i-1], path[i])))
	}
	return actions, nil
}

// applyActions mutates b by walking through actions in order, the same
// way the contest server would interpret them.
func applyActions(b *board.Board, actions []GridAction) {
	for _, a := range actions {
		if a.IsSelect {
			b.Select(a.Select)
			continue
		}
		sel := *b.Selected()
		b.SwapTo(b.Grid().MovePosTo(sel, a.Swap))
	}
}

// SolveRows implements the approximate ring-by-ring resolver (spec.md
// §4.5's Routine R). A board.Finder starts out covering the whole grid;
// each of its four edges is, in turn, the "top" row Iter walks. After
// routing every out-of-place cell on that edge home and locking it, the
// viewport is sliced down by one row and rotated a quarter turn so the
// next edge becomes the new top — four such steps peel one full outer
// ring off the board. The loop keeps peeling rings inward until the
// remaining viewport is down to a 2-wide or 2-tall core, at which point
// it stops and returns what it has, leaving the core for an exact
// finishing pass.
//
// param.SelectLimit is not consulted here: every tile route opens its
// own Select, so a caller that also wants to respect a hard select
// budget should treat SolveRows as the first pass and let the finishing
// pass absorb the remainder.
func SolveRows(b *board.Board, param ResolveParam) ([]GridAction, error) {
	var all []GridAction
	finder := b.NewFinder()

	for finder.Width() > 2 && finder.Height() > 2 {
		for edge := 0; edge < 4; edge++ {
			row := finder.Iter().Collect()
			for _, goalPos := range row {
				if b.Forward(goalPos) == goalPos {
					continue
				}
				from := b.Reverse(goalPos)
				actions, err := routeTile(b, from, goalPos)
				if err != nil {
					return all, err
				}
				applyActions(b, actions)
				all = append(all, actions...)
				b.Lock(goalPos)
			}
			finder.SliceUp()
			finder.RotateTo(1)
		}
	}
	return all, nil
}
