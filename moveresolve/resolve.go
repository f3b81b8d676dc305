package moveresolve

import (
	"iter"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/beamsearch"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/grid/board"
	"github.com/tilecraft/fragsolve/idastar"
)

// exactThreshold is the cell count under which Resolve searches exactly
// via idastar rather than falling back to the approximate row solver —
// spec.md §4.4/§4.5's W*H < 36 split.
const exactThreshold = 36

// exactLimitCost bounds how far idastar will raise its bound before
// giving up; set well above anything a 36-cell board could need.
const exactLimitCost cost = 1 << 40

// buildBoard turns a flat (from, to) movement list into a Board: every
// fragment named by a Movement2 sits at From and belongs at To; every
// position the list leaves unmentioned already holds its own fragment.
func buildBoard(g grid.Grid, movements []grid.Movement2) *board.Board {
	field := grid.WithDefault[grid.Pos](g)
	r := g.AllPos()
	for {
		p, ok := r.Next()
		if !ok {
			break
		}
		field.Set(p, p)
	}
	for _, m := range movements {
		field.Set(m.From, m.To)
	}
	return board.New(nil, field)
}

// Resolve turns a flat permutation (as produced by fragment.MapFragment)
// into a sequence of contest operations: a board built from movements is
// solved exactly via idastar when it is small enough (spec.md §4.4), or
// approximately via SolveRows followed by an exact finishing pass over
// whatever SolveRows could not place (spec.md §4.5/§7's soft-failure
// policy). The returned iterator yields at most one candidate on either
// path: the exact path yields nothing if idastar gives up, and the
// approximate path yields SolveRows's actions alone if the finishing
// search gives up.
func Resolve(g grid.Grid, movements []grid.Movement2, param ResolveParam) iter.Seq[[]basis.Operation] {
	b := buildBoard(g, movements)
	table := PreCalcSqManhattan(g)

	if int(g.Width)*int(g.Height) < exactThreshold {
		return func(yield func([]basis.Operation) bool) {
			start := newCompleter(b, table, param)
			actions, _, ok := idastar.Search[*completer, GridAction, cost](start, start.Heuristic(), exactLimitCost)
			if !ok {
				return
			}
			yield(ActionsToOperations(actions))
		}
	}

	return func(yield func([]basis.Operation) bool) {
		// SolveRows mutates its own clone and locks every cell it
		// places; rough is replayed from scratch below so the
		// finishing pass starts from an unlocked board regardless of
		// whether SolveRows finished every row or returned ErrNoRoute
		// partway through. There is no retry with a different row
		// ordering here — SolveRows only has the one clockwise sweep
		// order — so an ErrNoRoute is treated the same as a clean
		// finish: whatever prefix of actions it produced is kept and
		// the exact finishing pass below absorbs everything else.
		rough, _ := SolveRows(b.Clone(), param)
		working := b.Clone()
		applyActions(working, rough)

		start := newCompleter(working, table, param)
		finish, _, ok := idastar.Search[*completer, GridAction, cost](start, start.Heuristic(), exactLimitCost)
		if !ok {
			yield(ActionsToOperations(rough))
			return
		}
		yield(ActionsToOperations(append(append([]GridAction(nil), rough...), finish...)))
	}
}

// ReduceCost runs the beam-search cost reducer over b, stopping once
// SqManhattan has fallen to targetFrac of its starting value. It yields
// every candidate beamsearch.Search finds, cheapest-effort first.
func ReduceCost(b *board.Board, param ResolveParam, targetFrac float64) iter.Seq2[[]GridAction, SqManhattan] {
	table := PreCalcSqManhattan(b.Grid())
	start := newCostReducer(b, table, param, targetFrac)
	return func(yield func([]GridAction, SqManhattan) bool) {
		for actions, _ := range beamsearch.Search[*costReducer, GridAction, cost](start, beamWidth) {
			working := b.Clone()
			applyActions(working, actions)
			dist := NewSqManhattan(working.Field(), table)
			if !yield(actions, dist) {
				return
			}
		}
	}
}

// beamWidth is the frontier width ReduceCost's beam search keeps, wide
// enough to diversify across select-budget buckets on a typical board.
const beamWidth = 64
