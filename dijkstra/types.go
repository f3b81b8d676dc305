package dijkstra

import (
	"github.com/tilecraft/fragsolve/grid"
)

// Cost is an accumulating, totally ordered cost value. Implementations
// are expected to be small value types (a wrapped uint32 is typical).
type Cost[C any] interface {
	// Less reports whether c is strictly cheaper than other.
	Less(other C) bool
	// Op combines c with other, used to accumulate path cost.
	Op(other C) C
}

// State is one node of a search over a Grid's position space: its
// current position, its accumulated cost, whether it is a goal, and how
// to expand it. Search states are expected to be small and cheap to
// copy; Apply returns a new state rather than mutating in place.
type State[C Cost[C]] interface {
	Cost() C
	Pos() grid.Pos
	IsGoal() bool
	// NextActions lists candidate next positions to try moving to.
	NextActions() []grid.Pos
	// Apply returns the state reached by moving to newPos, or false if
	// that move is not presently legal from this state.
	Apply(newPos grid.Pos) (State[C], bool)
}
