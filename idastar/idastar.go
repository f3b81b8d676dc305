// Package idastar is a generic iterative-deepening A* search: the exact
// move-resolver instantiates it once, over a state that packages a Board
// together with its remaining select budget and chosen distance
// heuristic.
//
// States are deduplicated per bound-iteration by a 64-bit hash rather
// than full equality, trading an astronomically small collision
// probability for not having to make every search state a native Go map
// key — states here embed a board's permutation slices and lock set,
// which would otherwise block direct map use.
package idastar

// Cost is an accumulating, totally ordered cost.
type Cost[C any] interface {
	Less(other C) bool
	Add(other C) C
}

// State is one node of an IDA* search. Hash should be a fast, well
// distributed 64-bit digest of everything that makes two states
// equivalent for the purposes of search deduplication.
type State[S any, A any, C Cost[C]] interface {
	Hash() uint64
	Apply(action A) S
	NextActions() []A
	IsGoal() bool
	Heuristic() C
	CostOn(action A) C
}

type findResult[C any] struct {
	found  bool
	deeper bool
	cost   C
}

func find[S State[S, A, C], A any, C Cost[C]](
	node S,
	history *[]A,
	visited map[uint64]struct{},
	distance C,
	bound C,
	limitCost C,
) findResult[C] {
	if !distance.Less(limitCost) {
		return findResult[C]{}
	}
	totalEstimated := distance.Add(node.Heuristic())
	if bound.Less(totalEstimated) {
		return findResult[C]{deeper: true, cost: totalEstimated}
	}
	if node.IsGoal() {
		return findResult[C]{found: true}
	}

	var min C
	haveMin := false
	for _, action := range node.NextActions() {
		next := node.Apply(action)
		h := next.Hash()
		if _, seen := visited[h]; seen {
			continue
		}
		visited[h] = struct{}{}

		*history = append(*history, action)
		nextDistance := distance.Add(node.CostOn(action))
		result := find[S](next, history, visited, nextDistance, bound, limitCost)
		switch {
		case result.found:
			return result
		case result.deeper:
			if !haveMin || result.cost.Less(min) {
				min = result.cost
				haveMin = true
			}
		}
		*history = (*history)[:len(*history)-1]
	}

	if haveMin {
		return findResult[C]{deeper: true, cost: min}
	}
	return findResult[C]{}
}

// Search runs iterative-deepening A* from start, raising the cost bound
// to the minimum overflow seen at each failed iteration, until a goal is
// found or limitCost is exhausted. Returns the action history and the
// bound at which the goal was found, or ok=false if limitCost was
// reached with no solution.
func Search[S State[S, A, C], A any, C Cost[C]](start S, lowerBound, limitCost C) ([]A, C, bool) {
	var history []A
	bound := lowerBound
	var zero C

	for {
		visited := map[uint64]struct{}{start.Hash(): {}}
		result := find[S](start, &history, visited, zero, bound, limitCost)
		switch {
		case result.found:
			return history, bound, true
		case result.deeper:
			bound = result.cost
		default:
			return nil, zero, false
		}
	}
}
