// Package beamsearch is a generic parallel beam search: the cost reducer
// behind moveresolve.ReduceCost instantiates it, with the tracked
// lower bound (max cost) acting as a pruning cutoff and the remaining
// select budget acting as the diversification "enrichment key" so the
// beam doesn't collapse onto a single select-count strategy.
//
// Successor expansion for the current frontier fans out across a worker
// pool (golang.org/x/sync/errgroup), guarded by a single mutex over the
// per-enrichment-key accumulation map — the same "expand in parallel,
// merge under one lock" shape the reference implementation used its
// runtime's data-parallel iterator for.
package beamsearch

import (
	"iter"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Cost is an accumulating, totally ordered cost.
type Cost[C any] interface {
	Less(other C) bool
	Add(other C) C
}

// State is one node of a beam search.
type State[S any, A any, C Cost[C]] interface {
	Hash() uint64
	Apply(action A) S
	NextActions() []A
	IsGoal() bool
	CostOn(action A) C
	// MaxCost is a pruning bound: any node whose accumulated cost
	// reaches it is not expanded further.
	MaxCost() C
	// EnrichmentKey buckets this state for beam diversification.
	EnrichmentKey() int
}

type node[S any, A any, C any] struct {
	state  S
	answer []A
	cost   C
}

// Search runs a beam search from initial. Each frontier expansion keeps,
// from each of its k enrichment-key buckets, the beamWidth/k cheapest
// successors, so the frontier never exceeds beamWidth nodes. It returns an iterator that
// yields progressively discovered candidate answers — one per goal state
// reached — so a caller can take the first one or keep pulling for a
// cheaper one, until the frontier runs dry and the sequence ends.
func Search[S State[S, A, C], A any, C Cost[C]](initial S, beamWidth int) iter.Seq2[[]A, C] {
	return func(yield func([]A, C) bool) {
		var zero C
		if initial.IsGoal() {
			yield(nil, zero)
			return
		}

		maxCost := initial.MaxCost()
		visited := map[uint64]struct{}{initial.Hash(): {}}
		visitedGoals := map[uint64]struct{}{}
		frontier := []node[S, A, C]{{state: initial, answer: nil, cost: zero}}

		for {
			nexts, goal, found := expandFrontier(frontier, maxCost, visited, beamWidth)
			if found {
				visitedGoals[goal.state.Hash()] = struct{}{}
				if !yield(goal.answer, goal.cost) {
					return
				}
				// Keep searching for a better candidate from the same
				// frontier, having marked this goal so it isn't
				// rediscovered.
				for h := range visitedGoals {
					visited[h] = struct{}{}
				}
				continue
			}
			if len(nexts) == 0 {
				return
			}

			for _, bucket := range nexts {
				for _, n := range bucket {
					visited[n.state.Hash()] = struct{}{}
				}
			}

			kindsOfKey := len(nexts)
			takeLen := beamWidth / kindsOfKey
			if takeLen == 0 {
				return
			}

			keys := make([]int, 0, kindsOfKey)
			for k := range nexts {
				keys = append(keys, k)
			}
			sort.Ints(keys)

			var newFrontier []node[S, A, C]
			for _, k := range keys {
				bucket := nexts[k]
				sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].cost.Less(bucket[j].cost) })
				if len(bucket) > takeLen {
					bucket = bucket[:takeLen]
				}
				newFrontier = append(newFrontier, bucket...)
			}
			frontier = newFrontier
		}
	}
}

// expandFrontier generates every successor of every node in frontier
// whose cost has not yet reached maxCost, parallelized across a worker
// pool, grouped by enrichment key. If any successor is a goal, it is
// returned as (goal, true) alongside the fully built nexts.
func expandFrontier[S State[S, A, C], A any, C Cost[C]](
	frontier []node[S, A, C],
	maxCost C,
	visited map[uint64]struct{},
	beamWidth int,
) (nexts map[int][]node[S, A, C], goal node[S, A, C], found bool) {
	var mu sync.Mutex
	nexts = make(map[int][]node[S, A, C], beamWidth)

	var g errgroup.Group
	for _, n := range frontier {
		n := n
		g.Go(func() error {
			if !n.cost.Less(maxCost) {
				return nil
			}
			for _, action := range n.state.NextActions() {
				nextCost := n.cost.Add(n.state.CostOn(action))
				nextState := n.state.Apply(action)
				h := nextState.Hash()

				mu.Lock()
				_, seen := visited[h]
				if !seen {
					answer := append(append([]A(nil), n.answer...), action)
					key := nextState.EnrichmentKey()
					nexts[key] = append(nexts[key], node[S, A, C]{state: nextState, answer: answer, cost: nextCost})
				}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, bucket := range nexts {
		for _, n := range bucket {
			if n.state.IsGoal() {
				return nexts, n, true
			}
		}
	}
	return nexts, node[S, A, C]{}, false
}
