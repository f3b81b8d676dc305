// Package dijkstra is a generic shortest-path search over Board-shaped
// state spaces. Any state that can report its position, its cost, its
// goal-ness, and its candidate next positions can be searched without
// this package knowing anything about fragments, boards, or move costs —
// the approximate row-solver instantiates it once per single-tile
// routing problem.
//
// Complexity:
//
//   - Time:  O((W*H) log (W*H)) per run, one heap pop/push pair per cell
//     relaxed at most once its shortest cost is finalized.
//   - Space: O(W*H) for the shortest-cost and back-pointer tables.
//
// It uses the lazy-decrease-key pattern (push duplicates, skip stale
// heap entries on pop); the "visited" check is folded into comparing
// the popped cost against the table's current best.
package dijkstra

import (
	"container/heap"

	"github.com/tilecraft/fragsolve/grid"
)

// Run searches g starting from start until a goal state is reached,
// returning the Pos path (start to goal, inclusive) and its total cost.
// identity must be a cost no real path can beat — the sentinel every
// unvisited cell is seeded with. Returns ok=false if no goal is
// reachable, which is not itself an error: callers decide whether an
// unreachable goal is fatal.
func Run[C Cost[C]](g grid.Grid, start State[C], identity C) (path []grid.Pos, cost C, ok bool) {
	shortest := grid.WithInit(g, identity)
	backPath := grid.WithInit[*grid.Pos](g, nil)

	shortest.Set(start.Pos(), start.Cost())

	pq := &priorityQueue[C]{start}
	heap.Init(pq)

	for pq.Len() > 0 {
		pick := heap.Pop(pq).(State[C])
		if shortest.Get(pick.Pos()).Less(pick.Cost()) {
			continue // a cheaper route to this cell was already finalized
		}

		if pick.IsGoal() {
			return extractBackPath(pick.Pos(), backPath), pick.Cost(), true
		}

		for _, next := range pick.NextActions() {
			if !pick.Cost().Less(shortest.Get(next)) {
				continue
			}
			applied, okApply := pick.Apply(next)
			if !okApply {
				continue
			}
			if !applied.Cost().Less(shortest.Get(applied.Pos())) {
				continue
			}
			shortest.Set(applied.Pos(), applied.Cost())
			from := pick.Pos()
			backPath.Set(applied.Pos(), &from)
			heap.Push(pq, applied)
		}
	}

	var zero C
	return nil, zero, false
}

func extractBackPath(pos grid.Pos, backPath grid.VecOnGrid[*grid.Pos]) []grid.Pos {
	history := []grid.Pos{pos}
	for {
		back := backPath.Get(pos)
		if back == nil {
			break
		}
		history = append(history, *back)
		pos = *back
	}
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return history
}

// priorityQueue is a container/heap min-heap over States ordered by cost.
type priorityQueue[C Cost[C]] []State[C]

func (pq priorityQueue[C]) Len() int { return len(pq) }
func (pq priorityQueue[C]) Less(i, j int) bool {
	return pq[i].Cost().Less(pq[j].Cost())
}
func (pq priorityQueue[C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue[C]) Push(x any) {
	*pq = append(*pq, x.(State[C]))
}

func (pq *priorityQueue[C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
