package idastar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/idastar"
)

// lineCost is the smallest possible Cost[C]: a plain int distance.
type lineCost int

func (c lineCost) Less(o lineCost) bool { return c < o }
func (c lineCost) Add(o lineCost) lineCost { return c + o }

// lineState walks an integer line toward a fixed goal, one step at a
// time; NextActions always offers both directions so the search has to
// actually explore rather than following a single forced path.
type lineState struct {
	pos, goal int
}

func (s lineState) Hash() uint64                 { return uint64(s.pos + 1000) }
func (s lineState) Apply(step int) lineState     { return lineState{pos: s.pos + step, goal: s.goal} }
func (s lineState) NextActions() []int           { return []int{-1, 1} }
func (s lineState) IsGoal() bool                 { return s.pos == s.goal }
func (s lineState) Heuristic() lineCost {
	d := s.goal - s.pos
	if d < 0 {
		d = -d
	}
	return lineCost(d)
}
func (s lineState) CostOn(step int) lineCost { return 1 }

func TestSearchFindsTheShortestPathOnALine(t *testing.T) {
	start := lineState{pos: 0, goal: 4}
	actions, bound, ok := idastar.Search[lineState, int, lineCost](start, start.Heuristic(), lineCost(100))
	require.True(t, ok)
	require.Equal(t, lineCost(4), bound)
	require.Len(t, actions, 4)

	pos := start.pos
	for _, a := range actions {
		pos += a
	}
	require.Equal(t, start.goal, pos)
}

func TestSearchReturnsNotOkWhenLimitTooLow(t *testing.T) {
	start := lineState{pos: 0, goal: 50}
	_, _, ok := idastar.Search[lineState, int, lineCost](start, start.Heuristic(), lineCost(3))
	require.False(t, ok)
}

func TestSearchOnAnAlreadySolvedStateReturnsNoActions(t *testing.T) {
	start := lineState{pos: 7, goal: 7}
	actions, _, ok := idastar.Search[lineState, int, lineCost](start, start.Heuristic(), lineCost(10))
	require.True(t, ok)
	require.Empty(t, actions)
}
