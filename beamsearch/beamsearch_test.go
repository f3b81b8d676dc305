package beamsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/fragsolve/beamsearch"
)

type lineCost int

func (c lineCost) Less(o lineCost) bool    { return c < o }
func (c lineCost) Add(o lineCost) lineCost { return c + o }

// lineState walks an integer line toward a fixed goal; EnrichmentKey
// buckets by parity so the beam keeps both even and odd branches alive
// instead of collapsing onto one, exercising the diversification path.
type lineState struct {
	pos, goal, max int
}

func (s lineState) Hash() uint64             { return uint64(s.pos + 1000) }
func (s lineState) Apply(step int) lineState { return lineState{pos: s.pos + step, goal: s.goal, max: s.max} }
func (s lineState) NextActions() []int       { return []int{-1, 1} }
func (s lineState) IsGoal() bool             { return s.pos == s.goal }
func (s lineState) CostOn(step int) lineCost { return 1 }
func (s lineState) MaxCost() lineCost        { return lineCost(s.max) }
func (s lineState) EnrichmentKey() int {
	if s.pos < 0 {
		return -s.pos % 2
	}
	return s.pos % 2
}

func TestSearchYieldsAPathReachingTheGoal(t *testing.T) {
	start := lineState{pos: 0, goal: 3, max: 10}
	var got []int
	for actions, cost := range beamsearch.Search[lineState, int, lineCost](start, 8) {
		got = actions
		require.Equal(t, lineCost(len(actions)), cost)
		break
	}
	require.NotNil(t, got)

	pos := start.pos
	for _, a := range got {
		pos += a
	}
	require.Equal(t, start.goal, pos)
}

func TestSearchOnAnAlreadySolvedStateYieldsEmptyActions(t *testing.T) {
	start := lineState{pos: 5, goal: 5, max: 10}
	for actions, cost := range beamsearch.Search[lineState, int, lineCost](start, 8) {
		require.Empty(t, actions)
		require.Equal(t, lineCost(0), cost)
		return
	}
	t.Fatal("expected at least one yielded candidate")
}

func TestSearchStopsPullingWhenConsumerBreaksEarly(t *testing.T) {
	start := lineState{pos: 0, goal: 3, max: 10}
	count := 0
	for range beamsearch.Search[lineState, int, lineCost](start, 8) {
		count++
		break
	}
	require.Equal(t, 1, count)
}
