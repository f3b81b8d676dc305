package pixelmatch

import (
	"math"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/fragment"
	"github.com/tilecraft/fragsolve/grid"
)

// diffEntry is a scored candidate: fragment originally at pos would be
// placed so its side dir faces the reference edge, at the given score
// (lower is better).
type diffEntry struct {
	pos   grid.Pos
	dir   basis.Dir
	score float64
}

// averageDistance scores how well two equal-length pixel strips match:
// the mean Euclidean RGB distance over corresponding pairs.
func averageDistance(reference, challenge []basis.Color) float64 {
	n := len(reference)
	if n == 0 || n != len(challenge) {
		return math.MaxFloat64
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += reference[i].EuclideanDistance(challenge[i])
	}
	return sum / float64(n)
}

// reversed returns a new slice with s's elements in reverse order.
func reversed(s []basis.Color) []basis.Color {
	out := make([]basis.Color, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}

// findBest scans fragments, generating zero or more candidates per
// fragment via gen, and returns the one with the lowest score. Panics if
// fragments is empty, matching the engine's assumption that a candidate
// always exists while any fragment remains unplaced.
func findBest(fragments []fragment.Fragment, gen func(fragment.Fragment) []diffEntry) diffEntry {
	best := diffEntry{score: math.Inf(1)}
	found := false
	for _, f := range fragments {
		for _, d := range gen(f) {
			if !found || d.score < best.score {
				best = d
				found = true
			}
		}
	}
	if !found {
		panic("pixelmatch: no candidate fragment available")
	}
	return best
}

// findAndRemove removes and returns the fragment originally at pos.
func findAndRemove(fragments *[]fragment.Fragment, pos grid.Pos) (fragment.Fragment, bool) {
	for i, f := range *fragments {
		if f.Pos == pos {
			found := f
			*fragments = append((*fragments)[:i], (*fragments)[i+1:]...)
			return found, true
		}
	}
	return fragment.Fragment{}, false
}

// findBySingleSide scores every (fragment, dir) pair not excluded by
// blocked against a single reference edge, reading the candidate edge in
// reverse (adjacent fragments share a boundary walked in opposite senses).
func findBySingleSide(fragments []fragment.Fragment, reference fragment.Edge, blocked []EdgePos) diffEntry {
	return findBest(fragments, func(f fragment.Fragment) []diffEntry {
		var out []diffEntry
		for _, e := range f.AllEdges() {
			if isBlocked(blocked, f.Pos, e.Dir) {
				continue
			}
			out = append(out, diffEntry{
				pos:   f.Pos,
				dir:   e.Dir,
				score: averageDistance(reference.Pixels, reversed(e.Pixels)),
			})
		}
		return out
	})
}

var doubleSideDirPairs = [4][2]basis.Dir{
	{basis.North, basis.East},
	{basis.East, basis.South},
	{basis.South, basis.West},
	{basis.West, basis.North},
}

// findByDoubleSide scores every fragment's four adjacent edge pairs
// against a concatenated two-edge reference, excluding any pair whose
// blockIndex'th direction is blocked for that fragment.
func findByDoubleSide(fragments []fragment.Fragment, reference []basis.Color, blocked []EdgePos, blockIndex int) diffEntry {
	return findBest(fragments, func(f fragment.Fragment) []diffEntry {
		var out []diffEntry
		for _, pair := range doubleSideDirPairs {
			if isBlocked(blocked, f.Pos, pair[blockIndex]) {
				continue
			}
			edgeA := f.Edge(pair[0])
			edgeB := f.Edge(pair[1])
			challenge := append(append([]basis.Color{}, edgeA.Pixels...), edgeB.Pixels...)
			out = append(out, diffEntry{
				pos:   f.Pos,
				dir:   edgeA.Dir,
				score: averageDistance(reference, challenge),
			})
		}
		return out
	})
}
