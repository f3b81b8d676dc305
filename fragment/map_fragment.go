package fragment

import "github.com/tilecraft/fragsolve/grid"

// MapFragment reads a matched fragment grid and returns the (current,
// original) position pairs for every fragment that is not already at its
// original position — the permutation movements the move-resolver needs.
func MapFragment(matched grid.VecOnGrid[Fragment]) []grid.PosPair {
	var out []grid.PosPair
	matched.IterWithPos(func(pos grid.Pos, frag Fragment) {
		if frag.Pos != pos {
			out = append(out, grid.PosPair{From: pos, To: frag.Pos})
		}
	})
	return out
}
