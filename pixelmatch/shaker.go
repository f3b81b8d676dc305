package pixelmatch

import (
	"math"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/fragment"
)

// side is one of the two growing ends of a shaker chain.
type side struct {
	dir     basis.Dir
	list    []fragment.Fragment
	stopped bool
}

func (s *side) lastOrRoot(root fragment.Fragment) fragment.Fragment {
	if len(s.list) == 0 {
		return root
	}
	return s.list[len(s.list)-1]
}

// applyConfirmedPairs drains and applies any hint registered against this
// side's current leading edge, honoring the combined size budget against
// numFragment and the other side's current length.
func (s *side) applyConfirmedPairs(fragments *[]fragment.Fragment, hints *Hints, root fragment.Fragment, otherLen, numFragment int) {
	leading := s.lastOrRoot(root)
	pos := EdgePos{Pos: leading.Pos, Dir: s.dir}
	pair, ok := hints.TakeConfirmedPair(pos)
	if !ok {
		return
	}
	if len(s.list)+otherLen+len(pair.Tail)+1 > numFragment {
		return
	}
	for _, entry := range pair.Tail {
		f, found := findAndRemove(fragments, entry.Pos)
		if !found {
			return
		}
		s.list = append(s.list, f.Rotate(entry.Rot))
	}
	if pair.StopGrowth {
		s.stopped = true
	}
}

func (s *side) findMatch(fragments []fragment.Fragment, hints *Hints, root fragment.Fragment) diffEntry {
	leading := s.lastOrRoot(root)
	blocked := hints.TakeBlocklist(leading.Pos)
	d := findBySingleSide(fragments, leading.Edge(s.dir), blocked)
	if s.stopped {
		d.score = math.Inf(1)
	}
	return d
}

func (s *side) apply(fragments *[]fragment.Fragment, d diffEntry) {
	f, ok := findAndRemove(fragments, d.pos)
	if !ok {
		panic("pixelmatch: candidate fragment vanished before apply")
	}
	s.list = append(s.list, f.Rotate(s.dir.CalcRot(d.dir)))
}

// shakerFill grows two chains from root along dir and its opposite,
// greedily committing whichever side's best candidate scores lower at
// each step, until together with root they cover numFragment cells.
func shakerFill(numFragment uint8, fragments *[]fragment.Fragment, dir basis.Dir, root fragment.Fragment, hints *Hints) (near, far []fragment.Fragment) {
	nearSide := &side{dir: dir}
	farSide := &side{dir: dir.Opposite()}

	for len(nearSide.list)+len(farSide.list)+1 != int(numFragment) {
		farSide.applyConfirmedPairs(fragments, hints, root, len(nearSide.list), int(numFragment))
		nearSide.applyConfirmedPairs(fragments, hints, root, len(farSide.list), int(numFragment))

		if len(nearSide.list)+len(farSide.list)+1 == int(numFragment) {
			break
		}

		farScore := farSide.findMatch(*fragments, hints, root)
		nearScore := nearSide.findMatch(*fragments, hints, root)

		if farScore.score < nearScore.score {
			farSide.apply(fragments, farScore)
		} else {
			nearSide.apply(fragments, nearScore)
		}
	}

	return nearSide.list, farSide.list
}
