package pixelmatch

import (
	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
)

// EdgePos names one side of one grid cell: the fragment currently (or
// eventually) placed there, and which of its four sides.
type EdgePos struct {
	Pos grid.Pos
	Dir basis.Dir
}

// Blocklist forbids a candidate edge from being chosen when matching
// outward from Anchor: Forbidden names the (fragment original position,
// direction) pair that must be excluded from the candidate pool.
type Blocklist struct {
	Anchor    grid.Pos
	Forbidden EdgePos
}

// TailEntry is one forced placement within a ConfirmedPair's tail: the
// fragment originally at Pos must be placed with rotation Rot.
type TailEntry struct {
	Pos grid.Pos
	Rot basis.Rot
}

// ConfirmedPair forces the fragments following Reference to be placed in
// order with the given rotations, bypassing the normal scoring search.
// If StopGrowth is set, the side that consumed this pair stops growing
// once the tail has been placed.
type ConfirmedPair struct {
	Reference  EdgePos
	Tail       []TailEntry
	StopGrowth bool
}

// Hints carries operator-provided corrections into the pixel-match
// engine. Entries are drained (removed) the moment they are applied, so
// a hint affects at most one match.
type Hints struct {
	blocklist []Blocklist
	confirmed []ConfirmedPair
}

// NewHints returns an empty Hints.
func NewHints() *Hints {
	return &Hints{}
}

// AddBlocklist registers a blocklist entry.
func (h *Hints) AddBlocklist(b Blocklist) {
	h.blocklist = append(h.blocklist, b)
}

// AddConfirmedPair registers a confirmed-pair entry.
func (h *Hints) AddConfirmedPair(c ConfirmedPair) {
	h.confirmed = append(h.confirmed, c)
}

// TakeBlocklist drains and returns every forbidden EdgePos registered
// against anchor.
func (h *Hints) TakeBlocklist(anchor grid.Pos) []EdgePos {
	if h == nil {
		return nil
	}
	var out []EdgePos
	kept := h.blocklist[:0]
	for _, b := range h.blocklist {
		if b.Anchor == anchor {
			out = append(out, b.Forbidden)
		} else {
			kept = append(kept, b)
		}
	}
	h.blocklist = kept
	return out
}

// TakeConfirmedPair drains and returns the ConfirmedPair registered
// against reference, if any.
func (h *Hints) TakeConfirmedPair(reference EdgePos) (ConfirmedPair, bool) {
	if h == nil {
		return ConfirmedPair{}, false
	}
	for i, c := range h.confirmed {
		if c.Reference == reference {
			h.confirmed = append(h.confirmed[:i], h.confirmed[i+1:]...)
			return c, true
		}
	}
	return ConfirmedPair{}, false
}

func isBlocked(blocked []EdgePos, pos grid.Pos, dir basis.Dir) bool {
	for _, b := range blocked {
		if b.Pos == pos && b.Dir == dir {
			return true
		}
	}
	return false
}
