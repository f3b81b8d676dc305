// Package fragment extracts square image fragments from a Problem's raw
// pixel buffer and exposes their four clockwise-oriented edges, the
// vocabulary the pixel-match engine compares fragment boundaries with.
//
// This mirrors the narrow, single-purpose feel of lvlath's matrix package
// (a small value type plus pure extraction/query functions, no mutable
// shared state) applied to image fragments instead of adjacency matrices.
package fragment

import (
	"fmt"

	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
)

// Edge is one side of a fragment: the direction it currently faces and
// the pixel strip along it.
type Edge struct {
	Dir    basis.Dir
	Pixels []basis.Color
}

// Edges holds the four sides of a fragment as extracted at rotation R0,
// indexed by their original (pre-rotation) direction.
type Edges [4]Edge

// NewEdges builds an Edges from the four clockwise strips.
func NewEdges(north, east, south, west []basis.Color) Edges {
	if len(north) != len(east) || len(north) != len(south) || len(north) != len(west) {
		panic("fragment: edges must all be the same length")
	}
	return Edges{
		{Dir: basis.North, Pixels: north},
		{Dir: basis.East, Pixels: east},
		{Dir: basis.South, Pixels: south},
		{Dir: basis.West, Pixels: west},
	}
}

func (e Edges) raw(dir basis.Dir) Edge { return e[dir] }

// Fragment is a square sub-image cut from the original picture, tracking
// its original position and current rotation.
type Fragment struct {
	Pos   grid.Pos
	Rot   basis.Rot
	edges Edges
}

// SideLength returns the pixel length of one edge.
func (f Fragment) SideLength() int { return len(f.edges[0].Pixels) }

// Edge returns the side of f currently facing dir, accounting for f's
// rotation. Rotating a fragment only relabels which stored edge faces
// which direction; the pixel data itself never moves.
func (f Fragment) Edge(dir basis.Dir) Edge {
	inverse := basis.Rot((4 - f.Rot.AsNum()%4) % 4)
	original := dir.Rotate(inverse)
	e := f.edges.raw(original)
	e.Dir = dir
	return e
}

// AllEdges returns all four sides of f, labeled with their current
// (post-rotation) facing directions, in N,E,S,W order.
func (f Fragment) AllEdges() [4]Edge {
	return [4]Edge{f.Edge(basis.North), f.Edge(basis.East), f.Edge(basis.South), f.Edge(basis.West)}
}

// Rotate returns a copy of f rotated by an additional rot.
func (f Fragment) Rotate(rot basis.Rot) Fragment {
	f.Rot = f.Rot.Add(rot)
	return f
}

// New extracts a single fragment from pixels, a dense row-major buffer of
// a wholeWidth-wide image, at grid cell pos, where each fragment is
// fragWidth x fragHeight pixels.
func New(pixels []basis.Color, pos grid.Pos, wholeWidth int, fragWidth, fragHeight uint16) Fragment {
	asIndex := func(x, y uint16) int {
		px := int(x) + int(pos.X)*int(fragWidth)
		py := int(y) + int(pos.Y)*int(fragHeight)
		return px + py*wholeWidth
	}

	var north, east, south, west []basis.Color
	for y := uint16(0); y < fragHeight; y++ {
		for x := uint16(0); x < fragWidth; x++ {
			idx := asIndex(x, y)
			if idx < 0 || idx >= len(pixels) {
				panic(fmt.Sprintf("fragment: pixel index %d out of range for buffer of length %d", idx, len(pixels)))
			}
			c := pixels[idx]
			if x == 0 {
				west = append(west, c)
			}
			if x == fragWidth-1 {
				east = append(east, c)
			}
			if y == 0 {
				north = append(north, c)
			}
			if y == fragHeight-1 {
				south = append(south, c)
			}
		}
	}
	// walking the edges clockwise means south and west are read in reverse
	// of the natural left-to-right, top-to-bottom scan above.
	reverseInPlace(south)
	reverseInPlace(west)

	return Fragment{
		Pos:   pos,
		Rot:   basis.R0,
		edges: NewEdges(north, east, south, west),
	}
}

func reverseInPlace(s []basis.Color) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// NewAll splits a whole image into R*C fragments, one per grid cell of
// width rows and height cols, in row-major order (row varies fastest).
func NewAll(pixels []basis.Color, width, height uint16, rows, cols uint8) []Fragment {
	g := grid.New(rows, cols)
	fragWidth := width / uint16(rows)
	fragHeight := height / uint16(cols)

	frags := make([]Fragment, 0, int(rows)*int(cols))
	for col := uint8(0); col < cols; col++ {
		for row := uint8(0); row < rows; row++ {
			pos := g.ClampingPos(row, col)
			frags = append(frags, New(pixels, pos, int(width), fragWidth, fragHeight))
		}
	}
	return frags
}
