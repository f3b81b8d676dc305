package grid

// RangePos iterates a rectangular sub-band of a Grid in row-major order,
// inclusive of both corners.
type RangePos struct {
	grid             Grid
	startX, endX     uint8
	x, y             uint8
	endY             uint8
	exhausted        bool
}

// Range returns an iterator over the rectangle from topLeft to
// bottomRight (inclusive), row-major. Panics if the corners are crossed.
func (g Grid) Range(topLeft, bottomRight Pos) RangePos {
	if topLeft.X > bottomRight.X || topLeft.Y > bottomRight.Y {
		panic("grid: range corners are crossed")
	}
	return RangePos{
		grid:   g,
		startX: topLeft.X,
		endX:   bottomRight.X,
		x:      topLeft.X,
		y:      topLeft.Y,
		endY:   bottomRight.Y,
	}
}

// AllPos returns an iterator over every Pos in g, row-major.
func (g Grid) AllPos() RangePos {
	return g.Range(Pos{0, 0}, Pos{g.Width - 1, g.Height - 1})
}

// Next returns the next Pos in the range and true, or the zero Pos and
// false once exhausted.
func (r *RangePos) Next() (Pos, bool) {
	if r.exhausted || r.y > r.endY {
		return Pos{}, false
	}
	ret := Pos{r.x, r.y}
	r.x++
	if r.x > r.endX {
		r.y++
		r.x = r.startX
	}
	if r.y > r.endY {
		r.exhausted = true
	}
	return ret, true
}

// Collect drains the range into a slice.
func (r RangePos) Collect() []Pos {
	var out []Pos
	for {
		p, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}
