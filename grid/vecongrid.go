package grid

// VecOnGrid is a dense container of one T per Pos in a Grid, addressable
// by Pos instead of a raw row-major index. It backs permutation fields
// (Board.forward/reverse) and auxiliary maps (Dijkstra back-pointers,
// distance tables) alike.
type VecOnGrid[T any] struct {
	Grid Grid
	vec  []T
}

// WithInit builds a VecOnGrid where every cell holds a copy of init.
func WithInit[T any](g Grid, init T) VecOnGrid[T] {
	vec := make([]T, int(g.Width)*int(g.Height))
	for i := range vec {
		vec[i] = init
	}
	return VecOnGrid[T]{Grid: g, vec: vec}
}

// WithDefault builds a VecOnGrid where every cell holds T's zero value.
func WithDefault[T any](g Grid) VecOnGrid[T] {
	return VecOnGrid[T]{Grid: g, vec: make([]T, int(g.Width)*int(g.Height))}
}

// Get returns the value stored at pos.
func (v VecOnGrid[T]) Get(pos Pos) T {
	return v.vec[v.Grid.Index(pos)]
}

// Set stores value at pos.
func (v VecOnGrid[T]) Set(pos Pos, value T) {
	v.vec[v.Grid.Index(pos)] = value
}

// Swap exchanges the values stored at a and b.
func (v VecOnGrid[T]) Swap(a, b Pos) {
	ia, ib := v.Grid.Index(a), v.Grid.Index(b)
	v.vec[ia], v.vec[ib] = v.vec[ib], v.vec[ia]
}

// Clone returns a deep-enough copy: a new backing array with the same
// element values (a shallow copy of each T).
func (v VecOnGrid[T]) Clone() VecOnGrid[T] {
	cp := make([]T, len(v.vec))
	copy(cp, v.vec)
	return VecOnGrid[T]{Grid: v.Grid, vec: cp}
}

// IterWithPos calls fn for every (Pos, value) pair in row-major order.
func (v VecOnGrid[T]) IterWithPos(fn func(Pos, T)) {
	r := v.Grid.AllPos()
	for {
		p, ok := r.Next()
		if !ok {
			return
		}
		fn(p, v.Get(p))
	}
}

// Values returns every stored value in row-major order.
func (v VecOnGrid[T]) Values() []T {
	cp := make([]T, len(v.vec))
	copy(cp, v.vec)
	return cp
}
