package dijkstra

// Usage sketch:
//
//	path, cost, ok := dijkstra.Run(g, initialState, someIdentityCost)
//	if !ok {
//	    // no route: caller decides whether that is fatal
//	}
//
// A State implementation typically wraps a grid.Pos, an accumulated
// Cost, and whatever extra bookkeeping NextActions/Apply need (e.g. the
// tile being routed and the board it moves across). See
// moveresolve.tileRouteState for the concrete instance the row-solver
// uses.
