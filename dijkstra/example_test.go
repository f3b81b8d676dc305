package dijkstra_test

import (
	"fmt"

	"github.com/tilecraft/fragsolve/dijkstra"
	"github.com/tilecraft/fragsolve/grid"
)

// ExampleRun shows the shortest-hop route between two cells of a 6x6
// toroidal grid, where wrapping around an edge can be cheaper than
// walking straight across it.
func ExampleRun() {
	g := grid.New(6, 6)
	start := walkState{g: g, pos: g.Pos(5, 0), goal: g.Pos(1, 0), cost: 0}

	_, cost, ok := dijkstra.Run[intCost](g, start, identity)
	if !ok {
		fmt.Println("no route")
		return
	}
	fmt.Println(cost)
	// Output: 2
}
