package moveresolve

import (
	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/grid"
)

// GridAction is one atomic step of a solved move sequence: either select
// a new cursor cell, or swap the cursor one step in a direction.
type GridAction struct {
	IsSelect bool
	Select   grid.Pos
	Swap     basis.Movement
}

// NewSelect builds a select action.
func NewSelect(pos grid.Pos) GridAction {
	return GridAction{IsSelect: true, Select: pos}
}

// NewSwap builds a swap action.
func NewSwap(m basis.Movement) GridAction {
	return GridAction{IsSelect: false, Swap: m}
}

// ActionsToOperations folds a flat action sequence into contest
// operations: every Select opens a new Operation, and every Swap that
// follows appends to the currently open one.
func ActionsToOperations(actions []GridAction) []basis.Operation {
	if len(actions) == 0 {
		return nil
	}
	var operations []basis.Operation
	var current *basis.Operation
	for _, a := range actions {
		if a.IsSelect {
			if current != nil {
				operations = append(operations, *current)
			}
			current = &basis.Operation{Select: [2]uint8{a.Select.X, a.Select.Y}}
		} else {
			if current == nil {
				panic("moveresolve: swap action before any select")
			}
			current.Movements = append(current.Movements, a.Swap)
		}
	}
	if current != nil {
		operations = append(operations, *current)
	}
	return operations
}
