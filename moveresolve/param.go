package moveresolve

// ResolveParam bundles the contest-given knobs that shape a resolve: how
// many times a select may still be issued, and the relative cost of a
// select versus a swap operation — the same three fields the reference
// judge ships inside its problem definition.
type ResolveParam struct {
	SelectLimit uint8
	SwapCost    uint16
	SelectCost  uint16
}

// cost is the accumulating u64 cost type the exact (Completer) and
// approximate (costReducer) search states share, wrapped so it can
// implement idastar.Cost/beamsearch.Cost's Less/Add methods.
type cost uint64

func (c cost) Less(o cost) bool { return c < o }
func (c cost) Add(o cost) cost  { return c + o }
