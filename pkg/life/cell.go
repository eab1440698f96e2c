package life

// Cell is a single automaton unit. AliveBefore is the snapshot neighbours are
// counted against; AliveNow is the state being computed for this step.
type Cell struct {
	AliveNow    bool
	AliveBefore bool
}

// Init sets both flags to alive so the cell starts from a consistent snapshot.
func (c *Cell) Init(alive bool) {
	c.AliveNow = alive
	c.AliveBefore = alive
}
