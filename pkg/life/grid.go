package life

import (
	"fmt"

	"conwaylife/pkg/core"
)

// MaxLength bounds the side of a grid to catch pathological allocations.
const MaxLength = 4096

// Grid is a square world of cells stored in row-major order. It has no
// wraparound: cells on the edge simply have fewer neighbours.
type Grid struct {
	length int
	seed   int64
	cells  []Cell
}

// NewGrid allocates a length×length grid and flips a seeded coin for every
// cell in row-major order.
func NewGrid(length int, seed int64) (*Grid, error) {
	if length <= 0 || length > MaxLength {
		return nil, fmt.Errorf("length %d not in [1, %d]: %w", length, MaxLength, ErrInvalidDimension)
	}
	g := &Grid{length: length, seed: seed, cells: make([]Cell, length*length)}
	rng := core.NewRNG(seed)
	for i := range g.cells {
		g.cells[i].Init(rng.Odd())
	}
	return g, nil
}

// Length returns the side of the grid.
func (g *Grid) Length() int { return g.length }

// Size returns the number of cells, length².
func (g *Grid) Size() int { return len(g.cells) }

// Seed returns the seed the grid was initialized from.
func (g *Grid) Seed() int64 { return g.seed }

func (g *Grid) index(row, col int) (int, error) {
	if row < 0 || row >= g.length || col < 0 || col >= g.length {
		return 0, fmt.Errorf("cell (%d, %d) outside [0, %d): %w", row, col, g.length, ErrOutOfBounds)
	}
	return row*g.length + col, nil
}

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (*Cell, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return nil, err
	}
	return &g.cells[idx], nil
}

// Alive reports the current state of (row, col). Coordinates outside the
// grid read as dead.
func (g *Grid) Alive(row, col int) bool {
	idx, err := g.index(row, col)
	if err != nil {
		return false
	}
	return g.cells[idx].AliveNow
}

// Set places a live or dead cell at (row, col), updating both flags. It is
// meant for seeding patterns between generations.
func (g *Grid) Set(row, col int, alive bool) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.cells[idx].Init(alive)
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Init(false)
	}
}

// Population counts the cells that are currently alive.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].AliveNow {
			n++
		}
	}
	return n
}

// Cells returns a row-major snapshot of the current states, 1 for alive.
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	for i := range g.cells {
		if g.cells[i].AliveNow {
			out[i] = 1
		}
	}
	return out
}

// CountLiveNeighbours counts the in-bounds neighbours of (row, col) whose
// AliveBefore flag is set.
func (g *Grid) CountLiveNeighbours(row, col int) (int, error) {
	if _, err := g.index(row, col); err != nil {
		return 0, err
	}
	return g.countAt(row, col), nil
}

func (g *Grid) countAt(row, col int) int {
	n := g.length
	count := 0
	for dy := -1; dy <= 1; dy++ {
		y := row + dy
		if y < 0 || y >= n {
			continue
		}
		base := y * n
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x := col + dx
			if x < 0 || x >= n {
				continue
			}
			if g.cells[base+x].AliveBefore {
				count++
			}
		}
	}
	return count
}

// AdvanceCell computes the next state of (row, col) into AliveNow.
func (g *Grid) AdvanceCell(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.advanceAt(idx, row, col)
	return nil
}

func (g *Grid) advanceAt(idx, row, col int) {
	c := &g.cells[idx]
	c.AliveNow = NextState(c.AliveBefore, g.countAt(row, col))
}

// advanceRows advances every cell in rows [start, end). It only writes
// AliveNow, so disjoint row ranges may run concurrently.
func (g *Grid) advanceRows(start, end int) {
	for row := start; row < end; row++ {
		base := row * g.length
		for col := 0; col < g.length; col++ {
			g.advanceAt(base+col, row, col)
		}
	}
}

// CommitGeneration makes every AliveNow the snapshot for the next step. Call
// it once per step, after every cell has been advanced.
func (g *Grid) CommitGeneration() {
	g.commitRows(0, g.length)
}

func (g *Grid) commitRows(start, end int) {
	cells := g.cells[start*g.length : end*g.length]
	for i := range cells {
		cells[i].AliveBefore = cells[i].AliveNow
	}
}
