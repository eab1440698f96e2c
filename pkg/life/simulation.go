package life

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Simulation drives a grid through a fixed number of generations, rendering
// each one before advancing it.
type Simulation struct {
	generations int
	grid        *Grid
	renderer    Renderer
	workers     int
	logger      *log.Logger

	completed int
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithWorkers splits each advance across n goroutines. Values below 2 keep
// the advance sequential.
func WithWorkers(n int) Option {
	return func(s *Simulation) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

// WithLogger sets the logger used for run progress.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSimulation builds a simulation that produces generations frames. The
// grid is owned by the simulation; the renderer is only borrowed and may be
// nil to advance silently.
func NewSimulation(generations int, grid *Grid, renderer Renderer, opts ...Option) *Simulation {
	s := &Simulation{
		generations: generations,
		grid:        grid,
		renderer:    renderer,
		workers:     1,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the simulated grid.
func (s *Simulation) Grid() *Grid { return s.grid }

// Generation reports how many advances have completed.
func (s *Simulation) Generation() int { return s.completed }

// Run renders and advances the grid once per generation, in order.
func (s *Simulation) Run() error {
	if s.grid == nil {
		return fmt.Errorf("run: %w", ErrNoGrid)
	}
	s.logger.Info("simulation started",
		"length", s.grid.Length(), "seed", s.grid.Seed(),
		"generations", s.generations, "workers", s.workers,
	)
	debug := s.logger.GetLevel() <= log.DebugLevel
	for gen := 0; gen < s.generations; gen++ {
		if s.renderer != nil {
			s.renderer.Render(gen, s.grid)
		}
		if err := s.Advance(); err != nil {
			return err
		}
		if debug {
			s.logger.Debug("generation advanced", "generation", gen, "population", s.grid.Population())
		}
	}
	s.logger.Info("simulation finished", "generations", s.generations, "population", s.grid.Population())
	return nil
}

// Advance computes the next state of every cell from the current snapshot
// and then commits the whole grid once.
func (s *Simulation) Advance() error {
	if s.grid == nil {
		return fmt.Errorf("advance: %w", ErrNoGrid)
	}
	g := s.grid
	chunks := rowChunks(g.Length(), s.workers)
	if len(chunks) <= 1 {
		g.advanceRows(0, g.Length())
		g.CommitGeneration()
		s.completed++
		return nil
	}

	var advance errgroup.Group
	for _, c := range chunks {
		advance.Go(func() error {
			g.advanceRows(c[0], c[1])
			return nil
		})
	}
	// Every AliveNow must be written before any AliveBefore changes.
	if err := advance.Wait(); err != nil {
		return err
	}

	var commit errgroup.Group
	for _, c := range chunks {
		commit.Go(func() error {
			g.commitRows(c[0], c[1])
			return nil
		})
	}
	if err := commit.Wait(); err != nil {
		return err
	}
	s.completed++
	return nil
}

// rowChunks splits rows into at most workers contiguous [start, end) ranges,
// spreading the remainder over the first chunks.
func rowChunks(rows, workers int) [][2]int {
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}
	if rows == 0 {
		return nil
	}
	per := rows / workers
	extra := rows % workers
	chunks := make([][2]int, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		n := per
		if i < extra {
			n++
		}
		chunks = append(chunks, [2]int{start, start + n})
		start += n
	}
	return chunks
}
