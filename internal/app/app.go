//go:build ebiten

// Package app provides the ebiten window renderer.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"sync"
	"sync/atomic"

	"conwaylife/internal/core"
	"conwaylife/internal/render"
	"conwaylife/internal/ui"
	"conwaylife/pkg/life"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Available reports whether the window renderer was compiled in.
const Available = true

const hudWidth = 140

var helpLines = []string{"space  pause", "n      step", "q      quit"}

type frame struct {
	generation int
	population int
	pixels     []byte
}

// Window shows generations in an ebiten window. Render blocks until the GUI
// takes the frame, so pausing the window also pauses the simulation.
type Window struct {
	length int
	scale  int
	tps    int
	title  string
	seed   int64
	logger *log.Logger

	onColor  color.Color
	offColor color.Color

	frames    chan frame
	closed    chan struct{}
	closeOnce sync.Once
	finished  atomic.Bool

	painter  *GridPainter
	hud      *ui.HUD
	step     *core.FixedStep
	current  frame
	shown    bool
	paused   bool
	tickOnce bool
}

// NewWindow constructs a window for a grid of the given side.
func NewWindow(length, scale, tps int, title string, seed int64, logger *log.Logger) *Window {
	if scale <= 0 {
		scale = 3
	}
	if tps <= 0 {
		tps = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		length:   length,
		scale:    scale,
		tps:      tps,
		title:    title,
		seed:     seed,
		logger:   logger,
		onColor:  color.White,
		offColor: color.Black,
		frames:   make(chan frame),
		closed:   make(chan struct{}),
		hud:      ui.NewHUD(hudWidth),
		step:     core.NewFixedStep(tps),
	}
}

// Render converts the grid to pixels and hands them to the GUI.
func (w *Window) Render(generation int, grid life.View) {
	f := frame{
		generation: generation,
		population: grid.Population(),
		pixels:     make([]byte, 4*grid.Size()),
	}
	render.FillRGBA(f.pixels, grid, w.onColor, w.offColor)
	select {
	case w.frames <- f:
	case <-w.closed:
	}
}

// Close releases a Render blocked on a window that is no longer drawing.
func (w *Window) Close() error {
	w.closeOnce.Do(func() { close(w.closed) })
	return nil
}

// Loop runs fn on its own goroutine while the window owns the main one. The
// window stays open on the last frame after fn returns, until the user quits.
func (w *Window) Loop(fn func() error) error {
	errc := make(chan error, 1)
	go func() {
		err := fn()
		w.finished.Store(true)
		errc <- err
	}()

	size := w.length * w.scale
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(size+w.hud.Width(), size)
	ebiten.SetTPS(ebiten.DefaultTPS)

	err := ebiten.RunGame(w)
	w.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return <-errc
}

// Update handles input and takes at most one frame per tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.tickOnce = true
	}

	if !w.step.ShouldStep() {
		return nil
	}
	if w.paused && !w.tickOnce {
		return nil
	}
	select {
	case f := <-w.frames:
		w.current = f
		w.shown = true
		w.tickOnce = false
		w.logger.Debug("frame shown", "generation", f.generation)
	default:
	}
	return nil
}

// Draw renders the latest frame and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	if !w.shown {
		return
	}
	if w.painter == nil {
		w.painter = NewGridPainter(w.length, w.length)
	}
	size := w.length * w.scale
	w.painter.Blit(screen, w.current.pixels, w.scale)

	stats := ui.FrameStats(w.current.generation, w.current.population, w.length)
	stats = append(stats, ui.Stat{Label: "Seed", Value: strconv.FormatInt(w.seed, 10)})
	stats = append(stats, ui.Stat{Label: "State", Value: w.state()})
	w.hud.Draw(screen, size, size, stats, helpLines)
}

func (w *Window) state() string {
	switch {
	case w.finished.Load():
		return "finished"
	case w.paused:
		return "paused"
	default:
		return "running"
	}
}

// Layout returns the logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := w.length * w.scale
	return size + w.hud.Width(), size
}

func init() {
	render.Register("window", func(opts render.Options) (render.Output, error) {
		if opts.Length <= 0 {
			return nil, errors.New("window renderer needs the grid length")
		}
		return NewWindow(opts.Length, opts.Scale, opts.TPS, opts.Title, opts.Seed, opts.Logger), nil
	})
}
