package render

import (
	"fmt"
	"sync/atomic"

	"conwaylife/internal/ui"
	"conwaylife/pkg/life"

	"github.com/gdamore/tcell/v2"
)

// Screen draws generations full-screen in the terminal, two columns per cell
// below a status line. Pressing q or Esc stops drawing; the simulation keeps
// running to completion.
type Screen struct {
	screen tcell.Screen
	title  string
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style

	stopped atomic.Bool
}

// NewScreen initializes s and starts listening for key presses.
func NewScreen(s tcell.Screen, title string) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	r := &Screen{
		screen: s,
		title:  title,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		dead:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
		status: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true),
	}
	s.HideCursor()
	s.Clear()
	go r.poll()
	return r, nil
}

func (r *Screen) poll() {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				r.stopped.Store(true)
			}
		}
	}
}

// Stopped reports whether the user asked to stop drawing.
func (r *Screen) Stopped() bool { return r.stopped.Load() }

// Render draws one frame.
func (r *Screen) Render(generation int, grid life.View) {
	if r.Stopped() {
		return
	}
	r.screen.Clear()
	n := grid.Length()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			style := r.dead
			if grid.Alive(row, col) {
				style = r.alive
			}
			r.screen.SetContent(col*2, row+1, ' ', nil, style)
			r.screen.SetContent(col*2+1, row+1, ' ', nil, style)
		}
	}
	line := ui.Line(r.title, ui.FrameStats(generation, grid.Population(), n)) + "  (q to stop)"
	for i, c := range []rune(line) {
		r.screen.SetContent(i, 0, c, nil, r.status)
	}
	r.screen.Show()
}

// Close restores the terminal.
func (r *Screen) Close() error {
	r.screen.Fini()
	return nil
}

func init() {
	Register("screen", func(opts Options) (Output, error) {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		r, err := NewScreen(s, opts.Title)
		if err != nil {
			return nil, err
		}
		return Paced(r, opts.TPS), nil
	})
}
