// Package render holds the presentation side of the simulator: renderers
// that consume one frame per generation and a registry to pick them by name.
package render

import (
	"io"
	"sort"

	"conwaylife/pkg/life"

	"github.com/charmbracelet/log"
)

// Options carries the settings a renderer factory may use.
type Options struct {
	// Writer receives text output. Defaults to os.Stdout in the CLI.
	Writer io.Writer
	// OutDir is where file-producing renderers write.
	OutDir string
	// TPS limits frames per second; 0 disables pacing.
	TPS int
	// Scale is the pixel size of a cell for graphical renderers.
	Scale int
	// Length is the side of the grid that will be rendered.
	Length int
	// Title labels windows and status lines.
	Title string
	// Seed is shown by renderers that display run details.
	Seed   int64
	Logger *log.Logger
}

// Output is a renderer that holds resources until closed.
type Output interface {
	life.Renderer
	Close() error
}

// Looper is implemented by outputs that must own the main goroutine, such as
// GUI windows. Loop runs fn on another goroutine and returns once both the
// output and fn are finished.
type Looper interface {
	Loop(fn func() error) error
}

// Factory constructs an Output.
type Factory func(opts Options) (Output, error)

var renderers = map[string]Factory{}

// Register adds a renderer factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	renderers[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := renderers[name]
	return f, ok
}

// Names lists the registered renderers in sorted order.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type discard struct{}

func (discard) Render(int, life.View) {}
func (discard) Close() error          { return nil }

func init() {
	Register("none", func(Options) (Output, error) { return discard{}, nil })
}
