package life

// View is the read-only face of a Grid handed to renderers.
type View interface {
	Length() int
	Size() int
	Alive(row, col int) bool
	Population() int
}

// Renderer consumes one frame per generation. Implementations must not
// mutate the grid behind the view.
type Renderer interface {
	Render(generation int, grid View)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(generation int, grid View)

// Render calls f(generation, grid).
func (f RendererFunc) Render(generation int, grid View) { f(generation, grid) }
