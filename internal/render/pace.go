package render

import (
	"conwaylife/internal/core"
	"conwaylife/pkg/life"
)

type paced struct {
	Output
	step *core.FixedStep
}

// Paced holds each frame of out to the given ticks-per-second. A tps of zero
// or less returns out unchanged.
func Paced(out Output, tps int) Output {
	if tps <= 0 || out == nil {
		return out
	}
	return &paced{Output: out, step: core.NewFixedStep(tps)}
}

func (p *paced) Render(generation int, grid life.View) {
	p.step.Wait()
	p.Output.Render(generation, grid)
}
