package render

import (
	"bufio"
	"io"
	"os"
	"strings"

	"conwaylife/pkg/life"
)

const (
	textAlive     = '*'
	textDead      = '.'
	textSeparator = "---------------"
)

// Text prints each generation as rows of '*' and '.' followed by a dashed
// separator line. The first write error sticks and is reported by Close.
type Text struct {
	w   *bufio.Writer
	row strings.Builder
	err error
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: bufio.NewWriter(w)}
}

// Render writes one frame and flushes it.
func (t *Text) Render(_ int, grid life.View) {
	if t.err != nil {
		return
	}
	n := grid.Length()
	for row := 0; row < n; row++ {
		t.row.Reset()
		for col := 0; col < n; col++ {
			if grid.Alive(row, col) {
				t.row.WriteByte(textAlive)
			} else {
				t.row.WriteByte(textDead)
			}
			t.row.WriteString("  ")
		}
		t.row.WriteByte('\n')
		if _, err := t.w.WriteString(t.row.String()); err != nil {
			t.err = err
			return
		}
	}
	if _, err := t.w.WriteString(textSeparator + "\n"); err != nil {
		t.err = err
		return
	}
	t.err = t.w.Flush()
}

// Err reports the first write error, if any.
func (t *Text) Err() error { return t.err }

// Close flushes pending output and returns the first write error.
func (t *Text) Close() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

func init() {
	Register("text", func(opts Options) (Output, error) {
		w := opts.Writer
		if w == nil {
			w = os.Stdout
		}
		return Paced(NewText(w), opts.TPS), nil
	})
}
