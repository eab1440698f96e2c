package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"conwaylife/pkg/life"

	"github.com/charmbracelet/log"
)

// Mesh writes every generation as a Wavefront OBJ file holding one flat quad
// per live cell. The grid is centred on the origin of the XZ plane.
type Mesh struct {
	dir      string
	cellSize float64
	logger   *log.Logger
	err      error
}

// NewMesh creates dir if needed and returns a Mesh renderer writing into it.
func NewMesh(dir string, cellSize float64, logger *log.Logger) (*Mesh, error) {
	if dir == "" {
		dir = "."
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create mesh dir: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Mesh{dir: dir, cellSize: cellSize, logger: logger}, nil
}

// MeshPath returns the file a generation is written to.
func (m *Mesh) MeshPath(generation int) string {
	return filepath.Join(m.dir, fmt.Sprintf("gen_%04d.obj", generation))
}

// Render writes one OBJ file. After the first failure further frames are
// skipped and the error is reported by Close.
func (m *Mesh) Render(generation int, grid life.View) {
	if m.err != nil {
		return
	}
	path := m.MeshPath(generation)
	f, err := os.Create(path)
	if err != nil {
		m.err = fmt.Errorf("create %s: %w", path, err)
		return
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# generation %d\no life_gen_%04d\n", generation, generation)
	faces, err := WriteMesh(w, grid, m.cellSize)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		m.err = fmt.Errorf("write %s: %w", path, err)
		return
	}
	m.logger.Debug("mesh written", "path", path, "faces", faces)
}

// Close reports the first write error, if any.
func (m *Mesh) Close() error { return m.err }

// WriteMesh emits the vertices and faces of the live cells of grid and
// returns the number of faces written. Faces are wound v0, v3, v2, v1 so
// their normals point up the Y axis.
func WriteMesh(w io.Writer, grid life.View, cellSize float64) (int, error) {
	bw, buffered := w.(*bufio.Writer)
	if !buffered {
		bw = bufio.NewWriter(w)
	}
	n := grid.Length()
	origin := -float64(n) * cellSize / 2
	faces := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !grid.Alive(row, col) {
				continue
			}
			x0 := origin + float64(col)*cellSize
			z0 := origin + float64(row)*cellSize
			x1, z1 := x0+cellSize, z0+cellSize
			writeVertex(bw, x0, z0)
			writeVertex(bw, x1, z0)
			writeVertex(bw, x1, z1)
			writeVertex(bw, x0, z1)
			faces++
		}
	}
	for i := 0; i < faces; i++ {
		v0 := i*4 + 1
		if _, err := fmt.Fprintf(bw, "f %d %d %d %d\n", v0, v0+3, v0+2, v0+1); err != nil {
			return i, err
		}
	}
	if !buffered {
		return faces, bw.Flush()
	}
	return faces, nil
}

func writeVertex(w *bufio.Writer, x, z float64) {
	w.WriteString("v ")
	w.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	w.WriteString(" 0 ")
	w.WriteString(strconv.FormatFloat(z, 'f', -1, 64))
	w.WriteByte('\n')
}

func init() {
	Register("mesh", func(opts Options) (Output, error) {
		size := float64(opts.Scale)
		return NewMesh(opts.OutDir, size, opts.Logger)
	})
}
