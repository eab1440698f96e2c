package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	r, err := NewScreen(sim, "life")
	if err != nil {
		t.Fatal(err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(func() { r.Close() })
	return sim, r
}

func TestScreenDrawsTwoColumnsPerCell(t *testing.T) {
	sim, r := newSimScreen(t)
	g := patternGrid(t, 3, [2]int{0, 1})
	r.Render(4, g)

	_, _, style, _ := sim.GetContent(2, 1)
	if style != r.alive {
		t.Fatal("cell (0,1) should use the alive style in column 2")
	}
	_, _, style, _ = sim.GetContent(3, 1)
	if style != r.alive {
		t.Fatal("cell (0,1) should use the alive style in column 3")
	}
	_, _, style, _ = sim.GetContent(0, 1)
	if style != r.dead {
		t.Fatal("cell (0,0) should use the dead style")
	}

	var status []rune
	for x := 0; x < 40; x++ {
		c, _, _, _ := sim.GetContent(x, 0)
		status = append(status, c)
	}
	if got := string(status); len(got) == 0 || got[:4] != "life" {
		t.Fatalf("unexpected status line %q", got)
	}
}

func TestScreenStopsOnQuitKey(t *testing.T) {
	sim, r := newSimScreen(t)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for !r.Stopped() {
		if time.Now().After(deadline) {
			t.Fatal("screen did not stop after q")
		}
		time.Sleep(5 * time.Millisecond)
	}

	g := patternGrid(t, 2, [2]int{0, 0})
	r.Render(0, g)
	_, _, style, _ := sim.GetContent(0, 1)
	if style == r.alive {
		t.Fatal("stopped screen should not draw")
	}
}
