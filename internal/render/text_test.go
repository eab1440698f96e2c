package render

import (
	"bytes"
	"errors"
	"testing"
)

func TestTextRendererFormat(t *testing.T) {
	g := patternGrid(t, 3, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	var buf bytes.Buffer
	r := NewText(&buf)
	r.Render(0, g)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	want := ".  .  .  \n" +
		"*  *  *  \n" +
		".  .  .  \n" +
		"---------------\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestTextRendererFramesAppend(t *testing.T) {
	g := patternGrid(t, 1, [2]int{0, 0})
	var buf bytes.Buffer
	r := NewText(&buf)
	r.Render(0, g)
	r.Render(1, g)
	want := "*  \n---------------\n*  \n---------------\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

type failingWriter struct{ writes int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestTextRendererStickyError(t *testing.T) {
	g := patternGrid(t, 2)
	w := &failingWriter{}
	r := NewText(w)
	r.Render(0, g)
	r.Render(1, g)
	if r.Err() == nil {
		t.Fatal("expected write error")
	}
	if w.writes != 1 {
		t.Fatalf("renderer should stop writing after the first error, wrote %d times", w.writes)
	}
	if err := r.Close(); err == nil {
		t.Fatal("Close should report the write error")
	}
}

func TestTextFactoryUsesWriter(t *testing.T) {
	f, ok := Lookup("text")
	if !ok {
		t.Fatal("text renderer missing")
	}
	var buf bytes.Buffer
	out, err := f(Options{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	out.Render(0, patternGrid(t, 1))
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ".  \n---------------\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
