package ui

import "testing"

func TestLine(t *testing.T) {
	got := Line("life", FrameStats(3, 17, 50))
	want := "life  generation 3  population 17  world 50x50"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := Line("", []Stat{{Label: "Seed", Value: "1"}}); got != "seed 1" {
		t.Fatalf("empty title should not lead with spaces, got %q", got)
	}
}
