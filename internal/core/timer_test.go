package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	fs.sleep = clock.sleep
	return fs, clock
}

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs, clock := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll without elapsed time should not step")
	}
	clock.t = clock.t.Add(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("poll after a full tick should step")
	}
}

func TestFixedStepWaitSleepsRemainder(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.Wait()
	if len(clock.slept) != 0 {
		t.Fatalf("first wait should not sleep, slept %v", clock.slept)
	}
	clock.t = clock.t.Add(30 * time.Millisecond)
	fs.Wait()
	var total time.Duration
	for _, d := range clock.slept {
		total += d
	}
	if total != 70*time.Millisecond {
		t.Fatalf("expected to sleep 70ms, slept %v", total)
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got step %v", fs.Step())
	}
	fs.SetTPS(-5)
	if fs.Step() != time.Second/60 {
		t.Fatalf("SetTPS should fall back to 60, got %v", fs.Step())
	}
	fs.SetTPS(4)
	if fs.Step() != 250*time.Millisecond {
		t.Fatalf("expected 250ms step, got %v", fs.Step())
	}
}
