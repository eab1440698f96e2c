package life

import "testing"

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{false, true} {
			got := NextState(alive, n)
			var want bool
			switch {
			case n < 2 || n > 3:
				want = false
			case n == 3:
				want = true
			default:
				want = alive
			}
			if got != want {
				t.Fatalf("NextState(%v, %d)=%v want %v", alive, n, got, want)
			}
		}
	}
}
