package life

// NextState applies B3/S23 to a cell that was alive (or not) with the given
// number of live neighbours.
func NextState(alive bool, liveNeighbours int) bool {
	switch {
	case liveNeighbours < 2:
		return false
	case liveNeighbours == 2:
		return alive
	case liveNeighbours == 3:
		return true
	default:
		return false
	}
}
