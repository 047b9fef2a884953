package rules

/*
ApplyConwayRules determines the next state of a cell from its current state and
its count of living neighbors.

A living cell dies below 2 neighbors, survives below 4, and dies from
overcrowding at 4 or more. A dead cell is born at exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		switch {
		case neighbors < 2:
			return false
		case neighbors < 4:
			return true
		default:
			return false
		}
	}
	return neighbors == 3
}
