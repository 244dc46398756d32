package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

B3/S23: a live cell survives with 2 or 3 neighbors, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
