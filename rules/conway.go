package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

This is the compact form of the standard four rules: live cells with fewer
than two neighbors die of underpopulation, with more than three die of
overpopulation, with two or three survive, and dead cells with exactly three
neighbors become alive.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
