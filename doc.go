// Package rollgrid simulates forklift access to a warehouse of paper rolls
// laid out on a grid, and the cascade that follows when accessible rolls are
// taken away.
//
// A roll is accessible when fewer than four of the eight surrounding
// positions hold a roll. Removing a roll can only lower its neighbors'
// counts, so repeated removal converges to a unique stable layout no matter
// which order rolls are taken in.
//
// Packages:
//
//	grid/            Grid, Cell, Position, text parsing, neighbor counts, clusters
//	erosion/         accessible-roll classification, worklist erosion, rounds
//	puzzle/          input reading and the two puzzle answers
//	cmd/paperrolls/  command-line solver
//
// Quick ASCII example:
//
//	@@@      .@.      ...      ...
//	@@@  →   @@@  →   .@.  →   ...
//	@@@      .@.      ...      ...
//
// corners go first, then edges, then the center: 9 rolls in 3 rounds.
//
//	go run ./cmd/paperrolls -v inputs/day04_example.txt
package rollgrid
