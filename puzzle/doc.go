// Package puzzle wires the grid and erosion packages into the two answers
// of the paper-roll puzzle: how many rolls are accessible right away, and how
// many can be removed in total once removals cascade.
//
// ReadRows splits raw input into rows; Solve parses them and computes both
// answers, running erosion on a clone so the first answer sees the untouched
// grid. Analyze adds the per-round breakdown and what survives.
package puzzle
