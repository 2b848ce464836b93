// Package aoc2024 registers every 2024 puzzle with the default registry.
package aoc2024

import (
	_ "github.com/povarna/advent-of-code/aoc/2024/day01"
	_ "github.com/povarna/advent-of-code/aoc/2024/day02"
	_ "github.com/povarna/advent-of-code/aoc/2024/day03"
	_ "github.com/povarna/advent-of-code/aoc/2024/day04"
)
