package aoc2024day02

import (
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/utils"
)

const (
	minStep = 1
	maxStep = 3
)

func init() {
	puzzle.Register("2024/02", "Red-Nosed Reports", puzzle.SolverFunc(Solve))
}

func Solve(path string) ([]puzzle.Answer, error) {
	reports, err := ReadReports(path)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		{Part: 1, Description: "Safe reports without dampener", Value: countSafe(reports, IsSafe)},
		{Part: 2, Description: "Safe reports with dampener", Value: countSafe(reports, IsSafeWithOneRemoval)},
	}, nil
}

// ReadReports reads one report of whitespace separated levels per line. An
// empty line is an empty report.
func ReadReports(path string) ([][]int, error) {
	lines, err := puzzle.ReadLines(path)
	if err != nil {
		return nil, err
	}

	reports := make([][]int, 0, len(lines))
	for i, line := range lines {
		levels, err := utils.ToInts(strings.Fields(line))
		if err != nil {
			msg := fmt.Sprintf("Invalid number format at line %d. Both values must be integers.", i+1)
			return nil, puzzle.Malformed("read reports", path, i+1, msg, err)
		}
		reports = append(reports, levels)
	}

	return reports, nil
}

// IsSafe reports whether the levels are strictly increasing or strictly
// decreasing with every step between 1 and 3. The first step sets the direction.
func IsSafe(levels []int) bool {
	if len(levels) <= 1 {
		return true
	}

	increasing := levels[1]-levels[0] > 0

	for i := 1; i < len(levels); i++ {
		diff := levels[i] - levels[i-1]

		step := utils.Abs(diff)
		if step < minStep || step > maxStep {
			return false
		}

		if (diff > 0) != increasing {
			return false
		}
	}

	return true
}

// IsSafeWithOneRemoval applies the dampener: the report is also safe when
// dropping a single level makes it safe.
func IsSafeWithOneRemoval(levels []int) bool {
	if IsSafe(levels) {
		return true
	}

	remaining := make([]int, 0, len(levels))
	for skip := range levels {
		remaining = remaining[:0]
		remaining = append(remaining, levels[:skip]...)
		remaining = append(remaining, levels[skip+1:]...)
		if IsSafe(remaining) {
			return true
		}
	}

	return false
}

func countSafe(reports [][]int, isSafe func([]int) bool) int {
	total := 0
	for _, report := range reports {
		if isSafe(report) {
			total += 1
		}
	}
	return total
}
