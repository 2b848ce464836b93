package aoc2024day01

import (
	"fmt"
	"slices"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/utils"
)

func init() {
	puzzle.Register("2024/01", "Historian Hysteria", puzzle.SolverFunc(Solve))
}

func Solve(path string) ([]puzzle.Answer, error) {
	left, right, err := ReadCoordinates(path)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		{Part: 1, Description: "Total distance between lists", Value: TotalDistance(left, right)},
		{Part: 2, Description: "Similarity score", Value: SimilarityScore(left, right)},
	}, nil
}

// ReadCoordinates reads the two location id columns. Every line must hold
// exactly two integers separated by whitespace.
func ReadCoordinates(path string) ([]int, []int, error) {
	lines, err := puzzle.ReadLines(path)
	if err != nil {
		return nil, nil, err
	}

	left := make([]int, 0, len(lines))
	right := make([]int, 0, len(lines))

	for i, line := range lines {
		lineNumber := i + 1
		values := strings.Fields(line)
		if len(values) != 2 {
			msg := fmt.Sprintf("Invalid data format at line %d. Expected 2 values, got %d", lineNumber, len(values))
			return nil, nil, puzzle.Malformed("read coordinates", path, lineNumber, msg, nil)
		}

		pair, err := utils.ToInts(values)
		if err != nil {
			msg := fmt.Sprintf("Invalid number format at line %d. Both values must be integers.", lineNumber)
			return nil, nil, puzzle.Malformed("read coordinates", path, lineNumber, msg, err)
		}

		left = append(left, pair[0])
		right = append(right, pair[1])
	}

	return left, right, nil
}

// TotalDistance pairs the smallest left id with the smallest right id, and so
// on, and sums the distances of the pairs. Lists of different length are
// paired up to the shorter one.
func TotalDistance(left, right []int) int {
	leftSorted := slices.Sorted(slices.Values(left))
	rightSorted := slices.Sorted(slices.Values(right))

	total := 0
	for i := range min(len(leftSorted), len(rightSorted)) {
		total += utils.Abs(leftSorted[i] - rightSorted[i])
	}

	return total
}

// SimilarityScore adds up each left id multiplied by how often it appears in
// the right list.
func SimilarityScore(left, right []int) int {
	counts := make(map[int]int, len(right))
	for _, n := range right {
		counts[n] += 1
	}

	score := 0
	for _, n := range left {
		score += n * counts[n]
	}

	return score
}
