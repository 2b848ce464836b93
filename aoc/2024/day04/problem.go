package aoc2024day04

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
)

const (
	word      = "XMAS"
	crossWord = "MAS"
)

// right, down, down-right, up-right, left, up, up-left, down-left
var directions = [][2]int{
	{0, 1}, {1, 0}, {1, 1}, {-1, 1},
	{0, -1}, {-1, 0}, {-1, -1}, {1, -1},
}

func init() {
	puzzle.Register("2024/04", "Ceres Search", puzzle.SolverFunc(Solve))
}

func Solve(path string) ([]puzzle.Answer, error) {
	grid, err := ReadGrid(path)
	if err != nil {
		return nil, err
	}

	return []puzzle.Answer{
		{Part: 1, Description: "XMAS occurrences", Value: CountWordOccurrences(grid, word)},
		{Part: 2, Description: "X-MAS patterns", Value: CountXPatterns(grid)},
	}, nil
}

// ReadGrid returns the word search as one trimmed string per row.
func ReadGrid(path string) ([]string, error) {
	lines, err := puzzle.ReadLines(path)
	if err != nil {
		var pe *puzzle.Error
		if errors.As(err, &pe) && pe.Kind == puzzle.KindNotFound {
			pe.Msg = fmt.Sprintf("File '%s' not found.", path)
		}
		return nil, err
	}

	grid := make([]string, 0, len(lines))
	for _, line := range lines {
		grid = append(grid, strings.TrimSpace(line))
	}

	return grid, nil
}

// CountWordOccurrences counts every start cell and direction along which the
// word can be read. Overlapping occurrences are counted separately.
func CountWordOccurrences(grid []string, w string) int {
	if w == "" {
		return 0
	}

	count := 0
	for i := range grid {
		for j := range len(grid[i]) {
			for _, d := range directions {
				if matchesAt(grid, w, i, j, d[0], d[1]) {
					count += 1
				}
			}
		}
	}

	return count
}

// CountXPatterns counts the cells where "MAS" crosses itself on both
// diagonals, each diagonal read either forwards or backwards.
func CountXPatterns(grid []string) int {
	count := 0
	for i := 1; i < len(grid)-1; i++ {
		for j := 1; j < len(grid[i])-1; j++ {
			if isXPattern(grid, i, j) {
				count += 1
			}
		}
	}
	return count
}

func isXPattern(grid []string, i, j int) bool {
	// top-left to bottom-right, then top-right to bottom-left
	mainDiagonal := matchesAt(grid, crossWord, i-1, j-1, 1, 1) || matchesAt(grid, crossWord, i+1, j+1, -1, -1)
	if !mainDiagonal {
		return false
	}
	return matchesAt(grid, crossWord, i-1, j+1, 1, -1) || matchesAt(grid, crossWord, i+1, j-1, -1, 1)
}

// matchesAt walks from (row, col) in direction (dRow, dCol) and compares each
// cell with the next byte of w. Rows may differ in length; a cell past the end
// of its row is out of bounds.
func matchesAt(grid []string, w string, row, col, dRow, dCol int) bool {
	for k := range len(w) {
		r, c := row+k*dRow, col+k*dCol
		if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
			return false
		}
		if grid[r][c] != w[k] {
			return false
		}
	}
	return true
}
