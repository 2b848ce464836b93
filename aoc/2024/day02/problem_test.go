package aoc2024day02

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/advent-of-code/internal/puzzle"
)

func TestIsSafe(t *testing.T) {
	testCases := []struct {
		levels   []int
		expected bool
	}{
		{levels: []int{7, 6, 4, 2, 1}, expected: true},
		{levels: []int{1, 2, 7, 8, 9}, expected: false},
		{levels: []int{9, 7, 6, 2, 1}, expected: false},
		{levels: []int{1, 3, 2, 4, 5}, expected: false},
		{levels: []int{8, 6, 4, 4, 1}, expected: false},
		{levels: []int{1, 3, 6, 7, 9}, expected: true},
		{levels: []int{}, expected: true},
		{levels: []int{42}, expected: true},
		{levels: []int{5, 5}, expected: false},
		{levels: []int{1, 4}, expected: true},
		{levels: []int{1, 5}, expected: false},
	}

	for _, tc := range testCases {
		result := IsSafe(tc.levels)
		if result != tc.expected {
			t.Errorf("IsSafe(%v) = %v; want %v", tc.levels, result, tc.expected)
		}
	}
}

func TestIsSafeWithOneRemoval(t *testing.T) {
	testCases := []struct {
		levels   []int
		expected bool
	}{
		{levels: []int{7, 6, 4, 2, 1}, expected: true},
		{levels: []int{1, 2, 7, 8, 9}, expected: false},
		{levels: []int{9, 7, 6, 2, 1}, expected: false},
		{levels: []int{1, 3, 2, 4, 5}, expected: true},
		{levels: []int{8, 6, 4, 4, 1}, expected: true},
		{levels: []int{1, 3, 6, 7, 9}, expected: true},
		{levels: []int{1, 2, 3, 4, 5}, expected: true},
		// dropping the first level changes the direction
		{levels: []int{5, 1, 2, 3, 4}, expected: true},
		{levels: []int{1, 2, 3, 4, 10}, expected: true},
		{levels: []int{1, 1, 1}, expected: false},
	}

	for _, tc := range testCases {
		result := IsSafeWithOneRemoval(tc.levels)
		if result != tc.expected {
			t.Errorf("IsSafeWithOneRemoval(%v) = %v; want %v", tc.levels, result, tc.expected)
		}
	}
}

func TestIsSafeWithOneRemoval_KeepsInput(t *testing.T) {
	levels := []int{1, 3, 2, 4, 5}
	IsSafeWithOneRemoval(levels)

	expected := []int{1, 3, 2, 4, 5}
	for i := range levels {
		if levels[i] != expected[i] {
			t.Fatalf("input modified: %v", levels)
		}
	}
}

func TestSolve_Sample(t *testing.T) {
	answers, err := Solve(filepath.Join("testdata", "sample.txt"))
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}

	expected := []string{
		"Part 1 - Safe reports without dampener: 2",
		"Part 2 - Safe reports with dampener: 4",
	}
	if len(answers) != len(expected) {
		t.Fatalf("expected %d answers, got %d", len(expected), len(answers))
	}
	for i, answer := range answers {
		if answer.String() != expected[i] {
			t.Errorf("answer %d = %q; want %q", i, answer.String(), expected[i])
		}
	}
}

func TestReadReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("1 2 3\n\n4  5\t6\n"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	reports, err := ReadReports(path)
	if err != nil {
		t.Fatalf("ReadReports() failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	if len(reports[1]) != 0 {
		t.Errorf("expected empty second report, got %v", reports[1])
	}
	if len(reports[2]) != 3 || reports[2][2] != 6 {
		t.Errorf("unexpected third report: %v", reports[2])
	}
}

func TestReadReports_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("1 2 3\n4 five 6\n"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	_, err := ReadReports(path)
	if !errors.Is(err, puzzle.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if err.Error() != "Invalid number format at line 2. Both values must be integers." {
		t.Errorf("unexpected message: %s", err.Error())
	}

	_, err = ReadReports(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, puzzle.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
