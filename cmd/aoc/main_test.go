package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

func newTestRegistry() *puzzle.Registry {
	solver := puzzle.SolverFunc(func(string) ([]puzzle.Answer, error) { return nil, nil })

	registry := puzzle.NewRegistry()
	registry.Register("2024/01", "Historian Hysteria", solver)
	registry.Register("2024/02", "Red-Nosed Reports", solver)
	return registry
}

func TestBuildJobs(t *testing.T) {
	cfg := &config.Config{Year: 2024, InputFile: "input.txt"}
	puzzlesCfg := &config.PuzzlesConfig{Puzzles: []config.PuzzleConfig{
		{Key: "2024/01", Input: "inputs/day01.txt", Answers: map[int]int{1: 11, 2: 31}},
	}}

	testCases := []struct {
		name     string
		opts     options
		expected []puzzle.Job
		wantErr  bool
	}{
		{
			name:     "latest by default",
			opts:     options{},
			expected: []puzzle.Job{{Key: "2024/02", Input: "input.txt"}},
		},
		{
			name:     "configured input",
			opts:     options{day: "1"},
			expected: []puzzle.Job{{Key: "2024/01", Input: "inputs/day01.txt"}},
		},
		{
			name:     "check uses configured answers",
			opts:     options{day: "day01", check: true},
			expected: []puzzle.Job{{Key: "2024/01", Input: "inputs/day01.txt", Want: map[int]int{1: 11, 2: 31}}},
		},
		{
			name:     "flag overrides config",
			opts:     options{day: "2024/01", inputFile: "other.txt"},
			expected: []puzzle.Job{{Key: "2024/01", Input: "other.txt"}},
		},
		{
			name: "all",
			opts: options{all: true},
			expected: []puzzle.Job{
				{Key: "2024/01", Input: "inputs/day01.txt"},
				{Key: "2024/02", Input: "input.txt"},
			},
		},
		{
			name:    "all with day",
			opts:    options{all: true, day: "1"},
			wantErr: true,
		},
		{
			name:    "invalid day",
			opts:    options{day: "day99"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jobs, err := buildJobs(newTestRegistry(), cfg, puzzlesCfg, tc.opts)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got jobs %v", jobs)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildJobs() failed: %v", err)
			}
			if diff := cmp.Diff(tc.expected, jobs); diff != "" {
				t.Errorf("buildJobs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildJobs_EmptyRegistry(t *testing.T) {
	cfg := &config.Config{Year: 2024, InputFile: "input.txt"}

	_, err := buildJobs(puzzle.NewRegistry(), cfg, &config.PuzzlesConfig{}, options{})
	if err == nil {
		t.Error("expected error for an empty registry")
	}
}

const day01Sample = "../../aoc/2024/day01/testdata/sample.txt"

func setTestEnv(t *testing.T, puzzlesConfig string) {
	t.Helper()
	t.Setenv("AOC_LOG_LEVEL", "info")
	t.Setenv("AOC_YEAR", "2024")
	t.Setenv("AOC_INPUT_FILE", "")
	t.Setenv("AOC_PUZZLES_CONFIG", puzzlesConfig)
}

func TestExecute_PrintsAnswers(t *testing.T) {
	setTestEnv(t, filepath.Join(t.TempDir(), "missing.yaml"))

	var stdout, stderr bytes.Buffer
	code := execute([]string{"-day", "1", "-inputFile", day01Sample}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("expected exit status 0, got %d (stdout: %s)", code, stdout.String())
	}
	expected := "Part 1 - Total distance between lists: 11\nPart 2 - Similarity score: 31\n"
	if stdout.String() != expected {
		t.Errorf("unexpected stdout:\n%s\nwant:\n%s", stdout.String(), expected)
	}
}

func TestExecute_MissingInput(t *testing.T) {
	dir := t.TempDir()
	setTestEnv(t, filepath.Join(dir, "missing.yaml"))
	input := filepath.Join(dir, "input.txt")

	var stdout, stderr bytes.Buffer
	code := execute([]string{"-day", "2", "-inputFile", input}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("expected exit status 1, got %d", code)
	}
	expected := "Error: The file '" + input + "' was not found.\n"
	if stdout.String() != expected {
		t.Errorf("stdout = %q; want %q", stdout.String(), expected)
	}
	if strings.Contains(stderr.String(), "was not found") {
		t.Errorf("error reported twice, stderr: %s", stderr.String())
	}
}

func TestExecute_CheckMismatch(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "puzzles.yaml")
	content := "puzzles:\n  - key: \"2024/1\"\n    input: " + day01Sample + "\n    answers:\n      1: 999\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	setTestEnv(t, configPath)

	var stdout, stderr bytes.Buffer
	code := execute([]string{"-day", "1", "-check"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("expected exit status 1, got %d", code)
	}
	out := stdout.String()
	if !strings.Contains(out, "Part 1 - Total distance between lists: 11\n") {
		t.Errorf("expected answers before the check, got: %s", out)
	}
	if !strings.HasSuffix(out, "Error: Puzzle 2024/01 part 1: got 11, want 999\n") {
		t.Errorf("expected wrong answer error, got: %s", out)
	}
}

func TestExecute_BadFlag(t *testing.T) {
	setTestEnv(t, filepath.Join(t.TempDir(), "missing.yaml"))

	var stdout, stderr bytes.Buffer
	if code := execute([]string{"-nope"}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit status 1, got %d", code)
	}
	if code := execute([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("expected exit status 0 for -h, got %d", code)
	}
}
