package puzzle

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type Puzzle struct {
	Key    string // "YYYY/DD"
	Title  string
	Solver Solver
}

type Registry struct {
	puzzles map[string]Puzzle
}

func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[string]Puzzle),
	}
}

// Default is the registry day packages add themselves to from init.
var Default = NewRegistry()

func Register(key, title string, s Solver) {
	Default.Register(key, title, s)
}

// Register panics when the key is malformed or already taken, both being
// programming errors in a day package.
func (r *Registry) Register(key, title string, s Solver) {
	year, day, err := splitKey(key)
	if err != nil {
		panic(fmt.Sprintf("puzzle: register %q: %v", key, err))
	}
	key = formatKey(year, day)

	if _, exists := r.puzzles[key]; exists {
		panic(fmt.Sprintf("puzzle: %s registered twice", key))
	}
	r.puzzles[key] = Puzzle{Key: key, Title: title, Solver: s}
}

func (r *Registry) Lookup(key string) (Puzzle, error) {
	p, ok := r.puzzles[key]
	if !ok {
		return Puzzle{}, &Error{
			Op:   "lookup puzzle",
			Kind: KindUnknownPuzzle,
			Msg:  fmt.Sprintf("Puzzle %s is not registered.", key),
		}
	}
	return p, nil
}

// Keys returns the registered keys in chronological order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.puzzles))
	for key := range r.puzzles {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (r *Registry) Latest() (string, bool) {
	keys := r.Keys()
	if len(keys) == 0 {
		return "", false
	}
	return keys[len(keys)-1], true
}

// NormalizeKey turns user input such as "4", "04", "day04" or "2024/4" into
// a "YYYY/DD" key, using year when the input names no year.
func NormalizeKey(year int, s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.Contains(s, "/") {
		s = fmt.Sprintf("%d/%s", year, s)
	}

	y, d, err := splitKey(s)
	if err != nil {
		return "", &Error{
			Op:   "normalize key",
			Kind: KindUnknownPuzzle,
			Msg:  fmt.Sprintf("Invalid puzzle %q: %v", s, err),
			Err:  err,
		}
	}
	return formatKey(y, d), nil
}

func splitKey(key string) (int, int, error) {
	yearPart, dayPart, ok := strings.Cut(key, "/")
	if !ok {
		return 0, 0, fmt.Errorf("expected YYYY/DD")
	}

	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 2015 {
		return 0, 0, fmt.Errorf("invalid year %q", yearPart)
	}

	day, err := strconv.Atoi(strings.TrimPrefix(dayPart, "day"))
	if err != nil || day < 1 || day > 25 {
		return 0, 0, fmt.Errorf("invalid day %q", dayPart)
	}

	return year, day, nil
}

func formatKey(year, day int) string {
	return fmt.Sprintf("%04d/%02d", year, day)
}
