package config

import (
	"fmt"
	"os"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"go.yaml.in/yaml/v3"
)

type PuzzlesConfig struct {
	Puzzles []PuzzleConfig `yaml:"puzzles"`
}

// PuzzleConfig points a puzzle at its input file and, optionally, at the
// answers it is known to produce for that input.
type PuzzleConfig struct {
	Key     string      `yaml:"key"`
	Input   string      `yaml:"input"`
	Answers map[int]int `yaml:"answers"`
}

// LoadPuzzlesConfig reads the YAML puzzle list at path. Keys are normalized to
// "YYYY/DD", using year for keys that name only a day. A missing file is
// returned as an error wrapping fs.ErrNotExist.
func LoadPuzzlesConfig(path, defaultInput string, year int) (*PuzzlesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg PuzzlesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	if err := applyDefaults(&cfg, defaultInput, year); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzlesConfig, defaultInput string, year int) error {
	for i := range cfg.Puzzles {
		p := &cfg.Puzzles[i]
		if p.Input == "" {
			p.Input = defaultInput
		}

		// an empty key is reported by Validate
		if p.Key == "" {
			continue
		}
		key, err := puzzle.NormalizeKey(year, p.Key)
		if err != nil {
			return fmt.Errorf("puzzle %d: invalid key %q: %w", i, p.Key, err)
		}
		p.Key = key
	}
	return nil
}

func (c *PuzzlesConfig) Validate() error {
	seen := make(map[string]bool, len(c.Puzzles))

	for i, p := range c.Puzzles {
		if p.Key == "" {
			return fmt.Errorf("puzzle %d: missing key", i)
		}
		if seen[p.Key] {
			return fmt.Errorf("duplicate puzzle key %q", p.Key)
		}
		seen[p.Key] = true

		for part := range p.Answers {
			if part != 1 && part != 2 {
				return fmt.Errorf("puzzle %s: invalid answer part %d", p.Key, part)
			}
		}
	}

	return nil
}

// Find returns the configuration for key, if any.
func (c *PuzzlesConfig) Find(key string) (PuzzleConfig, bool) {
	for _, p := range c.Puzzles {
		if p.Key == key {
			return p, true
		}
	}
	return PuzzleConfig{}, false
}
