package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const maxLineSize = 1024 * 1024

// ReadFile returns the whole content of the input file.
func ReadFile(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", openError(path, err)
	}

	return string(bytes), nil
}

// ReadLines returns the input file split into lines without line terminators.
// A trailing newline does not produce an empty last line.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return lines, nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return NotFound("read input", path, err)
	}
	return fmt.Errorf("failed to read input file %s: %w", path, err)
}
