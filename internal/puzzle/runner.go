package puzzle

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Job is one puzzle run: which puzzle, which input file and, optionally, the
// answers the run is expected to produce keyed by part.
type Job struct {
	Key   string
	Input string
	Want  map[int]int
}

type Runner struct {
	registry *Registry
	out      io.Writer
	logger   *zerolog.Logger
}

func NewRunner(registry *Registry, out io.Writer, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		out:      out,
		logger:   logger,
	}
}

// Run solves one puzzle and writes its answers to the runner output. Answers
// are written before they are checked against job.Want.
func (r *Runner) Run(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := r.registry.Lookup(job.Key)
	if err != nil {
		return err
	}

	start := time.Now()
	r.logger.Info().Str("puzzle", p.Key).Str("title", p.Title).Str("input", job.Input).Msg("solving puzzle")

	answers, err := p.Solver.Solve(job.Input)
	if err != nil {
		r.logger.Debug().Err(err).Str("puzzle", p.Key).Msg("puzzle failed")
		return err
	}

	for _, answer := range answers {
		if _, err := fmt.Fprintln(r.out, answer); err != nil {
			return fmt.Errorf("failed to write answer: %w", err)
		}
	}

	r.logger.Info().Str("puzzle", p.Key).Dur("elapsed", time.Since(start)).Msg("puzzle solved")

	return checkAnswers(p.Key, answers, job.Want)
}

// RunAll runs the jobs in order and stops at the first failure.
func (r *Runner) RunAll(ctx context.Context, jobs []Job) error {
	for _, job := range jobs {
		if err := r.Run(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

func checkAnswers(key string, answers []Answer, want map[int]int) error {
	for _, answer := range answers {
		expected, ok := want[answer.Part]
		if !ok || expected == answer.Value {
			continue
		}
		return &Error{
			Op:   "check answers",
			Kind: KindWrongAnswer,
			Msg:  fmt.Sprintf("Puzzle %s part %d: got %d, want %d", key, answer.Part, answer.Value, expected),
		}
	}
	return nil
}
