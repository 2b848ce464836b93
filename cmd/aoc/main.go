package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/povarna/advent-of-code/aoc/2024"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/setup/logger"
)

type options struct {
	day       string
	inputFile string
	all       bool
	check     bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit status. Failures are
// reported once, as an "Error: " line on stdout; logs go to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	if err := run(args, stdout, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("aoc", flag.ContinueOnError)
	flags.SetOutput(stderr)

	day := flags.String("day", "", "Puzzle to run: 4, day04 or 2024/04. Defaults to the latest registered puzzle")
	inputFile := flags.String("inputFile", "", "Relative path to the input file")
	all := flags.Bool("all", false, "Run every registered puzzle with its configured input")
	list := flags.Bool("list", false, "List the registered puzzles and exit")
	check := flags.Bool("check", false, "Compare the answers with the ones in the puzzles config")
	if err := flags.Parse(args); err != nil {
		return err
	}

	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(stderr, cfg.LogLevel)

	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	if *list {
		for _, key := range puzzle.Default.Keys() {
			p, _ := puzzle.Default.Lookup(key)
			fmt.Fprintf(stdout, "%s %s\n", p.Key, p.Title)
		}
		return nil
	}

	puzzlesCfg, err := config.LoadPuzzlesConfig(cfg.PuzzlesConfig, cfg.InputFile, cfg.Year)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Debug().Str("file", cfg.PuzzlesConfig).Msg("No puzzles config found")
		puzzlesCfg = &config.PuzzlesConfig{}
	}

	jobs, err := buildJobs(puzzle.Default, cfg, puzzlesCfg, options{
		day:       *day,
		inputFile: *inputFile,
		all:       *all,
		check:     *check,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner := puzzle.NewRunner(puzzle.Default, stdout, &log)
	return runner.RunAll(ctx, jobs)
}

// buildJobs resolves which puzzles to run and with which input. An explicit
// -inputFile wins over the puzzles config, which wins over the environment.
func buildJobs(registry *puzzle.Registry, cfg *config.Config, puzzlesCfg *config.PuzzlesConfig, opts options) ([]puzzle.Job, error) {
	var keys []string

	switch {
	case opts.all:
		if opts.day != "" || opts.inputFile != "" {
			return nil, errors.New("-all cannot be combined with -day or -inputFile")
		}
		keys = registry.Keys()
	case opts.day == "":
		latest, ok := registry.Latest()
		if !ok {
			return nil, errors.New("no puzzles registered")
		}
		keys = []string{latest}
	default:
		key, err := puzzle.NormalizeKey(cfg.Year, opts.day)
		if err != nil {
			return nil, err
		}
		keys = []string{key}
	}

	jobs := make([]puzzle.Job, 0, len(keys))
	for _, key := range keys {
		job := puzzle.Job{Key: key, Input: cfg.InputFile}

		if pc, ok := puzzlesCfg.Find(key); ok {
			job.Input = pc.Input
			if opts.check {
				job.Want = pc.Answers
			}
		}
		if opts.inputFile != "" {
			job.Input = opts.inputFile
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}
