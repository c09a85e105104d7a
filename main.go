package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// errNotSetUp is returned when a day's directory does not exist yet.
var errNotSetUp = errors.New("day is not set up")

func main() {
	_ = godotenv.Load()
	log := newLogger()
	a := &app{log: log, now: time.Now}
	if err := a.rootCmd().ExecuteContext(context.Background()); err != nil {
		log.err(err.Error())
		os.Exit(1)
	}
}

// app carries what every subcommand needs.
type app struct {
	log        *logger
	configPath string
	now        func() time.Time
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code helper",
		Long:          "aoc fetches puzzle descriptions and inputs, scaffolds per-day solutions and runs them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printUsage(cmd.OutOrStdout(), cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "path to JSON config (optional)")
	root.AddCommand(a.setupCmd(), a.runCmd(), a.explainCmd())
	return root
}

// printUsage writes the root help followed by each subcommand's help.
func printUsage(w io.Writer, root *cobra.Command) error {
	root.SetOut(w)
	if err := root.Help(); err != nil {
		return err
	}
	for _, sub := range root.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s\n%s command\n", strings.Repeat("=", 50), sub.Name())
		sub.SetOut(w)
		if err := sub.Help(); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [day]",
		Short: "Fetch puzzles and inputs and scaffold solutions for days 1..day",
		Long: "Creates the per-day directory with README.md and input.txt and a Go solution stub " +
			"for every day up to the given one. Without a day, sets up all unlocked days.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			day := defaultSetupDay(a.now(), cfg)
			if len(args) == 1 {
				if day, err = parseDay(args[0]); err != nil {
					return err
				}
			}
			client, err := newAPIClient(cfg)
			if err != nil {
				return err
			}
			a.log.infof("setting up %d day(s) of %d", day, cfg.Year)
			s := &scaffolder{cfg: cfg, src: client, log: a.log}
			if err := s.setupThrough(cmd.Context(), day); err != nil {
				return err
			}
			a.log.ok("setup complete; rebuild to pick up new solution files")
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <day>",
		Short: "Run the solution of the given day against its input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			return runDay(cmd.Context(), cfg, day, cmd.OutOrStdout())
		},
	}
}

func (a *app) explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <day>",
		Short: "Summarize the given day's puzzle with an OpenAI-compatible model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			readme, err := os.ReadFile(filepath.Join(dayDir(cfg.DaysDir, day), readmeFile))
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: day %d has no %s, run setup first", errNotSetUp, day, readmeFile)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", readmeFile, err)
			}
			e, err := newExplainer(cfg, a.log)
			if err != nil {
				return err
			}
			summary, err := e.Explain(cmd.Context(), string(readme))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), summary)
			return err
		},
	}
}

// runDay looks up the day's registered solution and feeds it the day's input.
func runDay(ctx context.Context, cfg appConfig, day int, out io.Writer) error {
	dir := dayDir(cfg.DaysDir, day)
	if !exists(dir) {
		return fmt.Errorf("%w: day %d, run setup first", errNotSetUp, day)
	}
	sol, ok := lookupSolution(day)
	if !ok {
		return fmt.Errorf("no solution registered for day %d (registered: %v; rebuild after setup)", day, registeredDays())
	}
	f, err := os.Open(filepath.Join(dir, inputFile))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := sol.Run(ctx, f, out); err != nil {
		return fmt.Errorf("day %d: %w", day, err)
	}
	return nil
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: %w", s, err)
	}
	if day < 1 || day > maxPuzzleDay {
		return 0, fmt.Errorf("day must be in 1..%d, got %d", maxPuzzleDay, day)
	}
	return day, nil
}
