package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

//go:embed solution_template.txt
var solutionTemplate string

// Files kept in each day directory.
const (
	readmeFile = "README.md"
	inputFile  = "input.txt"
)

// puzzleSource is what setup needs from the puzzle site.
type puzzleSource interface {
	fetchPuzzle(ctx context.Context, year, day int) (string, error)
	fetchInput(ctx context.Context, year, day int) (string, error)
}

// scaffolder lays out the per-day files.
type scaffolder struct {
	cfg appConfig
	src puzzleSource
	log *logger
}

func dayDir(daysDir string, day int) string {
	return filepath.Join(daysDir, fmt.Sprintf("day-%02d", day))
}

func solutionPath(solutionsDir string, day int) string {
	return filepath.Join(solutionsDir, fmt.Sprintf("day%02d.go", day))
}

// defaultSetupDay picks how many days to set up when none is given: every
// day through max_day, or only the unlocked ones during December of the
// configured year.
func defaultSetupDay(now time.Time, cfg appConfig) int {
	if now.Year() == cfg.Year && now.Month() == time.December {
		return min(now.Day(), cfg.MaxDay)
	}
	return cfg.MaxDay
}

// setupThrough scaffolds days 1..last in order, stopping at the first error.
func (s *scaffolder) setupThrough(ctx context.Context, last int) error {
	if last < 1 || last > s.cfg.MaxDay {
		return fmt.Errorf("day must be in 1..%d, got %d", s.cfg.MaxDay, last)
	}
	for day := 1; day <= last; day++ {
		if err := s.setupDay(ctx, day); err != nil {
			return fmt.Errorf("setup day %d: %w", day, err)
		}
	}
	return nil
}

func (s *scaffolder) setupDay(ctx context.Context, day int) error {
	dir := dayDir(s.cfg.DaysDir, day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir day dir: %w", err)
	}

	created, err := writeSolutionStub(s.cfg.SolutionsDir, day)
	if err != nil {
		return err
	}
	if created {
		path := solutionPath(s.cfg.SolutionsDir, day)
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		s.log.okf("created %s", path)
	}

	page, err := s.src.fetchPuzzle(ctx, s.cfg.Year, day)
	if err != nil {
		return fmt.Errorf("fetch puzzle: %w", err)
	}
	md, err := puzzleMarkdown(page)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, readmeFile), []byte(md), 0o644); err != nil {
		return fmt.Errorf("write readme: %w", err)
	}
	s.log.infof("day %d: %s updated", day, readmeFile)

	inputPath := filepath.Join(dir, inputFile)
	if exists(inputPath) {
		return nil
	}
	input, err := s.src.fetchInput(ctx, s.cfg.Year, day)
	if errors.Is(err, errNoSession) {
		s.log.warnf("%s not set, skipping input fetch for day %d", envSessionCookie, day)
		return nil
	}
	if err != nil {
		if isAuthError(err) {
			return fmt.Errorf("fetch input (session cookie rejected?): %w", err)
		}
		return fmt.Errorf("fetch input: %w", err)
	}
	if err := os.WriteFile(inputPath, []byte(input), 0o644); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	s.log.okf("day %d: %s saved", day, inputFile)
	return nil
}

// writeSolutionStub creates the day's Go file from the template unless it
// already exists. It reports whether a file was written.
func writeSolutionStub(solutionsDir string, day int) (bool, error) {
	path := solutionPath(solutionsDir, day)
	if exists(path) {
		return false, nil
	}
	if err := os.MkdirAll(solutionsDir, 0o755); err != nil {
		return false, fmt.Errorf("mkdir solutions dir: %w", err)
	}
	content := strings.NewReplacer(
		"{{dayPadded}}", fmt.Sprintf("%02d", day),
		"{{day}}", strconv.Itoa(day),
	).Replace(solutionTemplate)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write solution: %w", err)
	}
	return true, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
