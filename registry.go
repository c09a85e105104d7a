package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
)

// maxPuzzleDay bounds the days a solution can register for.
const maxPuzzleDay = 25

// errNotImplemented is returned by freshly scaffolded solutions.
var errNotImplemented = errors.New("solution not implemented yet")

// solution is the entry point of one day's puzzle.
type solution interface {
	Run(ctx context.Context, in io.Reader, out io.Writer) error
}

// solutionFunc adapts a plain function to the solution interface.
type solutionFunc func(ctx context.Context, in io.Reader, out io.Writer) error

func (f solutionFunc) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	return f(ctx, in, out)
}

var solutions = make(map[int]solution)

// registerSolution is called from each day file's init.
func registerSolution(day int, s solution) {
	if day < 1 || day > maxPuzzleDay {
		panic(fmt.Sprintf("solution day %d out of range 1..%d", day, maxPuzzleDay))
	}
	if s == nil {
		panic(fmt.Sprintf("nil solution for day %d", day))
	}
	if _, exists := solutions[day]; exists {
		panic(fmt.Sprintf("solution for day %d already registered", day))
	}
	solutions[day] = s
}

func lookupSolution(day int) (solution, bool) {
	s, ok := solutions[day]
	return s, ok
}

func registeredDays() []int {
	days := make([]int, 0, len(solutions))
	for d := range solutions {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
