package main

import (
	"context"
	"fmt"
	"io"
)

func init() {
	registerSolution(1, solutionFunc(solveDay01))
}

func solveDay01(ctx context.Context, in io.Reader, out io.Writer) error {
	password, err := decodePassword(in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "The decoded password is: %d\n", password)
	return err
}
