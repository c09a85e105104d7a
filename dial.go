package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Day 1 dial parameters.
const (
	dialSize  = 100
	dialStart = 50
)

// errMalformedInstruction is returned for lines that are not [L|R]<digits>.
var errMalformedInstruction = errors.New("malformed instruction")

// Direction is the way the dial is turned.
type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%q)", byte(d))
	}
}

// Instruction is a single rotation of the dial.
type Instruction struct {
	Direction Direction
	Distance  int
}

// Dial is a circular counter over 0..size-1.
type Dial struct {
	size     int
	position int
}

// newDial returns a dial of the given size resting at start (taken mod size).
func newDial(size, start int) *Dial {
	if size <= 0 {
		panic(fmt.Sprintf("dial size must be > 0, got %d", size))
	}
	return &Dial{size: size, position: mod(start, size)}
}

// Position reports where the dial currently points.
func (d *Dial) Position() int { return d.position }

// Apply turns the dial and returns the new position.
func (d *Dial) Apply(in Instruction) int {
	step := in.Distance % d.size
	if in.Direction == Left {
		step = -step
	}
	d.position = mod(d.position+step, d.size)
	return d.position
}

// Decode applies the instructions in order and counts how many of them leave
// the dial exactly at 0.
func (d *Dial) Decode(instructions []Instruction) int {
	password := 0
	for _, in := range instructions {
		if d.Apply(in) == 0 {
			password++
		}
	}
	return password
}

// mod is the mathematical modulo: the result is always in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func parseInstruction(line string) (Instruction, error) {
	s := strings.TrimSpace(line)
	if len(s) < 2 {
		return Instruction{}, fmt.Errorf("%w: %q", errMalformedInstruction, line)
	}
	dir := Direction(s[0])
	if dir != Left && dir != Right {
		return Instruction{}, fmt.Errorf("%w: unknown direction in %q", errMalformedInstruction, line)
	}
	// ParseUint rejects signs, so "L-5" and "R+5" are malformed.
	n, err := strconv.ParseUint(s[1:], 10, strconv.IntSize-1)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: bad distance in %q", errMalformedInstruction, line)
	}
	return Instruction{Direction: dir, Distance: int(n)}, nil
}

// parseInstructions reads one instruction per line. Blank lines are malformed.
func parseInstructions(r io.Reader) ([]Instruction, error) {
	var out []Instruction
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		in, err := parseInstruction(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read instructions: %w", err)
	}
	return out, nil
}

// decodePassword parses the whole input before touching the dial, so a bad
// line never yields a partial password.
func decodePassword(r io.Reader) (int, error) {
	instructions, err := parseInstructions(r)
	if err != nil {
		return 0, err
	}
	return newDial(dialSize, dialStart).Decode(instructions), nil
}
