package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = 'X'
	gridPosDead  = 'O'

	ansiClearScreen = "\033[H\033[2J"
)

// TerminalRenderer draws grids as rows of text
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.Out)
	for y := range g.height {
		for x := range g.width {
			c := byte(gridPosDead)
			if g.cells[y][x] {
				c = gridPosAlive
			}
			_ = w.WriteByte(c)
		}
		_ = w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClearScreen)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
