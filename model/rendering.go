package model

import (
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

const clearCmd = "clear"

// TerminalRenderer dumps generations as rows of '1'/'0'
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Display renders the grid
func (r *TerminalRenderer) Display(g *Grid) error {
	return errors.Wrap(Encode(r.Out, g), "[Display] failed to render grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
