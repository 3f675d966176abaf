package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ConsoleWriter implements secondary.Console, writing colored status lines.
type ConsoleWriter struct {
	out io.Writer
}

// NewConsoleWriter creates a ConsoleWriter writing to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

// Info writes an informational line.
func (c *ConsoleWriter) Info(message string) {
	fmt.Fprintf(c.out, "%s %s\n", color.New(color.FgBlue).Sprint("info"), message)
}

// Warning writes a warning line.
func (c *ConsoleWriter) Warning(message string) {
	fmt.Fprintf(c.out, "%s %s\n", color.New(color.FgYellow).Sprint("warn"), message)
}

// Success writes a confirmation line.
func (c *ConsoleWriter) Success(message string) {
	fmt.Fprintf(c.out, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), message)
}
