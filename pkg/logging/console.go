// Package logging provides the two loggers used by chatkeep: Console for
// what the user sees on stdout, and Logger for the per-session file under
// ~/.chatkeep/logs.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level controls how chatty the console is.
type Level int

const (
	// LevelQuiet shows only errors and warnings
	LevelQuiet Level = iota
	// LevelNormal shows progress and results (default)
	LevelNormal
	// LevelVerbose also explains skipped files
	LevelVerbose
	// LevelDebug shows everything
	LevelDebug
)

// ParseLevel converts a flag value to a Level. Unknown values mean normal.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet":
		return LevelQuiet
	case "verbose":
		return LevelVerbose
	case "debug":
		return LevelDebug
	default:
		return LevelNormal
	}
}

// Console prints user-facing messages. Every message is mirrored to an
// attached session Logger.
type Console struct {
	level  Level
	writer io.Writer
	file   *Logger

	success lipgloss.Style
	info    lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithWriter sets the output writer (default is os.Stdout).
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.writer = w
	}
}

// WithFileLogger mirrors console output into a session log file.
func WithFileLogger(l *Logger) ConsoleOption {
	return func(c *Console) {
		c.file = l
	}
}

// NewConsole creates a console at the given level.
func NewConsole(level Level, opts ...ConsoleOption) *Console {
	c := &Console{
		level:  level,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Bound to the writer so colour is dropped when it is not a terminal.
	r := lipgloss.NewRenderer(c.writer)
	c.success = r.NewStyle().Foreground(lipgloss.Color("#A8E6CF")).Bold(true)
	c.info = r.NewStyle().Foreground(lipgloss.Color("#FFB3BA"))
	c.warn = r.NewStyle().Foreground(lipgloss.Color("#F5D76E"))
	c.err = r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	c.muted = r.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	c.header = r.NewStyle().Foreground(lipgloss.Color("#F9FAFB")).Bold(true)

	return c
}

// Level returns the console level.
func (c *Console) Level() Level {
	return c.level
}

// Header prints a bold banner line.
func (c *Console) Header(message string) {
	c.mirror("INFO", message)
	if c.level >= LevelNormal {
		fmt.Fprintln(c.writer, c.header.Render(message))
	}
}

// Successf prints a success message.
func (c *Console) Successf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.mirror("INFO", msg)
	if c.level >= LevelNormal {
		fmt.Fprintln(c.writer, c.success.Render(msg))
	}
}

// Infof prints an informational message.
func (c *Console) Infof(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.mirror("INFO", msg)
	if c.level >= LevelNormal {
		fmt.Fprintln(c.writer, c.info.Render(msg))
	}
}

// Warningf prints a warning.
func (c *Console) Warningf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.mirror("WARN", msg)
	fmt.Fprintln(c.writer, c.warn.Render("⚠ "+msg))
}

// Errorf prints an error.
func (c *Console) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.mirror("ERROR", msg)
	fmt.Fprintln(c.writer, c.err.Render(msg))
}

// Verbosef prints detail only shown in verbose mode.
func (c *Console) Verbosef(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.mirror("DEBUG", msg)
	if c.level >= LevelVerbose {
		fmt.Fprintln(c.writer, c.muted.Render("→ "+msg))
	}
}

// Debugf prints internals only shown in debug mode.
func (c *Console) Debugf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.mirror("DEBUG", msg)
	if c.level >= LevelDebug {
		fmt.Fprintln(c.writer, c.muted.Render("[DEBUG] "+msg))
	}
}

// Newline prints an empty line.
func (c *Console) Newline() {
	if c.level >= LevelNormal {
		fmt.Fprintln(c.writer)
	}
}

func (c *Console) mirror(level, msg string) {
	if c.file != nil {
		c.file.write(level, "%s", msg)
	}
}
