// Package notify presents conversion outcomes to the user. Normal runs
// print to the console; on Windows, a run without an attached console (for
// example a file dropped onto the executable) gets a native message box.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Mode selects the presentation channel. It is detected once at startup and
// passed in explicitly rather than re-checked per message.
type Mode int

const (
	// ModeConsole prints messages to stdout/stderr
	ModeConsole Mode = iota
	// ModeWindowed shows messages in a native message box
	ModeWindowed
)

// DetectMode reports how the process was started. Non-Windows platforms are
// always console.
func DetectMode() Mode {
	return detectMode()
}

// Notifier presents a titled message to the user
type Notifier interface {
	Success(title, message string)
	Failure(title, message string)
}

// Console prints messages to Out and Err (stdout and stderr by default)
type Console struct {
	Out io.Writer
	Err io.Writer
}

// NewConsole returns a Console wired to the process stdout/stderr
func NewConsole() *Console {
	return &Console{Out: os.Stdout, Err: os.Stderr}
}

func (c *Console) Success(title, message string) {
	fmt.Fprintln(c.Out, message)
}

func (c *Console) Failure(title, message string) {
	fmt.Fprintf(c.Err, "[ERROR] %s\n", message)
}

// messageBox shows messages through the platform message box, falling back
// to the console where none exists
type messageBox struct {
	fallback *Console
}

func (m *messageBox) Success(title, message string) {
	if !showMessageBox(title, message, false) {
		m.fallback.Success(title, message)
	}
}

func (m *messageBox) Failure(title, message string) {
	if !showMessageBox(title, message, true) {
		m.fallback.Failure(title, message)
	}
}

// New returns the Notifier for the given mode
func New(mode Mode) Notifier {
	if mode == ModeWindowed {
		return &messageBox{fallback: NewConsole()}
	}
	return NewConsole()
}
