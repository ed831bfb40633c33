package output

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/sergiud/glsexpand/internal/config"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// NewClipboard returns the system clipboard
func NewClipboard() Clipboard {
	return &systemClipboard{}
}

// systemClipboard implements Clipboard using the system clipboard
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		// No clipboard available, just print
		fmt.Print(text)
		return nil
	}
	return clipboard.WriteAll(text)
}

// ============================================================================
// Sink
// ============================================================================

// Mode represents where the expanded text goes
type Mode string

const (
	ModeStdout Mode = "stdout"
	ModeCopy   Mode = "copy"
	ModeFile   Mode = "file"
)

// Sink writes the final expanded text to the configured destination
type Sink struct {
	clipboard Clipboard
}

// NewSink creates a sink for the configured output mode
func NewSink() *Sink {
	return &Sink{clipboard: &systemClipboard{}}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (s *Sink) WithClipboard(c Clipboard) *Sink {
	s.clipboard = c
	return s
}

// Write sends text to the destination selected by the config
func (s *Sink) Write(text string) error {
	mode := Mode(config.GetOutput())
	return s.WriteWithMode(text, mode)
}

// WriteWithMode sends text to an explicit destination
func (s *Sink) WriteWithMode(text string, mode Mode) error {
	switch mode {
	case ModeCopy:
		return s.clipboard.Copy(text)
	case ModeFile:
		path := config.GetFile()
		if path == "" {
			return fmt.Errorf("output mode %q requires a file path", mode)
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	default: // stdout
		fmt.Print(text)
		return nil
	}
}
