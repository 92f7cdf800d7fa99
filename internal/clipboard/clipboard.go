// Package clipboard copies passwords to the system clipboard and tracks the
// transient "copied" acknowledgment shown by the widget.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	atotto "github.com/atotto/clipboard"
)

var (
	ErrCopyFailed    = errors.New("clipboard write failed")
	ErrUnavailable   = errors.New("clipboard is not available on this host")
	ErrNothingToCopy = errors.New("nothing to copy")
)

// Writer stores text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a plain function to Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error { return f(text) }

// System writes to the host clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	return atotto.WriteAll(text)
}

// Copier writes to a clipboard and raises an Indicator on success.
type Copier struct {
	writer    Writer
	indicator *Indicator
}

// NewCopier creates a Copier. A nil writer means the system clipboard.
func NewCopier(w Writer, resetAfter time.Duration) *Copier {
	if w == nil {
		w = System{}
	}
	return &Copier{
		writer:    w,
		indicator: NewIndicator(resetAfter),
	}
}

// Copy writes text to the clipboard. The indicator is only raised when the
// write succeeds.
func (c *Copier) Copy(text string) error {
	if text == "" {
		return ErrNothingToCopy
	}
	if err := c.writer.WriteAll(text); err != nil {
		slog.Warn("clipboard write failed", "error", err)
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	c.indicator.Set()
	return nil
}

// Copied reports whether a copy happened within the reset interval.
func (c *Copier) Copied() bool {
	return c.indicator.On()
}

// Close cancels the pending indicator revert.
func (c *Copier) Close() {
	c.indicator.Stop()
}
