// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	// ErrCopyDisabled reports a copy that was switched off by configuration.
	ErrCopyDisabled = errors.New("clipboard copy disabled")
	// ErrClipboardUnavailable reports a system without a usable clipboard utility.
	ErrClipboardUnavailable = errors.New("clipboard copy skipped (no clipboard utility available)")
)

const copyFailedMessageFormat = "could not copy to clipboard: %w"

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Service implements Copier using github.com/atotto/clipboard. Callers check
// Available once at startup; the service itself only honors the enabled switch.
type Service struct {
	enabled bool
	write   func(string) error
}

// Available reports whether the platform clipboard can be used. The answer is
// fixed when the process starts.
func Available() bool {
	return !clipboard.Unsupported
}

// NewService constructs a clipboard service. A disabled service never touches
// the clipboard.
func NewService(enabled bool) *Service {
	return &Service{
		enabled: enabled,
		write:   clipboard.WriteAll,
	}
}

// Copy writes text to the system clipboard. It returns ErrCopyDisabled when
// the copy is switched off.
func (service *Service) Copy(text string) error {
	if !service.enabled {
		return ErrCopyDisabled
	}
	if err := service.write(text); err != nil {
		return fmt.Errorf(copyFailedMessageFormat, err)
	}
	return nil
}

var _ Copier = (*Service)(nil)
