// Package clipboard provides clipboard operations via atotto/clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/diffmend"
)

// Ensure System implements the Clipboard interface.
var _ diffmend.Clipboard = (*System)(nil)

// ErrUnavailable is returned when no clipboard utility is installed.
var ErrUnavailable = errors.New("clipboard unavailable")

// System implements Clipboard using the platform clipboard
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether the platform has a clipboard utility.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(content)
}
