// Package chroma detects document markup formats using chroma's lexer registry.
package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var _ diffmend.FormatDetector = (*Detector)(nil)

// Detector detects document formats from file paths using chroma.
type Detector struct{}

// NewDetector creates a new chroma-based format detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the lexer name for the given path (e.g. "markdown"),
// or an empty string if the format cannot be determined.
func (d *Detector) DetectFromPath(path string) string {
	// Get just the filename for extension matching
	filename := filepath.Base(path)

	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}

	return lexer.Config().Name
}
