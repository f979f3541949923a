package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var _ diffmend.DocumentWriter = (*Writer)(nil)

// DefaultName is used when no output name is given.
const DefaultName = "merged"

// Writer saves merged documents to disk.
type Writer struct {
	extensions []string
}

// NewWriter creates a Writer restricted to the given extensions.
// A nil slice uses DefaultOutputExtensions.
func NewWriter(extensions []string) *Writer {
	if extensions == nil {
		extensions = DefaultOutputExtensions
	}
	return &Writer{extensions: extensions}
}

// Write stores text as dir/name+ext, creating dir if needed, and returns the
// written path. The name is reduced to its base name, and an allowed
// extension already on it is replaced by ext.
func (w *Writer) Write(dir, name, ext, text string) (string, error) {
	ext = normalizeExt(ext)
	if !containsExt(w.extensions, ext) {
		return "", fmt.Errorf("%w %q (allowed: %s)", ErrUnsupportedExtension, ext, strings.Join(w.extensions, ", "))
	}

	name = sanitizeName(name)
	if current := filepath.Ext(name); containsExt(w.extensions, normalizeExt(current)) {
		name = strings.TrimSuffix(name, current)
	}
	name += ext
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// sanitizeName strips directories and falls back to DefaultName.
func sanitizeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return DefaultName
	}
	if strings.TrimSuffix(name, filepath.Ext(name)) == "" {
		return DefaultName
	}
	return name
}
