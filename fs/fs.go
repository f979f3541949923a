// Package fs loads documents from and saves merged documents to the file system.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned by Reader and Writer.
var (
	ErrUnsupportedFormat    = errors.New("unsupported document format")
	ErrNotText              = errors.New("document is not plain text")
	ErrNotUTF8              = errors.New("document is not valid UTF-8")
	ErrTooLarge             = errors.New("document is too large")
	ErrUnsupportedExtension = errors.New("unsupported output extension")
)

// DefaultInputExtensions are the plain-text and lightweight markup extensions
// accepted by Reader.
var DefaultInputExtensions = []string{".txt", ".md", ".markdown", ".text"}

// DefaultOutputExtensions are the extensions Writer may produce.
var DefaultOutputExtensions = []string{".txt", ".md"}

// DefaultStateDir returns the default state directory for diffmend.
// Uses XDG_STATE_HOME if set, otherwise falls back to ~/.local/state/diffmend,
// or system temp directory if home is unavailable.
func DefaultStateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffmend")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "diffmend")
	}
	return filepath.Join(home, ".local", "state", "diffmend")
}

// DefaultHistoryPath returns the default merge history file.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultStateDir(), "history.jsonl")
}

// normalizeExt lowercases ext and ensures it has a leading dot.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func containsExt(allowed []string, ext string) bool {
	for _, a := range allowed {
		if normalizeExt(a) == ext {
			return true
		}
	}
	return false
}
