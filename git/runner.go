// Package git reads documents from git revisions via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var _ diffmend.DocumentReader = (*Reader)(nil)

// Decoder validates and normalizes raw document bytes.
type Decoder interface {
	Decode(path string, data []byte) (*diffmend.Source, error)
}

// Runner executes git commands via shell.
type Runner struct {
	dir string
}

// NewRunner creates a git runner that operates on the repository containing dir.
func NewRunner(dir string) *Runner {
	return &Runner{dir: dir}
}

// Show returns the contents of path at revision rev. Path is relative to the
// repository root unless it starts with "./".
func (r *Runner) Show(ctx context.Context, rev, path string) ([]byte, error) {
	args := []string{"-C", r.dir, "show", rev + ":" + path}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git show failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git show failed: %w", err)
	}
	return output, nil
}

// Reader loads REV:PATH arguments from git and everything else through a
// fallback reader.
type Reader struct {
	runner   *Runner
	decoder  Decoder
	fallback diffmend.DocumentReader
}

// NewReader creates a Reader. Documents from git pass through decoder;
// plain paths go to fallback.
func NewReader(runner *Runner, decoder Decoder, fallback diffmend.DocumentReader) *Reader {
	return &Reader{
		runner:   runner,
		decoder:  decoder,
		fallback: fallback,
	}
}

// Read implements diffmend.DocumentReader.
func (r *Reader) Read(ctx context.Context, spec string) (*diffmend.Source, error) {
	rev, path, ok := ParseRevision(spec)
	if !ok {
		return r.fallback.Read(ctx, spec)
	}
	data, err := r.runner.Show(ctx, rev, path)
	if err != nil {
		return nil, err
	}
	src, err := r.decoder.Decode(path, data)
	if err != nil {
		return nil, err
	}
	src.Path = spec
	return src, nil
}

// ParseRevision splits spec of the form REV:PATH. Existing files and Windows
// drive letters are never treated as revisions.
func ParseRevision(spec string) (rev, path string, ok bool) {
	rev, path, found := strings.Cut(spec, ":")
	if !found || rev == "" || path == "" {
		return "", "", false
	}
	if len(rev) == 1 && isLetter(rev[0]) && (path[0] == '\\' || path[0] == '/') {
		return "", "", false
	}
	if _, err := os.Stat(spec); err == nil {
		return "", "", false
	}
	return rev, path, true
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
