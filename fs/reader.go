package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/diffmend"
	"github.com/gabriel-vasile/mimetype"
)

// Compile-time interface verification.
var _ diffmend.DocumentReader = (*Reader)(nil)

// DefaultMaxSize is the largest document Reader accepts (16MB).
const DefaultMaxSize = 16 * 1024 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader loads plain-text documents from disk.
type Reader struct {
	extensions []string
	detector   diffmend.FormatDetector
	maxSize    int64
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithExtensions sets the accepted file extensions.
func WithExtensions(exts []string) ReaderOption {
	return func(r *Reader) {
		r.extensions = exts
	}
}

// WithFormatDetector sets the detector used to label documents.
func WithFormatDetector(d diffmend.FormatDetector) ReaderOption {
	return func(r *Reader) {
		r.detector = d
	}
}

// WithMaxSize sets the maximum document size in bytes.
func WithMaxSize(n int64) ReaderOption {
	return func(r *Reader) {
		r.maxSize = n
	}
}

// NewReader creates a new Reader.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{
		extensions: DefaultInputExtensions,
		maxSize:    DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads the document at path. The file must have an accepted extension,
// sniff as text and decode as UTF-8. A leading BOM is dropped and CRLF line
// endings become LF.
func (r *Reader) Read(ctx context.Context, path string) (*diffmend.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.checkExt(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, r.maxSize+1))
	if err != nil {
		return nil, err
	}
	return r.Decode(path, data)
}

// Decode applies the same checks and normalization as Read to data that was
// obtained some other way. Path names the document and selects its format.
func (r *Reader) Decode(path string, data []byte) (*diffmend.Source, error) {
	if err := r.checkExt(path); err != nil {
		return nil, err
	}
	if int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", path, ErrTooLarge, r.maxSize)
	}

	mtype := mimetype.Detect(data)
	if len(data) > 0 && !isText(mtype) {
		return nil, fmt.Errorf("%s: %w (detected %s)", path, ErrNotText, mtype.String())
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	src := &diffmend.Source{
		Path: path,
		Name: filepath.Base(path),
		MIME: mtype.String(),
		Text: string(data),
	}
	if r.detector != nil {
		src.Format = r.detector.DetectFromPath(path)
	}
	return src, nil
}

func (r *Reader) checkExt(path string) error {
	ext := normalizeExt(filepath.Ext(path))
	if !containsExt(r.extensions, ext) {
		return fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
	return nil
}

// isText reports whether m is text/plain or one of its descendants.
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
