package mock

import (
	"context"

	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var (
	_ diffmend.DocumentReader = (*DocumentReader)(nil)
	_ diffmend.DocumentWriter = (*DocumentWriter)(nil)
)

// DocumentReader is a mock implementation of diffmend.DocumentReader.
type DocumentReader struct {
	ReadFn func(ctx context.Context, path string) (*diffmend.Source, error)
}

func (r *DocumentReader) Read(ctx context.Context, path string) (*diffmend.Source, error) {
	return r.ReadFn(ctx, path)
}

// DocumentWriter is a mock implementation of diffmend.DocumentWriter.
type DocumentWriter struct {
	WriteFn func(dir, name, ext, text string) (string, error)
}

func (w *DocumentWriter) Write(dir, name, ext, text string) (string, error) {
	return w.WriteFn(dir, name, ext, text)
}
