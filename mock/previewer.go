package mock

import (
	"io"

	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var (
	_ diffmend.Previewer     = (*Previewer)(nil)
	_ diffmend.PreviewParser = (*PreviewParser)(nil)
)

// Previewer is a mock implementation of diffmend.Previewer.
type Previewer struct {
	PreviewFn func(modified, merged diffmend.Document) (*diffmend.Preview, error)
}

func (p *Previewer) Preview(modified, merged diffmend.Document) (*diffmend.Preview, error) {
	return p.PreviewFn(modified, merged)
}

// PreviewParser is a mock implementation of diffmend.PreviewParser.
type PreviewParser struct {
	ParseFn func(r io.Reader) (*diffmend.Preview, error)
}

func (p *PreviewParser) Parse(r io.Reader) (*diffmend.Preview, error) {
	return p.ParseFn(r)
}
