// Package unified builds merge previews from line diffs computed with
// znkr.io/diff.
package unified

import (
	"strings"

	"github.com/fwojciec/diffmend"
	"github.com/fwojciec/diffmend/gitdiff"
	"znkr.io/diff"
	"znkr.io/diff/textdiff"
)

// Compile-time interface verification.
var _ diffmend.Previewer = (*Previewer)(nil)

// DefaultContext is the number of unchanged lines shown around each insertion.
const DefaultContext = 3

// Previewer renders a unified diff between two documents and parses it into
// a diffmend.Preview.
type Previewer struct {
	parser  diffmend.PreviewParser
	context int
	name    string
}

// Option configures a Previewer.
type Option func(*Previewer)

// WithContext sets the number of context lines around changes.
func WithContext(n int) Option {
	return func(p *Previewer) {
		p.context = n
	}
}

// WithParser replaces the unified diff parser.
func WithParser(parser diffmend.PreviewParser) Option {
	return func(p *Previewer) {
		p.parser = parser
	}
}

// NewPreviewer creates a new Previewer.
func NewPreviewer(opts ...Option) *Previewer {
	p := &Previewer{
		parser:  gitdiff.NewParser(),
		context: DefaultContext,
		name:    "document",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preview returns the hunks that turn modified into merged.
func (p *Previewer) Preview(modified, merged diffmend.Document) (*diffmend.Preview, error) {
	body := p.Unified(modified, merged)
	if body == "" {
		return &diffmend.Preview{}, nil
	}

	var sb strings.Builder
	sb.WriteString("diff --git a/" + p.name + " b/" + p.name + "\n")
	sb.WriteString("--- a/" + p.name + "\n")
	sb.WriteString("+++ b/" + p.name + "\n")
	sb.WriteString(body)

	return p.parser.Parse(strings.NewReader(sb.String()))
}

// Unified returns the hunks of the unified diff between the two documents,
// without file headers. Returns "" if the documents are identical.
func (p *Previewer) Unified(modified, merged diffmend.Document) string {
	// Every line is terminated so textdiff never takes its missing-newline path.
	// Insert-only merges must come out as pure insertions, hence Optimal.
	return textdiff.Unified(terminated(modified), terminated(merged), diff.Context(p.context), diff.Optimal())
}

func terminated(doc diffmend.Document) string {
	if len(doc) == 0 {
		return ""
	}
	return diffmend.JoinLines(doc) + "\n"
}
