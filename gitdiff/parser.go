// Package gitdiff implements preview parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var _ diffmend.PreviewParser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads diff content and returns the hunks of every file it contains,
// in input order.
func (p *Parser) Parse(r io.Reader) (*diffmend.Preview, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	preview := &diffmend.Preview{}
	for _, f := range files {
		for _, frag := range f.TextFragments {
			preview.Hunks = append(preview.Hunks, convertFragment(frag))
		}
	}

	return preview, nil
}

func convertFragment(frag *gitdiff.TextFragment) diffmend.Hunk {
	hunk := diffmend.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Lines:    make([]diffmend.PreviewLine, 0, len(frag.Lines)),
	}

	// Track line numbers for old and new documents
	oldLineNum := int(frag.OldPosition)
	newLineNum := int(frag.NewPosition)

	for _, l := range frag.Lines {
		line := diffmend.PreviewLine{
			Content: strings.TrimSuffix(l.Line, "\n"),
		}

		switch l.Op {
		case gitdiff.OpContext:
			line.Type = diffmend.LineContext
			line.OldLineNum = oldLineNum
			line.NewLineNum = newLineNum
			oldLineNum++
			newLineNum++
		case gitdiff.OpAdd:
			line.Type = diffmend.LineAdded
			line.NewLineNum = newLineNum
			newLineNum++
		case gitdiff.OpDelete:
			line.Type = diffmend.LineDeleted
			line.OldLineNum = oldLineNum
			oldLineNum++
		}

		hunk.Lines = append(hunk.Lines, line)
	}

	return hunk
}
