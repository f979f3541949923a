// Package mock provides test doubles for diffmend interfaces.
package mock

import "github.com/fwojciec/diffmend"

// Compile-time interface verification.
var (
	_ diffmend.Differ    = (*Differ)(nil)
	_ diffmend.Merger    = (*Merger)(nil)
	_ diffmend.Clipboard = (*Clipboard)(nil)
)

// Differ is a mock implementation of diffmend.Differ.
type Differ struct {
	ComputeFn func(base, modified diffmend.Document) diffmend.Comparison
}

func (d *Differ) Compute(base, modified diffmend.Document) diffmend.Comparison {
	return d.ComputeFn(base, modified)
}

// Merger is a mock implementation of diffmend.Merger.
type Merger struct {
	MergeFn func(base, modified diffmend.Document, selected diffmend.Selection) (*diffmend.MergeResult, error)
}

func (m *Merger) Merge(base, modified diffmend.Document, selected diffmend.Selection) (*diffmend.MergeResult, error) {
	return m.MergeFn(base, modified, selected)
}

// Clipboard is a mock implementation of diffmend.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
