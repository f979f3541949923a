package diffmend

import "context"

// Source is a decoded text document loaded from disk.
type Source struct {
	Path   string // Path as given by the caller
	Name   string // Base file name
	Format string // Detected markup format, e.g. "markdown"; empty if unknown
	MIME   string // Sniffed MIME type
	Text   string // Decoded text with LF line endings
}

// Lines splits the source text into a Document.
func (s *Source) Lines() Document {
	return SplitLines(s.Text)
}

// DocumentReader loads documents for comparison.
type DocumentReader interface {
	// Read loads and decodes the document at path.
	// Returns an error if the file is not a supported plain-text format.
	Read(ctx context.Context, path string) (*Source, error)
}

// DocumentWriter saves merged documents.
type DocumentWriter interface {
	// Write stores text as dir/name+ext and returns the written path.
	Write(dir, name, ext, text string) (string, error)
}

// FormatDetector determines a document's markup format from its path.
type FormatDetector interface {
	// DetectFromPath returns the format name for the given path,
	// or an empty string if the format cannot be determined.
	DetectFromPath(path string) string
}
