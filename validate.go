package diffmend

import "fmt"

// ValidationReason identifies why a selected ID is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrUnknownID    ValidationReason = "unknown_id"
	ErrNotCandidate ValidationReason = "not_candidate"
)

// ValidationError describes a single invalid ID in a selection.
type ValidationError struct {
	ID        int              // The problematic ID
	Reason    ValidationReason // Why this ID is invalid
	LineCount int              // Number of lines in the base document
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrUnknownID:
		if e.LineCount == 0 {
			return fmt.Sprintf("id %d: base document is empty", e.ID)
		}
		return fmt.Sprintf("id %d is out of bounds (valid: 0-%d)", e.ID, e.LineCount-1)
	case ErrNotCandidate:
		return fmt.Sprintf("id %d: line is not missing from the modified document", e.ID)
	default:
		return fmt.Sprintf("id %d: unknown error", e.ID)
	}
}

// ValidateSelection checks that every selected ID refers to a candidate of the
// comparison. Returns a slice of validation errors in ID order, or nil if the
// selection is valid.
func ValidateSelection(base Document, cmp Comparison, sel Selection) []ValidationError {
	candidates := make(map[int]bool, len(cmp.Candidates))
	for _, c := range cmp.Candidates {
		candidates[c.ID] = true
	}

	var errors []ValidationError

	for _, id := range sel.IDs() {
		if id < 0 || id >= len(base) {
			errors = append(errors, ValidationError{
				ID:        id,
				Reason:    ErrUnknownID,
				LineCount: len(base),
			})
			continue
		}
		if !candidates[id] {
			errors = append(errors, ValidationError{
				ID:        id,
				Reason:    ErrNotCandidate,
				LineCount: len(base),
			})
		}
	}

	return errors
}
