package diffmend

import "sort"

// Selection is a set of candidate IDs chosen for restoration.
// The zero value is an empty selection ready to use.
type Selection struct {
	ids map[int]struct{}
}

// NewSelection returns a selection containing ids.
func NewSelection(ids ...int) Selection {
	var s Selection
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add includes id in the selection.
func (s *Selection) Add(id int) {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	s.ids[id] = struct{}{}
}

// Toggle flips the membership of id and reports whether it is now selected.
func (s *Selection) Toggle(id int) bool {
	if s.Has(id) {
		delete(s.ids, id)
		return false
	}
	s.Add(id)
	return true
}

// SelectAll includes every candidate.
func (s *Selection) SelectAll(candidates []Candidate) {
	for _, c := range candidates {
		s.Add(c.ID)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// Has reports whether id is selected.
func (s Selection) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected IDs.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected IDs in ascending order.
func (s Selection) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns an independent copy of the selection.
func (s Selection) Clone() Selection {
	return NewSelection(s.IDs()...)
}
