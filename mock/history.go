package mock

import "github.com/fwojciec/diffmend"

// Compile-time interface verification.
var _ diffmend.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of diffmend.HistoryStore.
type HistoryStore struct {
	AppendFn func(path string, record diffmend.MergeRecord) error
	LoadFn   func(path string) ([]diffmend.MergeRecord, error)
}

func (h *HistoryStore) Append(path string, record diffmend.MergeRecord) error {
	return h.AppendFn(path, record)
}

func (h *HistoryStore) Load(path string) ([]diffmend.MergeRecord, error) {
	return h.LoadFn(path)
}
