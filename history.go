package diffmend

import "time"

// MergeRecord describes one completed merge.
type MergeRecord struct {
	BasePath     string    `json:"base_path"`
	ModifiedPath string    `json:"modified_path"`
	OutputPath   string    `json:"output_path,omitempty"` // Empty when printed or copied
	Selected     []int     `json:"selected"`
	Restored     int       `json:"restored"` // Lines placed under a heading
	Orphans      int       `json:"orphans"`  // Lines placed in the overflow block
	Stats        Stats     `json:"stats"`
	MergedAt     time.Time `json:"merged_at"`
}

// HistoryStore persists merge records.
type HistoryStore interface {
	// Append adds a record to the history at path.
	Append(path string, record MergeRecord) error
	// Load returns all records at path. Returns empty slice if none exist.
	Load(path string) ([]MergeRecord, error)
}
