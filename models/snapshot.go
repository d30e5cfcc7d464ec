package models

import "time"

// Snapshot is a point-in-time view of the activity log, newest first
type Snapshot struct {
	Changes      []LogEntryView `json:"changes"`
	LastModified string         `json:"lastModified"`
}

// NewSnapshot builds a snapshot from entries already ordered newest first.
// An empty log is stamped with now.
func NewSnapshot(entries []LogEntry, now time.Time) *Snapshot {
	changes := make([]LogEntryView, 0, len(entries))
	for _, entry := range entries {
		changes = append(changes, entry.View())
	}

	lastModified := FormatTimestamp(now)
	if len(changes) > 0 {
		lastModified = changes[0].Timestamp
	}

	return &Snapshot{
		Changes:      changes,
		LastModified: lastModified,
	}
}

// IsEmpty reports whether the snapshot carries no changes
func (s *Snapshot) IsEmpty() bool {
	return len(s.Changes) == 0
}
