package models

import (
	"encoding/json"
	"time"
)

// ChangeType classifies a logged change
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
)

// Valid reports whether t is one of the known change types
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeAdded, ChangeModified, ChangeDeleted:
		return true
	}
	return false
}

// LogEntry is one immutable record of a completed rank change.
// ID and Timestamp are assigned by the store on insert.
type LogEntry struct {
	ID          int64           `json:"id" db:"id"`
	User        string          `json:"user" db:"log_user"`
	Type        ChangeType      `json:"type" db:"log_type"`
	Timestamp   time.Time       `json:"timestamp" db:"log_timestamp"`
	Description string          `json:"description" db:"log_description"`
	Raw         json.RawMessage `json:"raw,omitempty" db:"raw_data"`
}

// Validate checks the caller-supplied fields of a new entry
func (e *LogEntry) Validate() []string {
	var errors []string

	if e.User == "" {
		errors = append(errors, "User is required")
	}

	if !e.Type.Valid() {
		errors = append(errors, "Type must be one of added, modified, deleted")
	}

	if e.Description == "" {
		errors = append(errors, "Description is required")
	}

	if len(e.Raw) > 0 && !json.Valid(e.Raw) {
		errors = append(errors, "Raw must be valid JSON")
	}

	return errors
}

// View drops the raw payload for the read paths
func (e LogEntry) View() LogEntryView {
	return LogEntryView{
		ID:          e.ID,
		User:        e.User,
		Type:        e.Type,
		Timestamp:   FormatTimestamp(e.Timestamp),
		Description: e.Description,
	}
}

// LogEntryView is the client-facing shape of a LogEntry
type LogEntryView struct {
	ID          int64      `json:"id"`
	User        string     `json:"user"`
	Type        ChangeType `json:"type"`
	Timestamp   string     `json:"timestamp"`
	Description string     `json:"description"`
}
