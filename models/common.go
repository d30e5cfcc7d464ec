package models

import (
	"time"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t the way clients receive it, e.g. 2024-05-01T10:00:00.000Z
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// ParseTimestamp parses a value produced by FormatTimestamp
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampFormat, s)
}

// MessageResponse is the body of the rank endpoint
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the body of a degraded snapshot read
type ErrorResponse struct {
	Error   string         `json:"error"`
	Changes []LogEntryView `json:"changes"`
}
