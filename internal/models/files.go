package models

import (
	"strings"
	"time"
)

// FileSummary is one entry of the remote file listing
type FileSummary struct {
	Name         string
	Size         int64
	LastModified *time.Time
}

// FileContent is the decoded body of GET /api/files/{name}
type FileContent struct {
	Filename string
	Content  string
	Size     int64
}

// DeleteResult is the decoded body of DELETE /api/files/{name}
type DeleteResult struct {
	Success bool
	Message string
}

// timestampLayouts covers RFC 3339 and the str(datetime) form the server emits
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a server timestamp. It returns nil for empty or
// unrecognized input.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "None" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// TotalSize sums the sizes of the given files
func TotalSize(files []FileSummary) int64 {
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total
}
