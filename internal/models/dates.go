package models

import (
	"strings"
	"time"
)

var looseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"2006.1.2",
	"2006/1/2",
}

// ParseLooseDate accepts the date shapes admins type into forms and
// spreadsheets. Unknown input yields the zero time.
func ParseLooseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
