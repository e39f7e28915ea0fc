// Package extract pulls named counters out of an optimization report.
//
// The report is not parsed as HTML. The extractor scans for the first
// unordered list and splits it on item markers, which is enough for the
// narrow "<li>name: count" shape the reports use. Nested lists are not
// supported.
package extract

import "strings"

const (
	listOpen  = "<ul"
	listClose = "</ul>"
	itemOpen  = "<li>"
	itemClose = "</li>"
)

// FindList returns the first list region in text. The region starts at the
// opening "<ul" marker (attributes included) and stops before the first
// "</ul>". The first closing marker ends the region even if it belongs to a
// different list.
func FindList(text string) (string, bool) {
	start := strings.Index(text, listOpen)
	if start < 0 {
		return "", false
	}
	end := strings.Index(text, listClose)
	if end < start {
		return "", false
	}
	return text[start:end], true
}
