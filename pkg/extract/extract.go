package extract

import (
	"strconv"
	"strings"

	"github.com/jmylchreest/optview/internal/logger"
	"github.com/jmylchreest/optview/pkg/counter"
)

// Drop reasons recorded in warnings.
const (
	ReasonNoColon   = "no colon separator"
	ReasonEmptyName = "empty counter name"
)

// Result holds the records found in a report.
type Result struct {
	Records   counter.Records
	Warnings  []Warning
	ListFound bool
}

// HasWarnings reports whether any list item was dropped.
func (r Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Extract finds the first list in text and parses every item in it.
// A report without a list yields an empty result, not an error. A count
// that is not an integer stops extraction with a *ParseError.
func Extract(text string) (Result, error) {
	region, ok := FindList(text)
	if !ok {
		logger.Debug("no list region found", "input_bytes", len(text))
		return Result{}, nil
	}

	result := Result{ListFound: true}
	tok := NewTokenizer(region)
	for {
		item, ok := tok.Next()
		if !ok {
			break
		}

		rec, reason, err := ParseItem(item)
		if err != nil {
			return Result{}, err
		}
		if reason != "" {
			w := Warning{Offset: item.Offset, Reason: reason, Payload: strings.TrimSpace(item.Payload)}
			logger.Debug("list item dropped", "offset", w.Offset, "reason", reason)
			result.Warnings = append(result.Warnings, w)
			continue
		}
		result.Records = append(result.Records, rec)
	}

	logger.Debug("list extracted",
		"region_bytes", len(region),
		"records", len(result.Records),
		"dropped", len(result.Warnings))
	return result, nil
}

// ParseItem splits an item payload on its first colon. It returns a non-empty
// reason when the item should be skipped, and a *ParseError when the count
// is not an integer. A trailing "</li>" is ignored.
func ParseItem(item Item) (counter.Record, string, error) {
	payload := strings.TrimSpace(item.Payload)
	payload = strings.TrimSpace(strings.TrimSuffix(payload, itemClose))

	name, value, found := strings.Cut(payload, ":")
	if !found {
		return counter.Record{}, ReasonNoColon, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return counter.Record{}, ReasonEmptyName, nil
	}

	value = strings.TrimSpace(value)
	n, err := strconv.Atoi(value)
	if err != nil {
		return counter.Record{}, "", &ParseError{
			Name:   name,
			Text:   value,
			Offset: item.Offset,
			Err:    err,
		}
	}

	return counter.Record{Name: name, Count: n}, "", nil
}
