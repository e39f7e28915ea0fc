package extract

import "strings"

// Item is the raw payload of one list item.
type Item struct {
	Payload string
	Offset  int // byte offset of Payload within the region
}

// Tokenizer walks a list region one item at a time. Each call to Next
// resumes from where the previous item ended, so the region is scanned once.
type Tokenizer struct {
	region string
	pos    int
}

// NewTokenizer creates a tokenizer over a list region.
func NewTokenizer(region string) *Tokenizer {
	return &Tokenizer{region: region}
}

// Next returns the next item. The payload runs from just after the item
// marker to the next item marker, or to the end of the region for the last
// item. It returns false once no item marker remains.
func (t *Tokenizer) Next() (Item, bool) {
	idx := strings.Index(t.region[t.pos:], itemOpen)
	if idx < 0 {
		t.pos = len(t.region)
		return Item{}, false
	}
	start := t.pos + idx + len(itemOpen)

	end := len(t.region)
	if next := strings.Index(t.region[start:], itemOpen); next >= 0 {
		end = start + next
	}
	t.pos = end

	return Item{Payload: t.region[start:end], Offset: start}, true
}

// Rest returns the unconsumed part of the region.
func (t *Tokenizer) Rest() string {
	return t.region[t.pos:]
}
