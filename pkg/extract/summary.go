package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is the caption a report places above its counter list,
// e.g. "11 issue types:".
type Heading struct {
	Text     string
	Declared int  // leading integer of Text
	HasCount bool // whether Text starts with an integer
}

var leadingInt = regexp.MustCompile(`^\s*(\d+)`)

// Summary reads the heading closest before the first list in the document.
// It is advisory: callers compare Declared with the number of extracted
// records and warn on mismatch.
func Summary(text string) (Heading, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return Heading{}, false
	}

	list := doc.Find("ul").First()
	if list.Length() == 0 {
		return Heading{}, false
	}

	h := list.PrevAllFiltered("h1, h2, h3, h4, h5, h6").First()
	if h.Length() == 0 {
		return Heading{}, false
	}

	heading := Heading{Text: strings.Join(strings.Fields(h.Text()), " ")}
	if m := leadingInt.FindStringSubmatch(heading.Text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			heading.Declared = n
			heading.HasCount = true
		}
	}
	return heading, true
}
