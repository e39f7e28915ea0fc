// Package render turns counter records into the chart page.
//
// Records are written as object literals into the data array of a chart
// script. The surrounding page is two fixed fragments, the prefix that opens
// the data array and the suffix that closes it.
package render

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmylchreest/optview/pkg/counter"
)

//go:embed resources/start_index.html
var defaultPrefix string

//go:embed resources/end_index.html
var defaultSuffix string

// Template is the fixed page text around the data array. It is read once
// and never modified.
type Template struct {
	Prefix string
	Suffix string
}

// Default returns the compiled-in chart page.
func Default() Template {
	return Template{Prefix: defaultPrefix, Suffix: defaultSuffix}
}

// LoadTemplate reads replacement fragments from disk. An empty path keeps
// the compiled-in fragment for that side.
func LoadTemplate(prefixPath, suffixPath string) (Template, error) {
	t := Default()
	if prefixPath != "" {
		data, err := os.ReadFile(prefixPath)
		if err != nil {
			return Template{}, fmt.Errorf("failed to read template prefix: %w", err)
		}
		t.Prefix = string(data)
	}
	if suffixPath != "" {
		data, err := os.ReadFile(suffixPath)
		if err != nil {
			return Template{}, fmt.Errorf("failed to read template suffix: %w", err)
		}
		t.Suffix = string(data)
	}
	return t, nil
}

// Render returns prefix, joined records and suffix with nothing in between.
func (t Template) Render(records counter.Records) string {
	data := Join(records)

	var sb strings.Builder
	sb.Grow(len(t.Prefix) + len(data) + len(t.Suffix))
	sb.WriteString(t.Prefix)
	sb.WriteString(data)
	sb.WriteString(t.Suffix)
	return sb.String()
}

// RenderTo writes the same bytes as Render to w.
func (t Template) RenderTo(w io.Writer, records counter.Records) error {
	for _, part := range []string{t.Prefix, Join(records), t.Suffix} {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

// Join formats every record and separates them with a bare comma.
func Join(records counter.Records) string {
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = FormatRecord(r)
	}
	return strings.Join(parts, ",")
}

// FormatRecord writes one record as {name: "...", y: N, sliced: BOOL}.
func FormatRecord(r counter.Record) string {
	return fmt.Sprintf(`{name: "%s", y: %d, sliced: %t}`, EscapeName(r.Name), r.Count, r.Largest)
}

var nameEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
	"</", `<\/`,
)

// EscapeName makes a name safe inside a double-quoted script string that is
// itself inside a <script> element.
func EscapeName(name string) string {
	return nameEscaper.Replace(name)
}
