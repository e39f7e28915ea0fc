package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/optview/pkg/counter"
)

var firstSecond = counter.Records{
	{Name: "First", Count: 22, Largest: true},
	{Name: "Second", Count: 10, Largest: false},
}

func TestJoin(t *testing.T) {
	got := Join(firstSecond)
	want := `{name: "First", y: 22, sliced: true},{name: "Second", y: 10, sliced: false}`
	if got != want {
		t.Errorf("Join() =\n%s\nwant\n%s", got, want)
	}
}

func TestJoin_Empty(t *testing.T) {
	if got := Join(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		name   string
		record counter.Record
		want   string
	}{
		{name: "plain", record: counter.Record{Name: "TooCostly", Count: 1147}, want: `{name: "TooCostly", y: 1147, sliced: false}`},
		{name: "largest", record: counter.Record{Name: "LoadClobbered", Count: 4661, Largest: true}, want: `{name: "LoadClobbered", y: 4661, sliced: true}`},
		{name: "negative", record: counter.Record{Name: "Neg", Count: -3}, want: `{name: "Neg", y: -3, sliced: false}`},
		{name: "quote", record: counter.Record{Name: `say "hi"`, Count: 1}, want: `{name: "say \"hi\"", y: 1, sliced: false}`},
		{name: "backslash", record: counter.Record{Name: `a\b`, Count: 1}, want: `{name: "a\\b", y: 1, sliced: false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRecord(tt.record); got != tt.want {
				t.Errorf("FormatRecord() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEscapeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: `"`, want: `\"`},
		{in: `\`, want: `\\`},
		{in: `\"`, want: `\\\"`},
		{in: "line\nbreak", want: `line\nbreak`},
		{in: "tab\there", want: `tab\there`},
		{in: "cr\r", want: `cr\r`},
		{in: "</script>", want: `<\/script>`},
		{in: "sep\u2028", want: `sep\u2028`},
		{in: "Ünïcode", want: "Ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := EscapeName(tt.in); got != tt.want {
				t.Errorf("EscapeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRender_StartsWithPrefix(t *testing.T) {
	tmpl := Default()
	page := tmpl.Render(firstSecond)

	if !strings.HasPrefix(page, tmpl.Prefix) {
		t.Error("output should begin with the prefix fragment")
	}
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Error("default page should begin with a doctype")
	}
	if !strings.HasSuffix(strings.TrimSpace(page), "</html>") {
		t.Error("default page should end with </html>")
	}
	if !strings.Contains(page, Join(firstSecond)) {
		t.Error("output should contain the joined records")
	}
}

func TestRender_Empty(t *testing.T) {
	tmpl := Template{Prefix: "<pre>[", Suffix: "]</pre>"}
	if got := tmpl.Render(nil); got != "<pre>[]</pre>" {
		t.Errorf("Render(nil) = %q", got)
	}
}

func TestRender_NoSeparators(t *testing.T) {
	tmpl := Template{Prefix: "P", Suffix: "S"}
	got := tmpl.Render(counter.Records{{Name: "a", Count: 1, Largest: true}})
	want := `P{name: "a", y: 1, sliced: true}S`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderTo_MatchesRender(t *testing.T) {
	tmpl := Default()
	var buf bytes.Buffer

	if err := tmpl.RenderTo(&buf, firstSecond); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if buf.String() != tmpl.Render(firstSecond) {
		t.Error("RenderTo output differs from Render")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderTo_WriteError(t *testing.T) {
	err := Default().RenderTo(failingWriter{}, firstSecond)
	if err == nil || err.Error() != "disk full" {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "start.html")
	suffix := filepath.Join(dir, "end.html")
	if err := os.WriteFile(prefix, []byte("<custom>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(suffix, []byte("</custom>"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("both fragments", func(t *testing.T) {
		tmpl, err := LoadTemplate(prefix, suffix)
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if tmpl.Prefix != "<custom>" || tmpl.Suffix != "</custom>" {
			t.Errorf("unexpected template %+v", tmpl)
		}
	})

	t.Run("prefix only keeps default suffix", func(t *testing.T) {
		tmpl, err := LoadTemplate(prefix, "")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if tmpl.Suffix != Default().Suffix {
			t.Error("expected default suffix")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTemplate(filepath.Join(dir, "nope.html"), "")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "template prefix") {
			t.Errorf("unexpected error %v", err)
		}
	})
}
