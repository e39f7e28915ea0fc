package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// resetLogger resets the logger to default state for test isolation
func resetLogger() {
	Init(Options{})
}

func TestInit_Levels(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		logged    []string
		notLogged []string
	}{
		{
			name:      "default",
			opts:      Options{},
			logged:    []string{"info msg", "warn msg", "error msg"},
			notLogged: []string{"debug msg"},
		},
		{
			name:   "debug",
			opts:   Options{Debug: true},
			logged: []string{"debug msg", "info msg", "warn msg", "error msg"},
		},
		{
			name:      "quiet",
			opts:      Options{Quiet: true},
			logged:    []string{"error msg"},
			notLogged: []string{"debug msg", "info msg", "warn msg"},
		},
		{
			name:      "quiet overrides debug",
			opts:      Options{Debug: true, Quiet: true},
			logged:    []string{"error msg"},
			notLogged: []string{"debug msg", "info msg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			opts := tt.opts
			opts.Output = buf
			Init(opts)
			defer resetLogger()

			Debug("debug msg")
			Info("info msg")
			Warn("warn msg")
			Error("error msg")

			out := buf.String()
			for _, m := range tt.logged {
				if !strings.Contains(out, m) {
					t.Errorf("expected %q in output", m)
				}
			}
			for _, m := range tt.notLogged {
				if strings.Contains(out, m) {
					t.Errorf("did not expect %q in output", m)
				}
			}
		})
	}
}

func TestInit_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("records extracted", "count", 11)

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"count":11`) {
		t.Errorf("expected structured count, got %q", out)
	}
}

func TestInit_CustomLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Logger: slog.New(slog.NewTextHandler(buf, nil))})
	defer resetLogger()

	Info("custom logger")
	if !strings.Contains(buf.String(), "custom logger") {
		t.Error("expected message from custom logger")
	}
}

func TestWith_ReturnsLoggerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	With("source", "index.html").Info("converted")

	out := buf.String()
	if !strings.Contains(out, "converted") || !strings.Contains(out, "source=index.html") {
		t.Errorf("expected message and attrs, got %q", out)
	}
}
