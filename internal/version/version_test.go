package version

import (
	"strings"
	"testing"
)

func TestString_Dirty(t *testing.T) {
	oldVersion, oldDirty := Version, Dirty
	defer func() { Version, Dirty = oldVersion, oldDirty }()

	Version, Dirty = "1.2.0", "false"
	if got := String(); got != "1.2.0" {
		t.Errorf("String() = %q", got)
	}

	Dirty = "true"
	if got := String(); got != "1.2.0-dirty" {
		t.Errorf("String() = %q", got)
	}
	if !Get().Dirty {
		t.Error("expected Get().Dirty to be true")
	}
}

func TestFull(t *testing.T) {
	out := Full()
	if !strings.HasPrefix(out, "optview ") {
		t.Errorf("unexpected first line %q", out)
	}
	for _, label := range []string{"Commit:", "Built:", "Go version:", "OS/Arch:"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected %q in output", label)
		}
	}
}
