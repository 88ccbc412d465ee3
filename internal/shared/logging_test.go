package shared

import (
	"context"
	"log/slog"
	"testing"
)

func TestInitLogger_LevelParsing(t *testing.T) {
	cases := []struct {
		level   string
		debugOn bool
		infoOn  bool
		warnOn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"bogus", false, true, true}, // unknown level falls back to info
	}
	ctx := context.Background()
	for _, c := range cases {
		l := InitLogger("text", c.level)
		if got := l.Enabled(ctx, slog.LevelDebug); got != c.debugOn {
			t.Errorf("level %q: debug enabled=%v want %v", c.level, got, c.debugOn)
		}
		if got := l.Enabled(ctx, slog.LevelInfo); got != c.infoOn {
			t.Errorf("level %q: info enabled=%v want %v", c.level, got, c.infoOn)
		}
		if got := l.Enabled(ctx, slog.LevelWarn); got != c.warnOn {
			t.Errorf("level %q: warn enabled=%v want %v", c.level, got, c.warnOn)
		}
	}
}

func TestInitLogger_SetsDefault(t *testing.T) {
	l := InitLogger("json", "info")
	if slog.Default() != l {
		t.Error("InitLogger should install the logger as the slog default")
	}
}
