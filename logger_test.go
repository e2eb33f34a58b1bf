package bmfont

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_DefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
	// Must not panic even though output is discarded.
	l.Info("ignored", "key", "value")
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	Logger().Info("atlas packed", "dimension", 64)
	if !strings.Contains(buf.String(), "atlas packed") {
		t.Errorf("expected log output, got %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Info("ignored")
	if buf.Len() != 0 {
		t.Errorf("expected no output after SetLogger(nil), got %q", buf.String())
	}
}
