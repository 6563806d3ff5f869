package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Debug(nil, "x")
	Info(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", errors.New("boom"))
}

func TestErrorHelperAddsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Error(logger, "lookup failed", errors.New("boom"), slog.String(FieldSpecies, "pikachu"))

	out := buf.String()
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "species=pikachu") {
		t.Fatalf("unexpected log line %q", out)
	}
}
