package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/andrew-torda/geneexpr/pkg/logging"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupTo(&buf, logging.Level(false), "text")
	slog.Debug("hidden")
	slog.Info("shown")
	if s := buf.String(); strings.Contains(s, "hidden") || !strings.Contains(s, "shown") {
		t.Fatalf("info level filtering wrong, got %q", s)
	}
	buf.Reset()
	logging.SetupTo(&buf, logging.Level(true), "json")
	slog.Debug("now shown", "n", 3)
	if s := buf.String(); !strings.Contains(s, `"msg":"now shown"`) {
		t.Fatalf("json debug output wrong, got %q", s)
	}
}
