package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/todo-backend/internal/config"
)

func TestNewLogger_JSONCarriesCommandAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info", Format: "json"}, "server")

	logger.Info("to-do item created", slog.Int64("id", 42))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["cmd"] != "server" {
		t.Errorf("cmd = %v, want server", rec["cmd"])
	}
	if rec["version"] != Version {
		t.Errorf("version = %v, want %q", rec["version"], Version)
	}
	if rec["id"] != float64(42) {
		t.Errorf("id = %v, want 42", rec["id"])
	}
	if _, ok := rec["source"]; ok {
		t.Error("json output must not include source")
	}
}

func TestNewLogger_TextIncludesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "debug", Format: "text"}, "seeder")

	logger.Debug("phase started")

	out := buf.String()
	if !strings.Contains(out, "source=") {
		t.Errorf("text output lacks source: %q", out)
	}
	if !strings.Contains(out, "cmd=seeder") {
		t.Errorf("text output lacks cmd: %q", out)
	}
}

func TestNewLogger_FormatIsCaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "JSON"}, "cleanup").Info("purged")

	if !json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Errorf("format JSON should select the json handler, got %q", buf.String())
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	tests := []struct {
		level     string
		emitDebug bool
		emitInfo  bool
		emitWarn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"WARN", false, false, true},
		{"error", false, false, false},
		{"nonsense", false, true, true},
		{"", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, config.LogConfig{Level: tt.level, Format: "json"}, "server")

			check := func(emit bool, log func(string, ...any), msg string) {
				t.Helper()
				buf.Reset()
				log(msg)
				if got := buf.Len() > 0; got != emit {
					t.Errorf("level %q: %s emitted = %v, want %v", tt.level, msg, got, emit)
				}
			}
			check(tt.emitDebug, logger.Debug, "debug")
			check(tt.emitInfo, logger.Info, "info")
			check(tt.emitWarn, logger.Warn, "warn")
		})
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger := NewLogger(config.LogConfig{Level: "error", Format: "json"}, "server")
	if slog.Default() != logger {
		t.Error("NewLogger should install the returned logger as the slog default")
	}
}
