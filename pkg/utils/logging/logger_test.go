package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgdesk/pkg/utils/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"", slog.LevelInfo, true},
		{"debug", slog.LevelDebug, true},
		{"WARN", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if tt.ok {
				gt.NoError(t, err)
				gt.Equal(t, tt.want, got)
			} else {
				gt.Error(t, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Equal(t, logging.FormatJSON, f)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, logging.FormatAuto, f)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewAutoUsesJSONForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, &buf, logging.FormatAuto)
	logger.Debug("hidden")
	logger.Info("visible", "org", "acme")

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, "visible", entry["msg"])
	gt.Equal(t, "acme", entry["org"])
}
