package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{" INFO ", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"Error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_SlogJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: BackendSlog, Format: FormatJSON, Level: "warn"}, &buf)
	require.NoError(t, err)

	ctx := context.Background()
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown", "module", "shell")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "shell", rec["module"])
}

func TestNew_ZapJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: BackendZap, Format: FormatJSON, Level: "debug"}, &buf)
	require.NoError(t, err)

	log.With("module", "orders").Debug(context.Background(), "seeded", "count", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "seeded", rec["msg"])
	assert.Equal(t, "orders", rec["module"])
	assert.EqualValues(t, 2, rec["count"])
	assert.Equal(t, "debug", rec["level"])
}

func TestNew_ZapFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: BackendZap, Format: FormatText, Level: "error"}, &buf)
	require.NoError(t, err)

	log.Warn(context.Background(), "quiet")
	assert.Empty(t, buf.String())

	log.Error(context.Background(), "loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_RejectsUnknownNames(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(Options{Backend: "logrus"}, &buf)
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"}, &buf)
	assert.Error(t, err)

	_, err = New(Options{Backend: BackendZap, Format: "xml"}, &buf)
	assert.Error(t, err)

	_, err = New(Options{Level: "chatty"}, &buf)
	assert.Error(t, err)
}
