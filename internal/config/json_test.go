package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{`"600ms"`, 600 * time.Millisecond, false},
		{`"1m30s"`, 90 * time.Second, false},
		{`1000000`, time.Millisecond, false},
		{`"later"`, 0, true},
		{`true`, 0, true},
		{`{`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"orders_dsn":       "file:x?mode=memory",
		"seed_demo_orders": false,
		"typing_delay":     "1s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		withArgs(t, "-config", pathFlag)

		cfg := &Config{LogLevel: "info"}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "file:x?mode=memory", cfg.OrdersDSN)
		assert.False(t, cfg.SeedDemoOrders)
		assert.Equal(t, time.Second, cfg.TypingDelay)
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep their value")
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		withArgs(t)

		cfg := &Config{OrdersDSN: "defaults", TypingDelay: 42 * time.Second}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "defaults", cfg.OrdersDSN)
		assert.Equal(t, 42*time.Second, cfg.TypingDelay)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		withArgs(t, "-c", bad)

		assert.Error(t, parseJson(&Config{}))
	})
}
