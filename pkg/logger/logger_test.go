package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"peer_edu_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		level string
		want  zapcore.Level
	}{
		{"debug mode default", "debug", "", zap.DebugLevel},
		{"release mode default", "release", "", zap.InfoLevel},
		{"explicit wins", "debug", "warn", zap.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Server: config.ServerConfig{Mode: tt.mode}, Log: config.LogConfig{Level: tt.level}}
			got, err := Level(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Level(&config.Config{Log: config.LogConfig{Level: "loud"}})
	assert.Error(t, err)
}

func TestNewWritesServiceFields(t *testing.T) {
	var file, console bytes.Buffer
	cfg := &config.Config{Server: config.ServerConfig{Mode: "release"}}

	l, err := New(cfg, zapcore.AddSync(&file), zapcore.AddSync(&console))
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("pairing completed", zap.Int("pairs", 2))
	require.NoError(t, l.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(file.Bytes()), &entry), file.String())
	assert.Equal(t, "pairing completed", entry["msg"])
	assert.Equal(t, serviceName, entry["service"])
	assert.Equal(t, "release", entry["mode"])
	assert.Equal(t, float64(2), entry["pairs"])
	assert.Contains(t, console.String(), "pairing completed")
	assert.NotContains(t, console.String(), "hidden")
}

func TestReplaceRestores(t *testing.T) {
	prev := Log
	restore := Replace(zap.NewExample())
	assert.NotSame(t, prev, Log)
	restore()
	assert.Same(t, prev, Log)
}
