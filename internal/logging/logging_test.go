package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/cinemas-cli/internal/config"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("component", "app").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "app", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestNew_ConsoleIsPlainForNonTerminalWriters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LoggingConfig{Level: "debug", Format: "console"}, &buf)

	logger.Debug().Int("count", 3).Msg("catalog loaded")

	out := buf.String()
	assert.Contains(t, out, "catalog loaded")
	assert.Contains(t, out, "count=3")
	assert.NotContains(t, out, "\x1b[")
}

func TestParseLevel_CoversConfigLevels(t *testing.T) {
	want := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
	}
	for _, name := range config.LogLevels() {
		level, ok := want[name]
		require.True(t, ok, "unexpected level name %q", name)
		assert.Equal(t, level, ParseLevel(name), name)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestOpenFile_CreatesDirectoryAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cinemas.log")

	for _, line := range []string{"one\n", "two\n"} {
		f, err := OpenFile(path)
		require.NoError(t, err)
		_, err = f.WriteString(line)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/logs/cinemas.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "cinemas.log"), got)

	got, err = ExpandHome("/var/log/cinemas.log")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/cinemas.log", got)

	got, err = ExpandHome("~other/file")
	require.NoError(t, err)
	assert.Equal(t, "~other/file", got)
}

func TestNew_ConsoleIsPlainForLogFiles(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "cinemas.log"))
	require.NoError(t, err)

	logger := New(config.LoggingConfig{Level: "info", Format: "console"}, f)
	logger.Info().Msg("to file")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.NotContains(t, string(data), "\x1b[")
}
