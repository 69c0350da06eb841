package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true

[data]
rooms_file = "data/salas.csv"
allocations_file = "data/alocacoes.csv"

[engine]
day_start = "08:00"
day_end = "18:00"
slot_minutes = 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "data/salas.csv", cfg.Data.RoomsFile)

	start, end, err := cfg.Engine.DayRange()
	require.NoError(t, err)
	assert.Equal(t, "08:00", start.String())
	assert.Equal(t, "18:00", end.String())
	assert.Equal(t, 60, cfg.Engine.SlotMinutes)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[data]
rooms_file = "data/salas.csv"
allocations_file = "data/alocacoes.csv"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "07:00", cfg.Engine.DayStart)
	assert.Equal(t, "22:00", cfg.Engine.DayEnd)
	assert.Equal(t, 30, cfg.Engine.SlotMinutes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing data files",
			content: `
[server]
http_port = 8080
`,
		},
		{
			name: "bad port",
			content: `
[server]
http_port = 99999

[data]
rooms_file = "a.csv"
allocations_file = "b.csv"
`,
		},
		{
			name: "inverted day range",
			content: `
[data]
rooms_file = "a.csv"
allocations_file = "b.csv"

[engine]
day_start = "22:00"
day_end = "07:00"
`,
		},
		{
			name: "unparsable day start",
			content: `
[data]
rooms_file = "a.csv"
allocations_file = "b.csv"

[engine]
day_start = "morning"
`,
		},
		{
			name: "zero slot",
			content: `
[data]
rooms_file = "a.csv"
allocations_file = "b.csv"

[engine]
slot_minutes = 0
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
