package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"seconds", "2s", 2 * time.Second, false},
		{"complex", "1m30s", 90 * time.Second, false},
		{"invalid", "soon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert := assert.New(t)
	assert.Equal("sexpr", cfg.Output.Format)
	assert.False(cfg.Output.ShowTokens)
	assert.Equal("info", cfg.Log.Level)
	assert.Equal("fnl> ", cfg.Repl.Prompt)
	assert.Equal("...> ", cfg.Repl.ContinuePrompt)
	assert.Equal(DefaultDebounce, cfg.Watch.Debounce.Duration)
	assert.NotContains(cfg.Repl.HistoryFile, "~")
	assert.NoError(cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fnl.toml")
	content := `
[output]
format = "yaml"
show_tokens = true

[log]
level = "debug"

[repl]
prompt = "> "
history_file = "/tmp/fnl_history"

[watch]
debounce = "250ms"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("yaml", cfg.Output.Format)
	assert.True(cfg.Output.ShowTokens)
	assert.Equal("debug", cfg.Log.Level)
	assert.Equal("> ", cfg.Repl.Prompt)
	assert.Equal("...> ", cfg.Repl.ContinuePrompt)
	assert.Equal("/tmp/fnl_history", cfg.Repl.HistoryFile)
	assert.Equal(250*time.Millisecond, cfg.Watch.Debounce.Duration)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fnl.yml")
	content := `
output:
  format: json
  no_color: true
log:
  level: warn
watch:
  debounce: 1s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("json", cfg.Output.Format)
	assert.True(cfg.Output.NoColor)
	assert.Equal("warn", cfg.Log.Level)
	assert.Equal(time.Second, cfg.Watch.Debounce.Duration)
	assert.Equal("fnl> ", cfg.Repl.Prompt)
}

func TestParseDebounce(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		format   Format
		expected time.Duration
	}{
		{"toml absent", "[output]\nformat = \"json\"\n", FormatTOML, DefaultDebounce},
		{"toml empty table", "[watch]\n", FormatTOML, DefaultDebounce},
		{"toml zero", "[watch]\ndebounce = \"0s\"\n", FormatTOML, 0},
		{"yaml absent", "output:\n  format: json\n", FormatYAML, DefaultDebounce},
		{"yaml zero", "watch:\n  debounce: 0s\n", FormatYAML, 0},
		{"yaml set", "watch:\n  debounce: 20ms\n", FormatYAML, 20 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Watch.Debounce.Duration)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.toml")},
		{"bad toml", write("bad.toml", "[output\nformat = ")},
		{"bad yaml", write("bad.yaml", "output: [")},
		{"unknown format", write("format.toml", "[output]\nformat = \"xml\"\n")},
		{"unknown level", write("level.toml", "[log]\nlevel = \"loud\"\n")},
		{"negative debounce", write("debounce.toml", "[watch]\ndebounce = \"-1s\"\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestDetectFormat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FormatTOML, DetectFormat("fnl.toml"))
	assert.Equal(FormatYAML, DetectFormat("fnl.yaml"))
	assert.Equal(FormatYAML, DetectFormat("FNL.YML"))
	assert.Equal(FormatTOML, DetectFormat("fnl"))
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", level.String())
}
