package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, c.Start)
	assert.Equal(t, 10, c.End)
	assert.Equal(t, 1, c.Count)
	assert.Equal(t, SourceGlobal, c.Source)
	assert.Equal(t, FormatText, c.Format)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, LogFormatConsole, c.LogFormat)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xrandom.yaml")
	data := []byte("start: -3\nend: 3\ncount: 50\nsource: Seeded\nseed: 42\nformat: json\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, -3, c.Start)
	assert.Equal(t, 3, c.End)
	assert.Equal(t, 50, c.Count)
	assert.Equal(t, SourceSeeded, c.Source)
	assert.Equal(t, uint64(42), c.Seed)
	assert.Equal(t, FormatJSON, c.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "nope.yaml")) })
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("XRANDOM_END", "100")
	t.Setenv("XRANDOM_LOG_LEVEL", "DEBUG")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 100, c.End)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadConfigByte(t *testing.T) {
	v := New()
	require.NoError(t, LoadConfigByte(v, []byte(`start = 5
end = 5
log_format = "json"
`), "toml"))

	c, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Start)
	assert.Equal(t, 5, c.End)
	assert.Equal(t, LogFormatJSON, c.LogFormat)
}

func TestValidate(t *testing.T) {
	base := Config{
		Start:     1,
		End:       10,
		Count:     1,
		Source:    SourceGlobal,
		Format:    FormatText,
		LogLevel:  "info",
		LogFormat: LogFormatConsole,
	}
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"reversed range", func(c *Config) { c.Start, c.End = 10, 1 }, "end"},
		{"zero count", func(c *Config) { c.Count = 0 }, "count"},
		{"unknown source", func(c *Config) { c.Source = "dice" }, "source"},
		{"unknown format", func(c *Config) { c.Format = "xml" }, "format"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			tc.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidateZeroValues(t *testing.T) {
	c := Config{Start: 5, End: 0, Count: -1, Source: SourceCrypto, Format: FormatJSON, LogLevel: "warn", LogFormat: LogFormatJSON}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end")
	assert.Contains(t, err.Error(), "count")
}
