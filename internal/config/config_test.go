package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/pkg/twmerge"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(v *viper.Viper)
		expectError bool
		check       func(t *testing.T, c *Config)
	}{
		{
			name:  "defaults",
			setup: func(v *viper.Viper) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultHost, c.Server.Host)
				assert.Equal(t, DefaultPort, c.Server.Port)
				assert.Equal(t, DefaultExcludePatterns, c.Components.ExcludePatterns)
				assert.Empty(t, c.Components.FixturePaths)
				assert.Equal(t, DefaultSnapshotsDir, c.Snapshots.Dir)
				assert.Equal(t, twmerge.DefaultCacheSize, c.Merge.CacheSize)
				assert.Equal(t, "info", c.Log.Level)
				assert.Equal(t, "text", c.Log.Format)
			},
		},
		{
			name: "explicit values",
			setup: func(v *viper.Viper) {
				v.Set("server.port", 3000)
				v.Set("server.host", "0.0.0.0")
				v.Set("server.allowed_origins", []string{"http://localhost:3000"})
				v.Set("components.fixture_paths", []string{"./fixtures", "./more"})
				v.Set("merge.prefix", "tw-")
				v.Set("merge.cache_size", 0)
				v.Set("log.format", "json")
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 3000, c.Server.Port)
				assert.Equal(t, "0.0.0.0:3000", c.Addr())
				assert.Equal(t, []string{"http://localhost:3000"}, c.Server.AllowedOrigins)
				assert.Equal(t, []string{"./fixtures", "./more"}, c.Components.FixturePaths)
				assert.Equal(t, "tw-", c.Merge.Prefix)
				assert.Equal(t, 0, c.Merge.CacheSize)
				assert.Equal(t, "json", c.Log.Format)
			},
		},
		{
			name: "port zero is kept",
			setup: func(v *viper.Viper) {
				v.Set("server.port", 0)
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 0, c.Server.Port)
			},
		},
		{
			name: "invalid port type",
			setup: func(v *viper.Viper) {
				v.Set("server.port", "invalid_port")
			},
			expectError: true,
		},
		{
			name: "traversal in snapshot dir",
			setup: func(v *viper.Viper) {
				v.Set("snapshots.dir", "../../etc")
			},
			expectError: true,
		},
		{
			name: "unknown log format",
			setup: func(v *viper.Viper) {
				v.Set("log.format", "xml")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			tt.setup(v)

			config, err := LoadFrom(v)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, config)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, config)
			tt.check(t, config)
		})
	}
}

func TestLoadFromFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
  allowed_origins:
    - https://example.com
components:
  exclude_patterns: ["*.draft.yml"]
log:
  level: debug
`), 0o644))

	t.Setenv("TAILBLOCKS_SERVER_HOST", "127.0.0.1")
	t.Setenv("TAILBLOCKS_COMPONENTS_FIXTURE_PATHS", "./a, ./b")

	v := viper.New()
	Setup(v, "", path)
	require.NoError(t, v.ReadInConfig())

	config, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, []string{"https://example.com"}, config.Server.AllowedOrigins)
	assert.Equal(t, []string{"*.draft.yml"}, config.Components.ExcludePatterns)
	assert.Equal(t, []string{"./a", "./b"}, config.Components.FixturePaths)
	assert.Equal(t, logging.LevelDebug, config.LoggerConfig().Level)
}

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected []string
	}{
		{"comma and space", "./a, ./b", []string{"./a", "./b"}},
		{"comma only", "./a,./b", []string{"./a", "./b"}},
		{"trailing comma", "./a,", []string{"./a"}},
		{"path with spaces", "./my fixtures, ./b", []string{"./my fixtures", "./b"}},
		{"yaml list", []string{"./a", " ./b "}, []string{"./a", "./b"}},
		{"yaml list with commas", []any{"./a,./b", "./c"}, []string{"./a", "./b", "./c"}},
		{"empty string", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set("components.fixture_paths", tt.value)
			assert.Equal(t, tt.expected, stringSlice(v, "components.fixture_paths", []string{"default"}))
		})
	}

	assert.Equal(t, []string{"default"}, stringSlice(viper.New(), "components.fixture_paths", []string{"default"}))
}

func TestSetupExplicitFileWins(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "explicit.yml")
	fromEnv := filepath.Join(dir, "env.yml")
	require.NoError(t, os.WriteFile(explicit, []byte("server:\n  port: 1111\n"), 0o644))
	require.NoError(t, os.WriteFile(fromEnv, []byte("server:\n  port: 2222\n"), 0o644))

	v := viper.New()
	Setup(v, explicit, fromEnv)
	require.NoError(t, v.ReadInConfig())
	assert.Equal(t, explicit, v.ConfigFileUsed())

	config, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 1111, config.Server.Port)
}

func TestDefaultIsValid(t *testing.T) {
	config := Default()
	require.NoError(t, validateConfig(config))
	assert.Equal(t, "localhost:8080", config.Addr())
}

func TestMergerUsesPrefix(t *testing.T) {
	config := Default()
	config.Merge.Prefix = "tw-"
	m := config.Merger()

	assert.Equal(t, "tw-p-4", m.Merge("tw-p-2 tw-p-4"))
	assert.Equal(t, "p-2 p-4", m.Merge("p-2 p-4"))
}
