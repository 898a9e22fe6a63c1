// Package config provides configuration management for tailblocks using
// Viper for flexible configuration loading from files, environment variables,
// and command-line flags.
//
// Values come from .tailblocks.yml (or the file named by TAILBLOCKS_CONFIG_FILE),
// with TAILBLOCKS_<SECTION>_<OPTION> environment overrides. Load applies
// defaults and validates the result before returning it.
package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/pkg/twmerge"
)

const (
	// EnvPrefix is the prefix of every environment override.
	EnvPrefix = "TAILBLOCKS"
	// ConfigFileEnv names an explicit config file.
	ConfigFileEnv = "TAILBLOCKS_CONFIG_FILE"
	// ConfigName is the default config file name, without extension.
	ConfigName = ".tailblocks"
)

type Config struct {
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Components ComponentsConfig `yaml:"components" mapstructure:"components"`
	Snapshots  SnapshotsConfig  `yaml:"snapshots" mapstructure:"snapshots"`
	Merge      MergeConfig      `yaml:"merge" mapstructure:"merge"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	Host           string   `yaml:"host" mapstructure:"host"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

type ComponentsConfig struct {
	// FixturePaths are extra directories of example fixtures loaded on top of
	// the built-in ones.
	FixturePaths    []string `yaml:"fixture_paths" mapstructure:"fixture_paths"`
	ExcludePatterns []string `yaml:"exclude_patterns" mapstructure:"exclude_patterns"`
}

type SnapshotsConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// MergeConfig configures the merge command only. Components always render
// through twmerge.Default, since their built-in classes carry no prefix.
type MergeConfig struct {
	Prefix    string `yaml:"prefix" mapstructure:"prefix"`
	CacheSize int    `yaml:"cache_size" mapstructure:"cache_size"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Defaults.
const (
	DefaultHost         = "localhost"
	DefaultPort         = 8080
	DefaultSnapshotsDir = "testdata/snapshots"
)

// DefaultExcludePatterns skips editor backups and disabled fixtures.
var DefaultExcludePatterns = []string{"*.bak", "_*"}

// Setup points v at the config file and environment. An explicit path wins
// over TAILBLOCKS_CONFIG_FILE, which wins over .tailblocks.yml in the working
// directory.
func Setup(v *viper.Viper, explicit, envFile string) {
	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case envFile != "":
		v.SetConfigFile(envFile)
	default:
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(ConfigName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only sees keys viper already knows about.
	for _, key := range []string{
		"server.port", "server.host", "server.allowed_origins",
		"components.fixture_paths", "components.exclude_patterns",
		"snapshots.dir", "merge.prefix", "merge.cache_size",
		"log.level", "log.format",
	} {
		_ = v.BindEnv(key)
	}
}

// Load builds a Config from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom builds a Config from v, applying defaults and validation.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, uierrors.NewConfigError(uierrors.ErrCodeConfigInvalid, "decode configuration: "+err.Error())
	}

	// Slices set from env arrive as a single comma separated string.
	config.Server.AllowedOrigins = stringSlice(v, "server.allowed_origins", config.Server.AllowedOrigins)
	config.Components.FixturePaths = stringSlice(v, "components.fixture_paths", config.Components.FixturePaths)
	config.Components.ExcludePatterns = stringSlice(v, "components.exclude_patterns", config.Components.ExcludePatterns)

	applyDefaults(&config, v)

	if err := validateConfig(&config); err != nil {
		return nil, uierrors.NewConfigError(uierrors.ErrCodeConfigInvalid, "invalid configuration: "+err.Error())
	}

	return &config, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	config := &Config{}
	applyDefaults(config, viper.New())
	return config
}

func applyDefaults(config *Config, v *viper.Viper) {
	if config.Server.Host == "" {
		config.Server.Host = DefaultHost
	}
	if !v.IsSet("server.port") {
		config.Server.Port = DefaultPort
	}
	if !v.IsSet("components.exclude_patterns") && len(config.Components.ExcludePatterns) == 0 {
		config.Components.ExcludePatterns = append([]string(nil), DefaultExcludePatterns...)
	}
	if config.Snapshots.Dir == "" {
		config.Snapshots.Dir = DefaultSnapshotsDir
	}
	if !v.IsSet("merge.cache_size") {
		config.Merge.CacheSize = twmerge.DefaultCacheSize
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// stringSlice reads a list that may come from a YAML sequence or from a
// comma-separated environment variable. Environment strings are split on
// commas only, so paths containing spaces survive.
func stringSlice(v *viper.Viper, key string, current []string) []string {
	if !v.IsSet(key) {
		return current
	}
	var raw []string
	if s, ok := v.Get(key).(string); ok {
		raw = []string{s}
	} else {
		raw = v.GetStringSlice(key)
	}
	out := make([]string, 0, len(raw))
	for _, elem := range raw {
		for _, s := range strings.Split(elem, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Merger builds the class merger described by the merge section. It backs
// the merge command; render, serve and verify ignore it.
func (c *Config) Merger() *twmerge.Merger {
	return twmerge.New(twmerge.Config{Prefix: c.Merge.Prefix, CacheSize: c.Merge.CacheSize})
}

// LoggerConfig translates the log section for internal/logging.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(c.Log.Level)
	lc.Format = c.Log.Format
	return lc
}

// Addr is the listen address of the preview server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := validateComponentsConfig(&config.Components); err != nil {
		return fmt.Errorf("components config: %w", err)
	}
	if err := validateSnapshotsConfig(&config.Snapshots); err != nil {
		return fmt.Errorf("snapshots config: %w", err)
	}
	if config.Merge.CacheSize < 0 {
		return fmt.Errorf("merge config: cache_size %d must not be negative", config.Merge.CacheSize)
	}
	if strings.ContainsAny(config.Merge.Prefix, " \t\n:") {
		return fmt.Errorf("merge config: prefix %q contains whitespace or a colon", config.Merge.Prefix)
	}
	switch strings.ToLower(config.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log config: unknown format %q (want text or json)", config.Log.Format)
	}
	return nil
}

var dangerousChars = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'", "\\"}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// 0 lets the system pick a port, which tests rely on.
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	for _, char := range dangerousChars {
		if strings.Contains(config.Host, char) {
			return fmt.Errorf("host contains dangerous character: %s", char)
		}
	}

	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("allowed origin %q must be an http(s) origin", origin)
		}
	}

	return nil
}

// validateComponentsConfig validates components configuration values
func validateComponentsConfig(config *ComponentsConfig) error {
	for _, path := range config.FixturePaths {
		if err := validatePath(path); err != nil {
			return fmt.Errorf("invalid fixture path '%s': %w", path, err)
		}
	}
	for _, pattern := range config.ExcludePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern '%s': %w", pattern, err)
		}
	}
	return nil
}

func validateSnapshotsConfig(config *SnapshotsConfig) error {
	if err := validatePath(config.Dir); err != nil {
		return fmt.Errorf("invalid dir '%s': %w", config.Dir, err)
	}
	if filepath.IsAbs(filepath.Clean(config.Dir)) {
		return fmt.Errorf("dir should be relative path: %s", config.Dir)
	}
	return nil
}

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)
	for _, part := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if part == ".." {
			return uierrors.ErrPathTraversal(path)
		}
	}

	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
