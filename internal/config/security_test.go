package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateServerConfig_Security(t *testing.T) {
	tests := []struct {
		name        string
		config      ServerConfig
		expectError bool
		errorType   string
	}{
		{name: "valid server config", config: ServerConfig{Port: 8080, Host: "localhost"}},
		{name: "valid port range minimum", config: ServerConfig{Port: 1, Host: "127.0.0.1"}},
		{name: "valid port range maximum", config: ServerConfig{Port: 65535, Host: "0.0.0.0"}},
		{name: "system assigned port", config: ServerConfig{Port: 0, Host: "localhost"}},
		{
			name:        "invalid negative port",
			config:      ServerConfig{Port: -1, Host: "localhost"},
			expectError: true,
			errorType:   "not in valid range",
		},
		{
			name:        "invalid port too high",
			config:      ServerConfig{Port: 65536, Host: "localhost"},
			expectError: true,
			errorType:   "not in valid range",
		},
		{
			name:        "command injection in host",
			config:      ServerConfig{Port: 8080, Host: "localhost; rm -rf /"},
			expectError: true,
			errorType:   "dangerous character",
		},
		{
			name:        "backtick injection in host",
			config:      ServerConfig{Port: 8080, Host: "localhost`whoami`"},
			expectError: true,
			errorType:   "dangerous character",
		},
		{
			name:   "wildcard origin",
			config: ServerConfig{Port: 8080, AllowedOrigins: []string{"*"}},
		},
		{
			name:        "origin without scheme",
			config:      ServerConfig{Port: 8080, AllowedOrigins: []string{"example.com"}},
			expectError: true,
			errorType:   "http(s) origin",
		},
		{
			name:        "javascript origin",
			config:      ServerConfig{Port: 8080, AllowedOrigins: []string{"javascript:alert(1)"}},
			expectError: true,
			errorType:   "http(s) origin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateServerConfig(&tt.config)

			if tt.expectError {
				assert.Error(t, err)
				if tt.errorType != "" {
					assert.Contains(t, strings.ToLower(err.Error()), tt.errorType)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePath_Security(t *testing.T) {
	tests := []struct {
		path        string
		expectError bool
	}{
		{"./fixtures", false},
		{"fixtures/buttons", false},
		{"testdata/snapshots", false},
		{"a/../b", false},
		{"", true},
		{"../fixtures", true},
		{"fixtures/../../etc", true},
		{"fixtures;rm -rf", true},
		{"$(whoami)", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateComponentsConfig_Security(t *testing.T) {
	assert.NoError(t, validateComponentsConfig(&ComponentsConfig{
		FixturePaths:    []string{"./fixtures"},
		ExcludePatterns: []string{"*.bak", "_*"},
	}))
	assert.Error(t, validateComponentsConfig(&ComponentsConfig{FixturePaths: []string{"../../secrets"}}))
	assert.Error(t, validateComponentsConfig(&ComponentsConfig{ExcludePatterns: []string{"[unclosed"}}))
}

func TestValidateSnapshotsConfig_Security(t *testing.T) {
	assert.NoError(t, validateSnapshotsConfig(&SnapshotsConfig{Dir: "testdata/snapshots"}))
	assert.Error(t, validateSnapshotsConfig(&SnapshotsConfig{Dir: "/var/snapshots"}))
	assert.Error(t, validateSnapshotsConfig(&SnapshotsConfig{Dir: "../snapshots"}))
}
