//go:build property

package config

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestConfigurationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("ports in range with plain hosts validate", prop.ForAll(
		func(port int, host string, paths []string) bool {
			cfg := Default()
			cfg.Server.Port = port
			cfg.Server.Host = host
			cfg.Components.FixturePaths = paths
			return validateConfig(cfg) == nil
		},
		gen.IntRange(0, 65535),
		gen.RegexMatch(`^[a-zA-Z0-9.-]{1,20}$`),
		gen.SliceOfN(4, gen.RegexMatch(`^[a-zA-Z0-9_]{1,8}(/[a-zA-Z0-9_]{1,8}){0,2}$`)),
	))

	properties.Property("ports out of range never validate", prop.ForAll(
		func(port int) bool {
			cfg := Default()
			cfg.Server.Port = port
			return validateConfig(cfg) != nil
		},
		gen.OneGenOf(gen.IntRange(-100000, -1), gen.IntRange(65536, 1000000)),
	))

	properties.Property("leading parent segments are rejected", prop.ForAll(
		func(depth int, tail string) bool {
			path := strings.Repeat("../", depth) + tail
			return validatePath(path) != nil
		},
		gen.IntRange(1, 5),
		gen.RegexMatch(`^[a-z]{1,8}$`),
	))

	properties.TestingRun(t)
}
