package catalog

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Alert Dialog", Title("alert-dialog"))
	assert.Equal(t, "Button", Title("button"))
	assert.Equal(t, "Toggle Group", Title("toggle-group"))
}

func TestComponents(t *testing.T) {
	components := Components()
	assert.Len(t, components, 40)

	seen := map[string]bool{}
	for _, c := range components {
		assert.False(t, seen[c.Name], "duplicate %s", c.Name)
		seen[c.Name] = true

		assert.Contains(t, CategoryOrder, c.Category, c.Name)
		assert.NotEmpty(t, c.Description, c.Name)
		assert.NotEmpty(t, c.Parameters, c.Name)
		if c.Controller != "" {
			assert.True(t, strings.HasPrefix(c.Controller, "ui--"), c.Name)
		}
	}

	for _, name := range []string{"accordion", "calendar", "sidebar", "resizable", "toggle-group", "kbd"} {
		assert.True(t, seen[name], name)
	}
}

func TestNewRendersEveryComponentWithZeroProps(t *testing.T) {
	r := New()
	assert.Equal(t, 40, r.Count())

	for _, c := range r.List() {
		component, err := c.Render(nil)
		require.NoError(t, err, c.Name)
		assert.NotNil(t, component, c.Name)
	}
}

func TestFixturesCoverEveryComponent(t *testing.T) {
	files, err := fs.Glob(Fixtures(), "*.yml")
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range files {
		names[strings.TrimSuffix(f, ".yml")] = true
	}
	for _, c := range Components() {
		assert.True(t, names[c.Name], "no fixture for %s", c.Name)
	}
}

func TestEveryFixtureFileParses(t *testing.T) {
	files, err := fs.Glob(Fixtures(), "*.yml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		t.Run(f, func(t *testing.T) {
			data, err := fs.ReadFile(Fixtures(), f)
			require.NoError(t, err)

			var doc struct {
				Component string           `yaml:"component"`
				Examples  []map[string]any `yaml:"examples"`
			}
			require.NoError(t, yaml.Unmarshal(data, &doc))
			assert.Equal(t, strings.TrimSuffix(f, ".yml"), doc.Component)
			assert.NotEmpty(t, doc.Examples)
		})
	}
}
