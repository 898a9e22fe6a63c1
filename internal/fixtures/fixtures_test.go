package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/tailblocks/internal/catalog"
	uierrors "github.com/conneroisu/tailblocks/internal/errors"
	"github.com/conneroisu/tailblocks/internal/registry"
)

func newLoader(t *testing.T, exclude ...string) (*Loader, *registry.ComponentRegistry) {
	t.Helper()
	reg := catalog.New()
	return NewLoader(reg, nil, exclude), reg
}

func TestBuiltinFixturesLoad(t *testing.T) {
	loader, reg := newLoader(t)

	loaded, collector := loader.LoadFS(context.Background(), catalog.Fixtures(), ".", "builtin")
	require.NoError(t, collector.Err())
	assert.Greater(t, loaded, 40)

	for _, c := range reg.List() {
		assert.NotEmpty(t, c.Examples, "%s has no examples", c.Name)
		for _, ex := range c.Examples {
			assert.Equal(t, "builtin/"+c.Name+".yml", ex.Source)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid",
			data: "component: badge\nexamples:\n  - name: outline\n    props: {variant: outline}\n    text: New\n",
		},
		{
			name:    "empty",
			data:    "",
			wantErr: "empty fixture",
		},
		{
			name:    "unknown key",
			data:    "component: badge\nexampels: []\n",
			wantErr: "decode fixture",
		},
		{
			name:    "no examples",
			data:    "component: badge\nexamples: []\n",
			wantErr: "invalid fixture",
		},
		{
			name:    "unknown component",
			data:    "component: carousel\nexamples:\n  - name: a\n",
			wantErr: "unknown component",
		},
		{
			name:    "duplicate example",
			data:    "component: badge\nexamples:\n  - name: a\n  - name: a\n",
			wantErr: "duplicate example",
		},
		{
			name:    "bad props",
			data:    "component: badge\nexamples:\n  - name: a\n    props: {colour: red}\n",
			wantErr: "invalid props",
		},
		{
			name:    "props failing validation",
			data:    "component: tabs\nexamples:\n  - name: a\n    props:\n      tabs:\n        - label: No value\n",
			wantErr: "invalid props",
		},
		{
			name:    "unknown child",
			data:    "component: card\nexamples:\n  - name: a\n    children:\n      - component: carousel\n",
			wantErr: "invalid child",
		},
		{
			name: "nested children",
			data: "component: card\nexamples:\n  - name: a\n    children:\n      - component: alert\n        children:\n          - component: badge\n            text: hi\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			f, err := loader.Parse([]byte(tt.data), "test.yml")

			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, f)
				assert.Equal(t, "test.yml", f.Examples[0].Source)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "test.yml")
			assert.True(t, uierrors.IsValidation(err))
		})
	}
}

func TestLoadFSCollectsErrorsAndSkipsExcluded(t *testing.T) {
	loader, reg := newLoader(t, "*.bak", "_*")

	fsys := fstest.MapFS{
		"button.yml":        {Data: []byte("component: button\nexamples:\n  - name: one\n    text: One\n")},
		"nested/badge.yaml": {Data: []byte("component: badge\nexamples:\n  - name: two\n")},
		"broken.yml":        {Data: []byte("component: nope\nexamples:\n  - name: x\n")},
		"_draft.yml":        {Data: []byte("component: nope\n")},
		"old.yml.bak":       {Data: []byte("garbage")},
		"README.md":         {Data: []byte("# fixtures")},
	}

	loaded, collector := loader.LoadFS(context.Background(), fsys, ".", "")
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 1, collector.Len())
	assert.Contains(t, collector.Err().Error(), "broken.yml")

	button, _ := reg.Get("button")
	_, ok := button.Example("one")
	assert.True(t, ok)
}

func TestLoadFileReplacesAndForget(t *testing.T) {
	loader, reg := newLoader(t)
	dir := t.TempDir()
	p := filepath.Join(dir, "badge.yml")

	require.NoError(t, os.WriteFile(p, []byte("component: badge\nexamples:\n  - name: a\n  - name: b\n"), 0o644))
	_, err := loader.LoadFile(p)
	require.NoError(t, err)
	badge, _ := reg.Get("badge")
	assert.Len(t, badge.Examples, 2)

	require.NoError(t, os.WriteFile(p, []byte("component: badge\nexamples:\n  - name: c\n"), 0o644))
	_, err = loader.LoadFile(p)
	require.NoError(t, err)
	badge, _ = reg.Get("badge")
	require.Len(t, badge.Examples, 1)
	assert.Equal(t, "c", badge.Examples[0].Name)

	loader.Forget(p)
	badge, _ = reg.Get("badge")
	assert.Empty(t, badge.Examples)

	_, err = loader.LoadFile(filepath.Join(dir, "missing.yml"))
	assert.True(t, uierrors.IsType(err, uierrors.ErrorTypeIO))
}

func TestLoadDirMissing(t *testing.T) {
	loader, _ := newLoader(t)
	loaded, collector := loader.LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, 0, loaded)
	assert.True(t, collector.HasErrors())
}

func TestIsFixture(t *testing.T) {
	assert.True(t, IsFixture("a/b.yml"))
	assert.True(t, IsFixture("b.YAML"))
	assert.False(t, IsFixture("b.json"))
}
