package registry

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
)

type Shared struct {
	ID    string `yaml:"id"`
	Class string `yaml:"class"`
}

type greetingProps struct {
	Shared   `yaml:",inline"`
	Name     string   `yaml:"name" validate:"required"`
	Count    *int     `yaml:"count"`
	Tags     []string `yaml:"tags"`
	Internal string   `yaml:"-"`
	Plain    bool
}

func greeting(p greetingProps, children []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := w.Write([]byte("hello " + p.Name))
		if err != nil {
			return err
		}
		for _, c := range children {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func node(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var n yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &n))
	return &n
}

func TestParameters(t *testing.T) {
	params := Parameters(reflect.TypeOf(greetingProps{}))

	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"id", "class", "name", "count", "tags", "plain"}, names)

	assert.Equal(t, "*int", params[3].Type)
	assert.True(t, params[3].Optional)
	assert.False(t, params[2].Optional)
	assert.Equal(t, "[]string", params[4].Type)

	assert.Nil(t, Parameters(reflect.TypeOf("")))
}

func TestDefineRender(t *testing.T) {
	info := Define(ComponentInfo{Name: "greeting", Title: "Greeting"}, greeting)
	assert.Len(t, info.Parameters, 6)

	child := templ.Raw("!")
	c, err := info.Render(node(t, "name: world\ncount: 2\n"), child)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	assert.Equal(t, "hello world!", b.String())
}

func TestDefineRenderEmptyProps(t *testing.T) {
	info := Define(ComponentInfo{Name: "greeting"}, greeting)

	for _, props := range []*yaml.Node{nil, {}, node(t, "~")} {
		c, err := info.Render(props)
		require.NoError(t, err)
		var b strings.Builder
		require.NoError(t, c.Render(context.Background(), &b))
		assert.Equal(t, "hello ", b.String())
	}
}

func TestDefineRenderRejectsBadProps(t *testing.T) {
	info := Define(ComponentInfo{Name: "greeting"}, greeting)

	_, err := info.Render(node(t, "nmae: typo\n"))
	require.Error(t, err)
	assert.True(t, uierrors.IsValidation(err))
	assert.Contains(t, err.Error(), "component:greeting")

	_, err = info.Render(node(t, "count: lots\n"))
	assert.True(t, uierrors.IsValidation(err))

	_, err = info.Render(node(t, "count: 2\n"))
	require.Error(t, err)
	assert.True(t, uierrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Name")
}

func TestRenderWithoutRenderer(t *testing.T) {
	_, err := (&ComponentInfo{Name: "bare"}).Render(nil)
	assert.True(t, uierrors.IsType(err, uierrors.ErrorTypeRender))
}
