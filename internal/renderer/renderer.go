// Package renderer renders registered components by name, from raw props or
// from a named fixture example.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/pkg/ui"
)

// maxDepth bounds fixture child nesting.
const maxDepth = 16

// ComponentRenderer renders components held by a registry
type ComponentRenderer struct {
	registry *registry.ComponentRegistry
	logger   logging.Logger
}

// NewComponentRenderer creates a new component renderer
func NewComponentRenderer(reg *registry.ComponentRegistry, logger logging.Logger) *ComponentRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ComponentRenderer{
		registry: reg,
		logger:   logger.WithComponent("renderer"),
	}
}

// ParseProps parses a props document. JSON is accepted since it is YAML.
// An empty string yields nil.
func ParseProps(s string) (*yaml.Node, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Build resolves a component and its children without rendering it.
func (r *ComponentRenderer) Build(name string, props *yaml.Node, text string, children []registry.Node) (templ.Component, error) {
	return r.build(name, props, text, children, 0)
}

func (r *ComponentRenderer) build(name string, props *yaml.Node, text string, children []registry.Node, depth int) (templ.Component, error) {
	if depth > maxDepth {
		return nil, uierrors.NewRenderError(fmt.Sprintf("children nested deeper than %d", maxDepth), nil).WithComponent(name)
	}
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	var kids []templ.Component
	if text != "" {
		kids = append(kids, ui.Text(text))
	}
	for i := range children {
		child := &children[i]
		c, err := r.build(child.Component, &child.Props, child.Text, child.Children, depth+1)
		if err != nil {
			return nil, err
		}
		kids = append(kids, c)
	}

	return info.Render(props, kids...)
}

// Lookup validates name and returns the registered component.
func (r *ComponentRenderer) Lookup(name string) (*registry.ComponentInfo, error) {
	if err := validateComponentName(name); err != nil {
		return nil, err
	}
	return r.registry.Lookup(name)
}

// BuildExample resolves a fixture example of a component.
func (r *ComponentRenderer) BuildExample(name, example string) (templ.Component, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	ex, ok := info.Example(example)
	if !ok {
		return nil, uierrors.ErrExampleNotFound(name, example)
	}
	c, err := r.Build(name, &ex.Props, ex.Text, ex.Children)
	if err != nil {
		var ue *uierrors.UIError
		if errors.As(err, &ue) && ue.Example == "" {
			ue.Example = example
		}
		return nil, err
	}
	return c, nil
}

// Render streams a component to w.
func (r *ComponentRenderer) Render(ctx context.Context, w io.Writer, name string, props *yaml.Node, text string) error {
	c, err := r.Build(name, props, text, nil)
	if err != nil {
		return err
	}
	return r.write(ctx, w, name, c)
}

// RenderExampleTo streams a fixture example to w.
func (r *ComponentRenderer) RenderExampleTo(ctx context.Context, w io.Writer, name, example string) error {
	c, err := r.BuildExample(name, example)
	if err != nil {
		return err
	}
	return r.write(ctx, w, name, c)
}

// RenderComponent renders a component with the given props and text child.
func (r *ComponentRenderer) RenderComponent(ctx context.Context, name string, props *yaml.Node, text string) (string, error) {
	var b strings.Builder
	if err := r.Render(ctx, &b, name, props, text); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderExample renders a named fixture example.
func (r *ComponentRenderer) RenderExample(ctx context.Context, name, example string) (string, error) {
	var b strings.Builder
	if err := r.RenderExampleTo(ctx, &b, name, example); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *ComponentRenderer) write(ctx context.Context, w io.Writer, name string, c templ.Component) error {
	if c == nil {
		return nil
	}
	if err := c.Render(ctx, w); err != nil {
		r.logger.Error(ctx, err, "render failed", "component", name)
		return uierrors.NewRenderError("render failed", err).WithComponent(name)
	}
	return nil
}

// validateComponentName rejects anything that is not a plain component name.
func validateComponentName(name string) error {
	if name == "" {
		return uierrors.NewValidationError(uierrors.ErrCodeInvalidPath, "empty component name")
	}
	if strings.Contains(name, "..") {
		return uierrors.ErrPathTraversal(name)
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return uierrors.NewValidationError(uierrors.ErrCodeInvalidPath, fmt.Sprintf("invalid component name %q", name))
		}
	}
	return nil
}
