// Package fixtures loads YAML example fixtures and attaches them to the
// components of a registry.
//
// A fixture file names one component and lists its examples:
//
//	component: button
//	examples:
//	  - name: destructive
//	    props: {variant: destructive}
//	    text: Delete
package fixtures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/internal/registry"
)

// File is the decoded form of one fixture file.
type File struct {
	Component string             `yaml:"component" validate:"required"`
	Examples  []registry.Example `yaml:"examples" validate:"required,min=1,dive"`
}

// IsFixture reports whether name has a fixture extension.
func IsFixture(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}

// Loader parses fixture files and registers their examples.
type Loader struct {
	registry *registry.ComponentRegistry
	logger   logging.Logger
	exclude  []string
	validate *validator.Validate
}

// NewLoader creates a loader attaching examples to reg. Files whose base name
// matches one of the exclude patterns are skipped.
func NewLoader(reg *registry.ComponentRegistry, logger logging.Logger, exclude []string) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{
		registry: reg,
		logger:   logger.WithComponent("fixtures"),
		exclude:  exclude,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Excluded reports whether the file at p is skipped.
func (l *Loader) Excluded(p string) bool {
	base := path.Base(filepath.ToSlash(p))
	for _, pattern := range l.exclude {
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// Parse decodes and validates a fixture. Unknown keys, unknown components,
// duplicate example names and props the component cannot decode are errors.
func (l *Loader) Parse(data []byte, source string) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid(source, "", "empty fixture", nil)
		}
		return nil, invalid(source, "", "decode fixture", err)
	}
	if err := l.validate.Struct(f); err != nil {
		return nil, invalid(source, f.Component, "invalid fixture", err)
	}

	info, err := l.registry.Lookup(f.Component)
	if err != nil {
		return nil, invalid(source, f.Component, "unknown component", nil)
	}

	seen := make(map[string]bool, len(f.Examples))
	for i := range f.Examples {
		ex := &f.Examples[i]
		ex.Source = source
		if seen[ex.Name] {
			return nil, invalid(source, f.Component, "duplicate example", nil).WithExample(ex.Name)
		}
		seen[ex.Name] = true

		if _, err := info.Render(&ex.Props); err != nil {
			return nil, invalid(source, f.Component, "invalid props", err).WithExample(ex.Name)
		}
		if err := l.checkChildren(ex.Children); err != nil {
			return nil, invalid(source, f.Component, "invalid child", err).WithExample(ex.Name)
		}
	}

	return &f, nil
}

func (l *Loader) checkChildren(children []registry.Node) error {
	for i := range children {
		child := &children[i]
		info, err := l.registry.Lookup(child.Component)
		if err != nil {
			return err
		}
		if _, err := info.Render(&child.Props); err != nil {
			return err
		}
		if err := l.checkChildren(child.Children); err != nil {
			return err
		}
	}
	return nil
}

func invalid(source, component, msg string, cause error) *uierrors.UIError {
	e := uierrors.NewValidationError(uierrors.ErrCodeFixtureInvalid, msg).WithFile(source)
	if component != "" {
		e = e.WithComponent(component)
	}
	e.Cause = cause
	return e
}

// Register parses data and attaches its examples. Examples previously loaded
// from the same source are replaced.
func (l *Loader) Register(data []byte, source string) (*File, error) {
	f, err := l.Parse(data, source)
	if err != nil {
		return nil, err
	}
	l.registry.ClearExamples(source)
	if err := l.registry.AddExamples(f.Component, f.Examples...); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadFS loads every fixture under root in fsys. Sources are recorded as
// prefix joined with the path inside fsys. Invalid files are collected and
// loading continues with the next file.
func (l *Loader) LoadFS(ctx context.Context, fsys fs.FS, root, prefix string) (int, *uierrors.ErrorCollector) {
	collector := uierrors.NewErrorCollector()
	loaded := 0

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !IsFixture(p) || l.Excluded(p) {
			return nil
		}

		source := p
		if prefix != "" {
			source = path.Join(prefix, p)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			collector.AddError(uierrors.NewIOError(uierrors.ErrCodeFileNotFound, "read fixture", err).WithFile(source))
			return nil
		}

		f, err := l.Register(data, source)
		if err != nil {
			collector.AddError(err)
			l.logger.Warn(ctx, err, "skipping fixture", "file", source)
			return nil
		}

		loaded += len(f.Examples)
		l.logger.Debug(ctx, "loaded fixture", "file", source, "component", f.Component, "examples", len(f.Examples))
		return nil
	})
	if err != nil {
		collector.AddError(fmt.Errorf("walk %s: %w", prefix, err))
	}

	return loaded, collector
}

// LoadDir loads every fixture below dir on disk.
func (l *Loader) LoadDir(ctx context.Context, dir string) (int, *uierrors.ErrorCollector) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		collector := uierrors.NewErrorCollector()
		collector.AddError(uierrors.NewIOError(uierrors.ErrCodeFileNotFound, "fixture directory not found", err).WithFile(dir))
		return 0, collector
	}
	return l.LoadFS(ctx, os.DirFS(dir), ".", sourceOf(dir))
}

// LoadFile reloads a single fixture file from disk, as the watcher does on
// change.
func (l *Loader) LoadFile(p string) (*File, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, uierrors.NewIOError(uierrors.ErrCodeFileNotFound, "read fixture", err).WithFile(p)
	}
	return l.Register(data, sourceOf(p))
}

// Forget drops the examples loaded from a deleted fixture file.
func (l *Loader) Forget(p string) {
	l.registry.ClearExamples(sourceOf(p))
}

func sourceOf(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
