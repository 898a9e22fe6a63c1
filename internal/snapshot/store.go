package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
)

// Store reads and writes golden files laid out as
// <dir>/<component>/<example>.html.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the root directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the golden file of an example.
func (s *Store) Path(component, example string) (string, error) {
	for _, part := range []string{component, example} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return "", uierrors.ErrPathTraversal(component + "/" + example)
		}
	}
	return filepath.Join(s.dir, component, example+".html"), nil
}

// Read returns the golden HTML. A missing file is reported as
// ERR_SNAPSHOT_MISSING.
func (s *Store) Read(component, example string) (string, error) {
	p, err := s.Path(component, example)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", uierrors.NewNotFoundError(uierrors.ErrCodeSnapshotMissing, "snapshot missing").
			WithComponent(component).WithExample(example).WithFile(p)
	}
	if err != nil {
		return "", uierrors.NewIOError(uierrors.ErrCodeFileNotFound, "read snapshot", err).WithFile(p)
	}
	return string(data), nil
}

// Write stores golden HTML, creating directories as needed.
func (s *Store) Write(component, example, html string) error {
	p, err := s.Path(component, example)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return uierrors.NewIOError(uierrors.ErrCodeInvalidPath, "create snapshot directory", err).WithFile(p)
	}
	if err := os.WriteFile(p, []byte(html), 0o644); err != nil {
		return uierrors.NewIOError(uierrors.ErrCodeInvalidPath, "write snapshot", err).WithFile(p)
	}
	return nil
}

// Stale lists golden files that no longer belong to any known example.
func (s *Store) Stale(known map[string]bool) ([]string, error) {
	var stale []string
	err := filepath.WalkDir(s.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == s.dir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".html" {
			return nil
		}
		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		key := strings.TrimSuffix(filepath.ToSlash(rel), ".html")
		if !known[key] {
			stale = append(stale, p)
		}
		return nil
	})
	return stale, err
}
