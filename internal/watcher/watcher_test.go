package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(9), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestChangeEventGone(t *testing.T) {
	assert.True(t, ChangeEvent{Type: EventTypeDeleted}.Gone())
	assert.True(t, ChangeEvent{Type: EventTypeRenamed}.Gone())
	assert.False(t, ChangeEvent{Type: EventTypeModified}.Gone())
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)

	watcher.AddFilter(YAMLFilter)
	watcher.AddHandler(func([]ChangeEvent) error { return nil })
	assert.Len(t, watcher.filters, 1)
	assert.Len(t, watcher.handlers, 1)
}

func TestFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter FileFilter
		path   string
		want   bool
	}{
		{"yml", YAMLFilter, "fixtures/button.yml", true},
		{"yaml upper", YAMLFilter, "fixtures/button.YAML", true},
		{"templ", YAMLFilter, "fixtures/button.templ", false},
		{"exclude match", ExcludeFilter("*.bak", "_*"), "fixtures/_draft.yml", false},
		{"exclude miss", ExcludeFilter("*.bak", "_*"), "fixtures/draft.yml", true},
		{"hidden", NoHiddenFilter, "fixtures/.button.yml.swp", false},
		{"backup", NoHiddenFilter, "fixtures/button.yml~", false},
		{"visible", NoHiddenFilter, "fixtures/button.yml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter(tt.path))
		})
	}
}

func TestValidatePath(t *testing.T) {
	p, err := validatePath("./fixtures/")
	require.NoError(t, err)
	assert.Equal(t, "fixtures", p)

	_, err = validatePath("../outside")
	assert.Error(t, err)
	_, err = validatePath("")
	assert.Error(t, err)
}

func TestDebouncerDedupesAndOrders(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)

	d.addEvent(ChangeEvent{Type: EventTypeCreated, Path: "b.yml"})
	d.addEvent(ChangeEvent{Type: EventTypeModified, Path: "a.yml"})
	d.addEvent(ChangeEvent{Type: EventTypeDeleted, Path: "b.yml"})

	select {
	case events := <-d.output:
		require.Len(t, events, 2)
		assert.Equal(t, "a.yml", events[0].Path)
		assert.Equal(t, "b.yml", events[1].Path)
		assert.Equal(t, EventTypeDeleted, events[1].Type)
	case <-time.After(time.Second):
		t.Fatal("debouncer never flushed")
	}
}

func TestFileWatcherDeliversFixtureChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	watcher, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)

	watcher.AddFilter(YAMLFilter)
	watcher.AddFilter(ExcludeFilter("_*"))

	var mu sync.Mutex
	var got []ChangeEvent
	received := make(chan struct{}, 10)
	watcher.AddHandler(func(events []ChangeEvent) error {
		mu.Lock()
		got = append(got, events...)
		mu.Unlock()
		received <- struct{}{}
		return nil
	})

	require.NoError(t, watcher.AddRecursive(dir))
	require.NoError(t, watcher.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_draft.yml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "badge.yml"), []byte("component: badge"), 0o644))

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("no change delivered")
	}

	require.NoError(t, watcher.Stop())

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, got)
	for _, e := range got {
		assert.Equal(t, "badge.yml", filepath.Base(e.Path))
	}
}

func TestStopWithoutStart(t *testing.T) {
	watcher, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	assert.NoError(t, watcher.Stop())
}
