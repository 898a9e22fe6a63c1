package registry

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
)

func TestNewComponentRegistry(t *testing.T) {
	registry := NewComponentRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.components)
	assert.NotNil(t, registry.watchers)
	assert.Equal(t, 0, registry.Count())
	assert.Empty(t, registry.List())
}

func TestComponentRegistry_Register(t *testing.T) {
	registry := NewComponentRegistry()

	component := &ComponentInfo{
		Name:       "button",
		Title:      "Button",
		Category:   "actions",
		Parameters: []ParameterInfo{{Name: "variant", Type: "ui.ButtonVariant"}},
	}
	registry.Register(component)

	retrieved, exists := registry.Get("button")
	assert.True(t, exists)
	assert.Equal(t, component, retrieved)
	assert.Equal(t, 1, registry.Count())

	all := registry.GetAll()
	assert.Len(t, all, 1)
	assert.Equal(t, component, all["button"])

	_, err := registry.Lookup("missing")
	assert.True(t, uierrors.IsNotFound(err))
}

func TestComponentRegistry_ListSorted(t *testing.T) {
	registry := NewComponentRegistry()
	for _, name := range []string{"tabs", "accordion", "button"} {
		registry.Register(&ComponentInfo{Name: name})
	}

	list := registry.List()
	require.Len(t, list, 3)
	assert.Equal(t, "accordion", list[0].Name)
	assert.Equal(t, "button", list[1].Name)
	assert.Equal(t, "tabs", list[2].Name)
}

func TestComponentRegistry_Remove(t *testing.T) {
	registry := NewComponentRegistry()
	registry.Register(&ComponentInfo{Name: "badge"})
	registry.Register(&ComponentInfo{Name: "card"})

	registry.Remove("badge")
	registry.Remove("never-registered")

	_, exists := registry.Get("badge")
	assert.False(t, exists)
	assert.Equal(t, 1, registry.Count())
}

func TestComponentRegistry_AddExamples(t *testing.T) {
	registry := NewComponentRegistry()
	original := &ComponentInfo{Name: "badge"}
	registry.Register(original)

	require.NoError(t, registry.AddExamples("badge",
		Example{Name: "default", Source: "a.yml"},
		Example{Name: "outline", Source: "a.yml"},
	))
	require.NoError(t, registry.AddExamples("badge", Example{Name: "outline", Text: "New", Source: "b.yml"}))

	got, _ := registry.Get("badge")
	require.Len(t, got.Examples, 2)
	assert.Empty(t, original.Examples, "registered value is not mutated")

	ex, ok := got.Example("outline")
	require.True(t, ok)
	assert.Equal(t, "New", ex.Text)

	err := registry.AddExamples("nope", Example{Name: "x"})
	assert.True(t, uierrors.IsNotFound(err))

	registry.ClearExamples("a.yml")
	got, _ = registry.Get("badge")
	require.Len(t, got.Examples, 1)
	assert.Equal(t, "b.yml", got.Examples[0].Source)

	registry.ClearExamples("")
	got, _ = registry.Get("badge")
	assert.Empty(t, got.Examples)
}

func TestComponentRegistry_Watch(t *testing.T) {
	registry := NewComponentRegistry()
	watcher := registry.Watch()

	component := &ComponentInfo{Name: "tabs"}

	go func() {
		time.Sleep(10 * time.Millisecond)
		registry.Register(component)
	}()

	select {
	case event := <-watcher:
		assert.Equal(t, EventTypeAdded, event.Type)
		assert.Equal(t, component, event.Component)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected to receive component added event")
	}
}

func TestComponentRegistry_UnWatch(t *testing.T) {
	registry := NewComponentRegistry()

	watcher1 := registry.Watch()
	watcher2 := registry.Watch()
	assert.Len(t, registry.watchers, 2)

	registry.UnWatch(watcher1)
	assert.Len(t, registry.watchers, 1)

	select {
	case _, ok := <-watcher1:
		assert.False(t, ok, "Channel should be closed")
	case <-time.After(10 * time.Millisecond):
		t.Fatal("Channel should be closed immediately")
	}

	registry.Register(&ComponentInfo{Name: "card"})

	select {
	case event := <-watcher2:
		assert.Equal(t, EventTypeAdded, event.Type)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Second watcher should still receive events")
	}
}

func TestComponentRegistry_EventTypes(t *testing.T) {
	registry := NewComponentRegistry()
	watcher := registry.Watch()

	registry.Register(&ComponentInfo{Name: "dialog"})
	registry.Register(&ComponentInfo{Name: "dialog", Title: "Dialog"})
	require.NoError(t, registry.AddExamples("dialog", Example{Name: "open"}))
	registry.Remove("dialog")

	want := []EventType{EventTypeAdded, EventTypeUpdated, EventTypeUpdated, EventTypeRemoved}
	for _, expected := range want {
		select {
		case event := <-watcher:
			assert.Equal(t, expected, event.Type)
			assert.Equal(t, "dialog", event.Component.Name)
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("Expected %s event", expected)
		}
	}
}

func TestComponentRegistry_FullWatcherDoesNotBlock(t *testing.T) {
	registry := NewComponentRegistry()
	_ = registry.Watch()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 250; i++ {
			registry.Register(&ComponentInfo{Name: fmt.Sprintf("c%d", i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Register blocked on an unread watcher")
	}
	assert.Equal(t, 250, registry.Count())
}

func TestComponentRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewComponentRegistry()
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(index int) {
			registry.Register(&ComponentInfo{Name: fmt.Sprintf("Component%d", index)})
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 10, registry.Count())

	for i := 0; i < 10; i++ {
		go func(index int) {
			_, exists := registry.Get(fmt.Sprintf("Component%d", index))
			assert.True(t, exists)
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "added", EventTypeAdded.String())
	assert.Equal(t, "updated", EventTypeUpdated.String())
	assert.Equal(t, "removed", EventTypeRemoved.String())
	assert.Equal(t, "unknown", EventType(42).String())
}
