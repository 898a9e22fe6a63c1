// Package registry holds the catalog of renderable components, their
// parameters and their fixture examples, and notifies watchers when entries
// change.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
)

// ComponentRegistry manages all registered components
type ComponentRegistry struct {
	components map[string]*ComponentInfo
	mutex      sync.RWMutex
	watchers   []chan ComponentEvent
}

// RenderFunc builds a component from fixture props and rendered children.
type RenderFunc func(props *yaml.Node, children []templ.Component) (templ.Component, error)

// ComponentInfo holds metadata about a catalog component
type ComponentInfo struct {
	Name        string          `json:"name" yaml:"name"`
	Title       string          `json:"title" yaml:"title"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Controller  string          `json:"controller,omitempty" yaml:"controller,omitempty"`
	Parameters  []ParameterInfo `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Examples    []Example       `json:"examples,omitempty" yaml:"examples,omitempty"`

	render RenderFunc
}

// ParameterInfo describes a component parameter
type ParameterInfo struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Optional bool   `json:"optional" yaml:"optional"`
}

// Node is one component invocation inside a fixture: a component name, its
// props, an optional text child and nested component children.
type Node struct {
	Component string    `yaml:"component" json:"component" validate:"required"`
	Props     yaml.Node `yaml:"props,omitempty" json:"-"`
	Text      string    `yaml:"text,omitempty" json:"text,omitempty"`
	Children  []Node    `yaml:"children,omitempty" json:"children,omitempty" validate:"dive"`
}

// Example is a named fixture of a component.
type Example struct {
	Name        string    `yaml:"name" json:"name" validate:"required,max=64"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Props       yaml.Node `yaml:"props,omitempty" json:"-"`
	Text        string    `yaml:"text,omitempty" json:"text,omitempty"`
	Children    []Node    `yaml:"children,omitempty" json:"children,omitempty" validate:"dive"`
	Source      string    `yaml:"-" json:"source,omitempty"`
}

// ComponentEvent represents a change in the component registry
type ComponentEvent struct {
	Type      EventType
	Component *ComponentInfo
	Timestamp time.Time
}

// EventType represents the type of component event
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

func (t EventType) String() string {
	switch t {
	case EventTypeAdded:
		return "added"
	case EventTypeUpdated:
		return "updated"
	case EventTypeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// NewComponentRegistry creates a new component registry
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		components: make(map[string]*ComponentInfo),
		watchers:   make([]chan ComponentEvent, 0),
	}
}

// Render builds the component from props. A nil or empty props node uses the
// zero props.
func (c *ComponentInfo) Render(props *yaml.Node, children ...templ.Component) (templ.Component, error) {
	if c.render == nil {
		return nil, uierrors.NewRenderError("component has no renderer", nil).WithComponent(c.Name)
	}
	return c.render(props, children)
}

// Example looks up an example by name.
func (c *ComponentInfo) Example(name string) (Example, bool) {
	for _, ex := range c.Examples {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}

// Register adds or updates a component in the registry
func (r *ComponentRegistry) Register(component *ComponentInfo) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	eventType := EventTypeAdded
	if _, exists := r.components[component.Name]; exists {
		eventType = EventTypeUpdated
	}

	r.components[component.Name] = component
	r.notify(eventType, component)
}

// AddExamples attaches examples to a registered component, replacing any
// existing example of the same name.
func (r *ComponentRegistry) AddExamples(name string, examples ...Example) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	current, exists := r.components[name]
	if !exists {
		return uierrors.ErrComponentNotFound(name)
	}

	updated := *current
	updated.Examples = append([]Example(nil), current.Examples...)
	for _, ex := range examples {
		replaced := false
		for i := range updated.Examples {
			if updated.Examples[i].Name == ex.Name {
				updated.Examples[i] = ex
				replaced = true
				break
			}
		}
		if !replaced {
			updated.Examples = append(updated.Examples, ex)
		}
	}

	r.components[name] = &updated
	r.notify(EventTypeUpdated, &updated)
	return nil
}

// ClearExamples drops every example that came from source, or all examples
// when source is empty.
func (r *ComponentRegistry) ClearExamples(source string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for name, current := range r.components {
		kept := make([]Example, 0, len(current.Examples))
		for _, ex := range current.Examples {
			if source != "" && ex.Source != source {
				kept = append(kept, ex)
			}
		}
		if len(kept) == len(current.Examples) {
			continue
		}
		updated := *current
		updated.Examples = kept
		r.components[name] = &updated
		r.notify(EventTypeUpdated, &updated)
	}
}

// Get retrieves a component by name
func (r *ComponentRegistry) Get(name string) (*ComponentInfo, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	component, exists := r.components[name]
	return component, exists
}

// Lookup is Get returning a typed not-found error.
func (r *ComponentRegistry) Lookup(name string) (*ComponentInfo, error) {
	if component, ok := r.Get(name); ok {
		return component, nil
	}
	return nil, uierrors.ErrComponentNotFound(name)
}

// GetAll returns all registered components
func (r *ComponentRegistry) GetAll() map[string]*ComponentInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]*ComponentInfo, len(r.components))
	for name, component := range r.components {
		result[name] = component
	}
	return result
}

// List returns all registered components sorted by name.
func (r *ComponentRegistry) List() []*ComponentInfo {
	r.mutex.RLock()
	result := make([]*ComponentInfo, 0, len(r.components))
	for _, component := range r.components {
		result = append(result, component)
	}
	r.mutex.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Remove removes a component from the registry
func (r *ComponentRegistry) Remove(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	component, exists := r.components[name]
	if !exists {
		return
	}

	delete(r.components, name)
	r.notify(EventTypeRemoved, component)
}

// Watch returns a channel that receives component events
func (r *ComponentRegistry) Watch() <-chan ComponentEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan ComponentEvent, 100)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it
func (r *ComponentRegistry) UnWatch(ch <-chan ComponentEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// Count returns the number of registered components
func (r *ComponentRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.components)
}

// notify must be called with the write lock held.
func (r *ComponentRegistry) notify(eventType EventType, component *ComponentInfo) {
	event := ComponentEvent{
		Type:      eventType,
		Component: component,
		Timestamp: time.Now(),
	}

	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}
