package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Severity represents the severity of a collected issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is one problem found while loading fixtures or verifying snapshots.
type Issue struct {
	Component string
	Example   string
	File      string
	Message   string
	Severity  Severity
}

// Error implements the error interface
func (i Issue) Error() string {
	var b strings.Builder
	if i.File != "" {
		b.WriteString(i.File)
		b.WriteString(": ")
	}
	if i.Component != "" {
		b.WriteString(i.Component)
		if i.Example != "" {
			b.WriteString("/")
			b.WriteString(i.Example)
		}
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s: %s", i.Severity, i.Message)
	return b.String()
}

// ErrorCollector gathers issues and errors from concurrent workers.
type ErrorCollector struct {
	issues []Issue
	errors []error
	mutex  sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		issues: make([]Issue, 0),
		errors: make([]error, 0),
	}
}

// Add records an issue.
func (ec *ErrorCollector) Add(issue Issue) {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.issues = append(ec.issues, issue)
}

// AddError adds a general error to the collector
func (ec *ErrorCollector) AddError(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// Issues returns a copy of the recorded issues ordered by component, then
// example.
func (ec *ErrorCollector) Issues() []Issue {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]Issue, len(ec.issues))
	copy(result, ec.issues)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Component != result[j].Component {
			return result[i].Component < result[j].Component
		}
		return result[i].Example < result[j].Example
	})
	return result
}

// GetAllErrors returns all collected errors, issues first.
func (ec *ErrorCollector) GetAllErrors() []error {
	issues := ec.Issues()
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	all := make([]error, 0, len(issues)+len(ec.errors))
	for _, issue := range issues {
		all = append(all, issue)
	}
	return append(all, ec.errors...)
}

// HasErrors reports whether anything of error severity was collected.
// Warnings alone do not count.
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	if len(ec.errors) > 0 {
		return true
	}
	for _, issue := range ec.issues {
		if issue.Severity >= SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of issues and errors collected.
func (ec *ErrorCollector) Len() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.issues) + len(ec.errors)
}

// Clear clears all errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.issues = ec.issues[:0]
	ec.errors = ec.errors[:0]
}

// ByComponent returns the issues for one component.
func (ec *ErrorCollector) ByComponent(component string) []Issue {
	var out []Issue
	for _, issue := range ec.Issues() {
		if issue.Component == component {
			out = append(out, issue)
		}
	}
	return out
}

// Err joins everything collected into one error, or returns nil when the
// collector holds no error-severity entries.
func (ec *ErrorCollector) Err() error {
	if !ec.HasErrors() {
		return nil
	}
	return errors.Join(ec.GetAllErrors()...)
}
