// Package output provides formatters for displaying bundle scan results
// in various output formats (table, plain, json, yaml).
//
// The package uses a registry pattern so formatter implementations can be
// selected at runtime by name:
//
//	formatter, err := output.Get("table")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jamesainslie/agentpack/pkg/agentpack/bundle"
	"github.com/jamesainslie/agentpack/pkg/agentpack/component"
)

// Result contains the complete output data for formatting.
type Result struct {
	// Records contains the classified records, in scan order.
	Records []bundle.Record `json:"records" yaml:"records"`

	// Source is the directory or file set that was scanned.
	Source string `json:"source" yaml:"source"`

	// Dropped is the number of files rejected by the relevance filter.
	Dropped int `json:"dropped" yaml:"dropped"`

	// Skipped is the number of malformed or unreadable handles.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Elapsed is the scan duration.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// TotalSize returns the sum of all record sizes in bytes.
func (r *Result) TotalSize() int64 {
	var total int64
	for _, rec := range r.Records {
		total += rec.SizeBytes
	}
	return total
}

// ByType groups the result's records per component type, preserving scan
// order within each group. Types with no records are omitted.
func (r *Result) ByType() map[component.Type][]bundle.Record {
	groups := make(map[component.Type][]bundle.Record)
	for _, rec := range r.Records {
		groups[rec.Type] = append(groups[rec.Type], rec)
	}
	return groups
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]FormatterFactory)}
}

// Register adds a formatter factory to the registry, replacing any
// existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
