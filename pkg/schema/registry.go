package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds named schemas. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register adds a schema under its name, replacing any schema already
// registered under the same name.
func (r *Registry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register a nil schema")
	}
	if s.Name == "" {
		return fmt.Errorf("cannot register a schema without a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[s.Name] = s
	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered schema names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, preloaded with the built-in
// schemas. User schema files loaded at startup are registered here too.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, s := range builtins() {
			// Built-in schemas always carry a name.
			_ = defaultRegistry.Register(s)
		}
	})
	return defaultRegistry
}

// Merge layers an overlay schema on top of a base and returns the combined
// schema. Key sets are unioned with base order first, overlay field rules
// replace base rules for the same key, and the overlay's name wins when it
// has one. Neither input is modified.
func Merge(base, overlay *Schema) *Schema {
	if base == nil && overlay == nil {
		return nil
	}
	if base == nil {
		return overlay
	}
	if overlay == nil {
		return base
	}

	merged := &Schema{
		Name:     base.Name,
		Required: unionKeys(base.Required, overlay.Required),
		Optional: unionKeys(base.Optional, overlay.Optional),
		Rules:    make(map[string]FieldRule, len(base.Rules)+len(overlay.Rules)),
	}
	if overlay.Name != "" {
		merged.Name = overlay.Name
	}
	for k, rule := range base.Rules {
		merged.Rules[k] = rule
	}
	for k, rule := range overlay.Rules {
		merged.Rules[k] = rule
	}
	return merged
}

// unionKeys concatenates b onto a, dropping duplicates while preserving
// first-seen order.
func unionKeys(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, k := range list {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// builtins constructs the schemas every installation ships with.
func builtins() []*Schema {
	return []*Schema{
		{
			Name:     "application",
			Required: []string{"app_name", "environment", "database_url", "port", "api_key"},
			Optional: []string{"debug", "log_level", "host", "timeout"},
			Rules: map[string]FieldRule{
				"app_name":     {NotEmpty: true, Constraint: StringRule{}},
				"environment":  {Constraint: StringRule{Enum: []string{"development", "test", "staging", "production"}}},
				"database_url": {NotEmpty: true, Constraint: StringRule{}},
				"port":         {Constraint: NumberRule{Min: fptr(1), Max: fptr(65535)}},
				"api_key":      {NotEmpty: true, Constraint: StringRule{}},
				"debug":        {Constraint: BoolRule{}},
				"log_level":    {Constraint: StringRule{Enum: []string{"debug", "info", "warn", "error"}}},
				"host":         {NotEmpty: true, Constraint: StringRule{}},
				"timeout":      {Constraint: NumberRule{Min: fptr(0)}},
			},
		},
		{
			Name:     "database",
			Required: []string{"host", "port", "database", "user", "password"},
			Optional: []string{"ssl", "pool_min", "pool_max"},
			Rules: map[string]FieldRule{
				"host":     {NotEmpty: true, Constraint: StringRule{}},
				"port":     {Constraint: NumberRule{Min: fptr(1), Max: fptr(65535)}},
				"database": {NotEmpty: true, Constraint: StringRule{}},
				"user":     {NotEmpty: true, Constraint: StringRule{}},
				"password": {NotEmpty: true, Constraint: StringRule{}},
				"ssl":      {Constraint: BoolRule{}},
				"pool_min": {Constraint: NumberRule{Min: fptr(0)}},
				"pool_max": {Constraint: NumberRule{Min: fptr(1)}},
			},
		},
		{
			Name:     "auth",
			Required: []string{"jwt_secret", "session_timeout"},
			Optional: []string{"algorithm", "refresh_enabled"},
			Rules: map[string]FieldRule{
				"jwt_secret":      {NotEmpty: true, Constraint: StringRule{MinLength: iptr(32)}},
				"session_timeout": {Constraint: NumberRule{Min: fptr(300), Max: fptr(86400)}},
				"algorithm":       {Constraint: StringRule{Enum: []string{"HS256", "HS384", "HS512", "RS256"}}},
				"refresh_enabled": {Constraint: BoolRule{}},
			},
		},
	}
}

func iptr(n int) *int         { return &n }
func fptr(f float64) *float64 { return &f }
