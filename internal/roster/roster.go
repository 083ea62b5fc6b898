// Package roster turns serialised team descriptions into contributors.
//
// Role names map to constructors through a Registry. Adding a role means
// registering a constructor; neither the aggregator nor existing roles change.
package roster

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-solid/internal/domain"
)

// Built-in role names.
const (
	RoleDeveloper      = "developer"
	RoleManager        = "manager"
	RoleProjectManager = "project_manager"
)

var (
	// ErrUnknownRole indicates that a role name has no registered constructor.
	ErrUnknownRole = errors.New("unknown role")

	// ErrDuplicateRole indicates that a role name is already registered.
	ErrDuplicateRole = errors.New("role already registered")

	// ErrCostOutOfRange indicates a base cost outside [0, domain.MaxCostCents].
	ErrCostOutOfRange = errors.New("cost out of range")

	// ErrInvalidRoster indicates that a roster document failed to parse or validate.
	ErrInvalidRoster = errors.New("invalid roster")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Constructor builds a contributor from its base cost.
type Constructor func(cost domain.Cents) domain.Contributor

// Registry maps role names to constructors. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	roles map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{roles: make(map[string]Constructor)}
}

// DefaultRegistry returns a registry holding the built-in roles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(RoleDeveloper, func(c domain.Cents) domain.Contributor { return domain.NewDeveloperRole(c) })
	r.MustRegister(RoleManager, func(c domain.Cents) domain.Contributor { return domain.NewManagerRole(c) })
	r.MustRegister(RoleProjectManager, func(c domain.Cents) domain.Contributor { return domain.NewProjectManagerRole(c) })
	return r
}

// Register adds a constructor under name.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" || ctor == nil {
		return fmt.Errorf("register role %q: name and constructor are required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.roles[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRole, name)
	}
	r.roles[name] = ctor
	return nil
}

// MustRegister is Register that panics on error. Intended for init-time wiring.
func (r *Registry) MustRegister(name string, ctor Constructor) {
	if err := r.Register(name, ctor); err != nil {
		panic(err)
	}
}

// Roles returns the registered role names in sorted order.
func (r *Registry) Roles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.roles))
	for name := range r.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves every spec to a contributor, preserving order. Costs outside
// [0, domain.MaxCostCents] are rejected so the weighted total cannot overflow.
func (r *Registry) Build(specs []domain.RoleSpec) ([]domain.Contributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Contributor, 0, len(specs))
	for i, spec := range specs {
		ctor, ok := r.roles[spec.Role]
		if !ok {
			return nil, fmt.Errorf("worker %d: %w: %q", i, ErrUnknownRole, spec.Role)
		}
		if spec.CostCents < 0 || spec.CostCents > domain.MaxCostCents {
			return nil, fmt.Errorf("worker %d: %w: %d", i, ErrCostOutOfRange, int64(spec.CostCents))
		}
		out = append(out, ctor(spec.CostCents))
	}
	return out, nil
}

// Document is the on-disk roster layout.
//
//	workers:
//	  - role: developer
//	    cost: 40000
type Document struct {
	Workers []domain.RoleSpec `yaml:"workers" validate:"max=10000,dive"`
}

// Decode parses and validates a YAML roster.
func Decode(rd io.Reader) ([]domain.RoleSpec, error) {
	var doc Document
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	return doc.Workers, nil
}

// CountByRole tallies specs per role name.
func CountByRole(specs []domain.RoleSpec) map[string]int {
	counts := make(map[string]int, len(specs))
	for _, s := range specs {
		counts[s.Role]++
	}
	return counts
}

// Sample returns the reference team: one developer, one manager and one
// project manager whose weighted total is 95099991.
func Sample() []domain.RoleSpec {
	return []domain.RoleSpec{
		{Role: RoleDeveloper, CostCents: 40000},
		{Role: RoleManager, CostCents: 700000},
		{Role: RoleProjectManager, CostCents: 9999999},
	}
}
