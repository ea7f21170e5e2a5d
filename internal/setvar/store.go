package setvar

import "github.com/gitrdm/setcsp/internal/csperrors"

// Store is the single owner of every declared variable. Constraints
// reference variables by name, never by pointer, so the store is the
// only place a variable's bound state lives outside a branch's cloned
// working copy (spec §4.1, §9 "Cyclic references").
type Store struct {
	uni   *Universe
	vars  map[string]*Variable
	order []string // insertion order, used by the FIRST variable heuristic
}

// NewStore returns an empty variable store over a fresh universe.
func NewStore() *Store {
	return &Store{uni: NewUniverse(), vars: make(map[string]*Variable)}
}

// Universe returns the store's shared element universe.
func (s *Store) Universe() *Universe {
	return s.uni
}

// Add inserts v, rejecting a duplicate name or an already-inconsistent
// variable (spec §4.1).
func (s *Store) Add(v *Variable) error {
	if _, exists := s.vars[v.Name]; exists {
		return csperrors.NewInvariantViolation(v.Name, "variable already declared")
	}
	if err := v.Consistent(); err != nil {
		return csperrors.NewInvariantViolation(v.Name, err.Error())
	}
	s.vars[v.Name] = v
	s.order = append(s.order, v.Name)
	return nil
}

// Get retrieves a variable by name.
func (s *Store) Get(name string) (*Variable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// MustGet retrieves a variable by name, returning UnknownVariable if it
// was never declared. Used by constraint constructors to validate
// references eagerly.
func (s *Store) MustGet(name string) (*Variable, error) {
	v, ok := s.vars[name]
	if !ok {
		return nil, csperrors.NewUnknownVariable(name)
	}
	return v, nil
}

// Names returns variable names in declaration order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of declared variables.
func (s *Store) Len() int {
	return len(s.vars)
}

// Clone deep-copies every variable; branching calls this to fork state
// without mutating the root variables (spec §3 "Lifecycle").
func (s *Store) Clone() map[string]*Variable {
	out := make(map[string]*Variable, len(s.vars))
	for name, v := range s.vars {
		out[name] = v.Clone()
	}
	return out
}
