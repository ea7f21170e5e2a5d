// Package csperrors defines the error taxonomy shared by every layer of
// the set-CSP solver: construction-time faults that are always surfaced
// to the caller, and the internal inconsistency fault that the search
// engine treats as a pruning signal and never lets escape.
package csperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvariantViolation reports a variable or option that failed validation
// at problem-construction time (lower ⊄ upper, duplicate name, ...).
// It is always surfaced immediately; solve is never attempted.
type InvariantViolation struct {
	Subject string // variable or option name
	Reason  string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation on %q: %s", e.Subject, e.Reason)
}

// NewInvariantViolation wraps a reason with the offending subject name.
func NewInvariantViolation(subject, reason string) error {
	return errors.WithStack(&InvariantViolation{Subject: subject, Reason: reason})
}

// UnknownVariable reports a constraint referencing a name that was never
// declared before solve.
type UnknownVariable struct {
	Name string
}

func (e *UnknownVariable) Error() string {
	return fmt.Sprintf("unknown variable %q", e.Name)
}

// NewUnknownVariable builds an UnknownVariable error for name.
func NewUnknownVariable(name string) error {
	return errors.WithStack(&UnknownVariable{Name: name})
}

// UnsupportedOption reports a solve() option outside the set enumerated
// in spec §6; rejected before search starts rather than ignored.
type UnsupportedOption struct {
	Option string
}

func (e *UnsupportedOption) Error() string {
	return fmt.Sprintf("unsupported solve option %q", e.Option)
}

// NewUnsupportedOption builds an UnsupportedOption error for option.
func NewUnsupportedOption(option string) error {
	return errors.WithStack(&UnsupportedOption{Option: option})
}

// InconsistencyFault signals that a filter rule or propagation round
// detected unsatisfiable bounds. It is a purely local, expected outcome
// of search: the frame that produced it turns its branch dead and the
// fault is never surfaced past that frame. It carries the constraint or
// variable that detected the inconsistency for debug logging only.
type InconsistencyFault struct {
	Source string
	Reason string
}

func (e *InconsistencyFault) Error() string {
	return fmt.Sprintf("inconsistency at %s: %s", e.Source, e.Reason)
}

// NewInconsistencyFault builds an InconsistencyFault for source/reason.
func NewInconsistencyFault(source, reason string) error {
	return &InconsistencyFault{Source: source, Reason: reason}
}

// IsInconsistencyFault reports whether err is (or wraps) an
// InconsistencyFault, the only error kind search is allowed to swallow.
func IsInconsistencyFault(err error) bool {
	var fault *InconsistencyFault
	return errors.As(err, &fault)
}

// Unsatisfiable is returned by Solve when the search space is exhausted
// without finding a solution.
var Unsatisfiable = errors.New("unsatisfiable: search exhausted with no solution")

// Interrupted is returned by Solve when the cancellation flag was
// observed; partial metrics and operation history remain available to
// the caller.
var Interrupted = errors.New("interrupted: cancellation observed during search")
