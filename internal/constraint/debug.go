package constraint

import (
	"github.com/gitrdm/setcsp/internal/csperrors"
	"github.com/sirupsen/logrus"
)

// checkConsistent verifies each named variable still satisfies its
// bound invariants after a filter round, converting the first failure
// into an InconsistencyFault tagged with the constraint's description.
func checkConsistent(vars Vars, constraintStr string, names ...string) error {
	for _, name := range names {
		if err := vars[name].Consistent(); err != nil {
			return csperrors.NewInconsistencyFault(constraintStr, err.Error())
		}
	}
	return nil
}

// logTighten emits a debug line for a single bound tightening, mirroring
// the original Python's logger.debug(f"Updated {name} ...") calls in
// src/constraints.py. log may be nil (e.g. in tests); logTighten is a
// no-op in that case.
func logTighten(log logrus.FieldLogger, constraintStr, what string, values interface{}) {
	if log == nil {
		return
	}
	log.WithField("constraint", constraintStr).Debugf("updated %s to %v", what, values)
}
