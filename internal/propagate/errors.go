package propagate

import "github.com/gitrdm/setcsp/internal/csperrors"

// inconsistentEmptyUpper reports the post-fixpoint check of spec §4.3:
// any variable left with an empty upper bound is failure even if every
// individual filter rule returned cleanly.
func inconsistentEmptyUpper(name string) error {
	return csperrors.NewInconsistencyFault(name, "upper bound emptied by propagation")
}
