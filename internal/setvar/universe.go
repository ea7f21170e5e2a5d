package setvar

import "sort"

// Universe interns the global element domain U ⊆ ℤ so that set bounds
// can be represented as bitsets indexed by position rather than by the
// (possibly negative, possibly sparse) integer value itself. It grows
// monotonically as new elements are observed in declared variables and
// is otherwise informational, per spec §4.1 ("universe() — union of all
// declared uppers; informational only").
type Universe struct {
	indexOf map[int]uint
	element []int
}

// NewUniverse returns an empty universe.
func NewUniverse() *Universe {
	return &Universe{indexOf: make(map[int]uint)}
}

// Intern returns the bit position for x, assigning a new one if x has
// never been seen before. Positions are stable for the lifetime of the
// universe: once assigned, an element never moves.
func (u *Universe) Intern(x int) uint {
	if idx, ok := u.indexOf[x]; ok {
		return idx
	}
	idx := uint(len(u.element))
	u.indexOf[x] = idx
	u.element = append(u.element, x)
	return idx
}

// Lookup returns the bit position for x without interning it.
func (u *Universe) Lookup(x int) (uint, bool) {
	idx, ok := u.indexOf[x]
	return idx, ok
}

// Element returns the integer value stored at bit position idx.
func (u *Universe) Element(idx uint) int {
	return u.element[idx]
}

// Elements returns every interned element, ascending by value.
func (u *Universe) Elements() []int {
	out := make([]int, len(u.element))
	copy(out, u.element)
	sort.Ints(out)
	return out
}

// Len returns the number of interned elements.
func (u *Universe) Len() int {
	return len(u.element)
}
