// Package setvar holds the subset-bound representation of set
// variables: the lower/upper bitset bounds, cardinality bounds, and the
// consistency invariants spec §3 requires to hold at every observable
// state.
package setvar

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Bound is an immutable-by-convention set of universe elements backed
// by a bitset. Every method that would mutate the set instead returns a
// new Bound, mirroring the teacher's copy-on-write domain discipline
// (pkg/minikanren's Domain interface) so that branching can fork bound
// state cheaply without aliasing bugs.
type Bound struct {
	uni  *Universe
	bits *bitset.BitSet
}

// EmptyBound returns the empty set over uni.
func EmptyBound(uni *Universe) Bound {
	return Bound{uni: uni, bits: bitset.New(uint(uni.Len()))}
}

// NewBound interns every element of xs into uni and returns the
// resulting bound.
func NewBound(uni *Universe, xs []int) Bound {
	b := bitset.New(uint(uni.Len()))
	for _, x := range xs {
		b.Set(uni.Intern(x))
	}
	return Bound{uni: uni, bits: b}
}

// Contains reports whether x is a member of the bound.
func (b Bound) Contains(x int) bool {
	idx, ok := b.uni.Lookup(x)
	if !ok {
		return false
	}
	return b.bits.Test(idx)
}

// Len returns the cardinality of the bound.
func (b Bound) Len() int {
	return int(b.bits.Count())
}

// Elements returns the bound's members in ascending order.
func (b Bound) Elements() []int {
	out := make([]int, 0, b.bits.Count())
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		out = append(out, b.uni.Element(i))
	}
	sort.Ints(out)
	return out
}

// WithAdded returns a new bound with x interned and added.
func (b Bound) WithAdded(x int) Bound {
	clone := b.bits.Clone()
	clone.Set(b.uni.Intern(x))
	return Bound{uni: b.uni, bits: clone}
}

// WithRemoved returns a new bound with x removed, if present.
func (b Bound) WithRemoved(x int) Bound {
	idx, ok := b.uni.Lookup(x)
	if !ok {
		return b
	}
	clone := b.bits.Clone()
	clone.Clear(idx)
	return Bound{uni: b.uni, bits: clone}
}

// Union returns the set union of b and other.
func (b Bound) Union(other Bound) Bound {
	return Bound{uni: b.uni, bits: b.bits.Union(other.bits)}
}

// Intersect returns the set intersection of b and other.
func (b Bound) Intersect(other Bound) Bound {
	return Bound{uni: b.uni, bits: b.bits.Intersection(other.bits)}
}

// Difference returns the elements of b not in other.
func (b Bound) Difference(other Bound) Bound {
	return Bound{uni: b.uni, bits: b.bits.Difference(other.bits)}
}

// IsSubsetOf reports whether every element of b is also in other.
func (b Bound) IsSubsetOf(other Bound) bool {
	return b.bits.Difference(other.bits).None()
}

// Equal reports whether b and other contain the same elements.
func (b Bound) Equal(other Bound) bool {
	return b.bits.SymmetricDifference(other.bits).None()
}

// Clone returns a deep, independent copy of b.
func (b Bound) Clone() Bound {
	return Bound{uni: b.uni, bits: b.bits.Clone()}
}
