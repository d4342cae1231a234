package day03

import "sort"

// Set is a set of characters.
type Set map[rune]struct{}

// NewSet collects the distinct characters of s.
func NewSet(s string) Set {
	set := make(Set, len(s))
	for _, c := range s {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether c is a member.
func (s Set) Has(c rune) bool {
	_, ok := s[c]
	return ok
}

// Members returns the characters in ascending order.
func (s Set) Members() []rune {
	out := make([]rune, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Intersect folds the sets left to right. No sets yields an empty set and a
// single set yields a copy of it.
func Intersect(sets ...Set) Set {
	if len(sets) == 0 {
		return Set{}
	}

	acc := make(Set, len(sets[0]))
	for c := range sets[0] {
		acc[c] = struct{}{}
	}
	for _, next := range sets[1:] {
		for c := range acc {
			if !next.Has(c) {
				delete(acc, c)
			}
		}
	}
	return acc
}
