// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

import "sort"

// comparePrefix compares a suffix with a prefix lexicographically.
// A suffix that starts with prefix compares equal.
func comparePrefix(suf, prefix []rune) int {
	minLen := min(len(suf), len(prefix))
	for i := 0; i < minLen; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// lookup returns the bounds of the suffixes starting with prefix.
func lookup[T Index](text []rune, sa []T, prefix []rune) (l, r int) {
	if len(prefix) == 0 {
		return 0, len(sa)
	}
	// Left boundary where suffix >= prefix.
	l = sort.Search(len(sa), func(i int) bool {
		return comparePrefix(text[sa[i]:], prefix) >= 0
	})
	// Right boundary where suffix > prefix.
	r = l + sort.Search(len(sa)-l, func(i int) bool {
		return comparePrefix(text[sa[l+i]:], prefix) > 0
	})
	return l, r
}

// Lookup returns the starting offsets of the occurrences of prefix, in
// suffix order. The slice borrows the suffix array and must not be modified.
func (s *Suffix[T]) Lookup(prefix []rune) []T {
	l, r := lookup(s.chars, s.sa, prefix)
	return s.sa[l:r:r]
}

// Count returns the number of occurrences of prefix in the text.
// The empty prefix occurs Len times.
func (s *Suffix[T]) Count(prefix []rune) int {
	l, r := lookup(s.chars, s.sa, prefix)
	return r - l
}
