// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

import "fmt"

// Integer is the element type accepted by the construction algorithms,
// both for symbols and for suffix array indices.
type Integer interface {
	~int32 | ~int64 | ~int
}

// SortSuffixes constructs the suffix array of text into sa using the SA-IS
// algorithm. Every symbol must lie in [0, k). sa must have the same length
// as text.
func SortSuffixes[S, T Integer](text []S, sa []T, k int) error {
	if len(sa) != len(text) {
		return fmt.Errorf("%w: text has %d symbols, suffix array has %d", ErrInvalidLength, len(text), len(sa))
	}
	if len(text) == 0 {
		return nil
	}
	lo, hi, err := symbolRange(text, k)
	if err != nil {
		return err
	}
	if len(text) == 1 {
		sa[0] = 0
		return nil
	}
	if size := hi - lo + 1; sparseAlphabet(size, len(text)) {
		saisSparse(text, sa)
	} else {
		sais(text, sa, lo, size)
	}
	return nil
}

// symbolRange returns the smallest and largest symbol of text.
// Buckets only span this range, so their size never exceeds k.
func symbolRange[S Integer](text []S, k int) (lo, hi int, err error) {
	lo, hi = int(text[0]), int(text[0])
	for i, c := range text {
		v := int(c)
		if v < 0 || v >= k {
			return 0, 0, fmt.Errorf("%w: symbol %d at offset %d outside alphabet [0, %d)", ErrInternal, v, i, k)
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi, nil
}

// sais is the recursive core of SortSuffixes.
// Parameters:
// - text: input text, len(text) >= 2.
// - sa: suffix array to store results; also holds the reduced string and
// its suffix array during recursion.
// - lo: smallest symbol of text; bucket indices are symbol - lo.
// - size: size of the symbol range. Recursion levels use 0 and the number
// of distinct LMS substring names.
//
// The text is treated as if followed by a virtual sentinel smaller than any
// symbol, so the last position is L-type and the sentinel acts as the final
// LMS position.
func sais[S, T Integer](text []S, sa []T, lo, size int) {
	n := len(text)
	stype := classify(text)
	freq := make([]int, size)
	bkt := make([]int, size)
	frequency(text, freq, lo)

	// Place LMS suffixes at the ends of their buckets in text order and
	// induce. This sorts the LMS substrings, not yet the LMS suffixes.
	fill(sa, -1)
	bucketEnd(freq, bkt)
	for i := n - 2; i > 0; i-- {
		if isLMS(stype, i) {
			c := int(text[i]) - lo
			bkt[c]--
			sa[bkt[c]] = T(i)
		}
	}
	induceL(text, sa, stype, freq, bkt, lo)
	induceS(text, sa, stype, freq, bkt, lo)

	// Compact the sorted LMS positions into sa[:m].
	m := 0
	for i := 0; i < n; i++ {
		if isLMS(stype, int(sa[i])) {
			sa[m] = sa[i]
			m++
		}
	}

	name := summarise(text, sa, stype, m)

	// The reduced string, one name per LMS substring in text order, lives in
	// the tail of sa. Its suffix array is built in the head.
	summary, summarySA := sa[n-m:], sa[:m]
	if name < m {
		sais(summary, summarySA, 0, name)
	} else {
		for i, c := range summary {
			summarySA[c] = T(i)
		}
	}

	unmap(sa, stype, summary, summarySA)
	expand(text, sa, freq, bkt, lo, m)
	induceL(text, sa, stype, freq, bkt, lo)
	induceS(text, sa, stype, freq, bkt, lo)
}

// classify reports for every position whether its suffix is S-type.
func classify[S Integer](text []S) []bool {
	n := len(text)
	stype := make([]bool, n)
	for i := n - 2; i >= 0; i-- {
		stype[i] = text[i] < text[i+1] || text[i] == text[i+1] && stype[i+1]
	}
	return stype
}

// isLMS reports whether i is a leftmost S-type position.
func isLMS(stype []bool, i int) bool {
	return i > 0 && stype[i] && !stype[i-1]
}

func fill[T Integer](a []T, v T) {
	for i := range a {
		a[i] = v
	}
}

// frequency counts the occurrences of each symbol.
func frequency[S Integer](text []S, freq []int, lo int) {
	clear(freq)
	for _, c := range text {
		freq[int(c)-lo]++
	}
}

// bucketStart computes the first slot of every bucket.
func bucketStart(freq, bkt []int) {
	var offset int
	for i, n := range freq {
		bkt[i] = offset
		offset += n
	}
}

// bucketEnd computes one past the last slot of every bucket.
func bucketEnd(freq, bkt []int) {
	var offset int
	for i, n := range freq {
		offset += n
		bkt[i] = offset
	}
}

// induceL places every L-type suffix at the head of its bucket, scanning
// sa left to right. Empty slots hold -1.
// Parameters:
// - text: input text.
// - sa: suffix array holding the sorted LMS suffixes.
// - stype: S/L classification of text.
// - freq: frequency of each symbol.
// - bkt: bucket array for sorting.
// - lo: smallest symbol of text.
func induceL[S, T Integer](text []S, sa []T, stype []bool, freq, bkt []int, lo int) {
	bucketStart(freq, bkt)
	n := len(text)
	// The sentinel induces the last suffix.
	c := int(text[n-1]) - lo
	sa[bkt[c]] = T(n - 1)
	bkt[c]++
	for i := 0; i < n; i++ {
		j := int(sa[i]) - 1
		if j < 0 || stype[j] {
			continue
		}
		c = int(text[j]) - lo
		sa[bkt[c]] = T(j)
		bkt[c]++
	}
}

// induceS places every S-type suffix at the tail of its bucket, scanning
// sa right to left. Stale LMS entries are overwritten on the way.
func induceS[S, T Integer](text []S, sa []T, stype []bool, freq, bkt []int, lo int) {
	bucketEnd(freq, bkt)
	for i := len(sa) - 1; i >= 0; i-- {
		j := int(sa[i]) - 1
		if j < 0 || !stype[j] {
			continue
		}
		c := int(text[j]) - lo
		bkt[c]--
		sa[bkt[c]] = T(j)
	}
}

// equalLMS reports whether the LMS substrings starting at a and b are equal.
// A substring running into the sentinel is unique.
func equalLMS[S Integer](text []S, stype []bool, a, b int) bool {
	n := len(text)
	for d := 0; ; d++ {
		if a+d == n || b+d == n {
			return false
		}
		if text[a+d] != text[b+d] || stype[a+d] != stype[b+d] {
			return false
		}
		if d > 0 && isLMS(stype, a+d) {
			return true
		}
	}
}

// summarise names the m sorted LMS substrings held in sa[:m] and writes the
// reduced string into sa[n-m:]. Returns the number of distinct names.
// Parameters:
// - text: input text.
// - sa: suffix array holding the sorted LMS positions in sa[:m].
// - stype: S/L classification of text.
// - m: number of LMS positions.
//
// Names are first stored at sa[m+pos/2]: LMS positions are at least two
// apart and m <= n/2, so the slots are distinct and in range.
func summarise[S, T Integer](text []S, sa []T, stype []bool, m int) int {
	n := len(text)
	names := sa[m:]
	fill(names, -1)
	name, prev := 0, -1
	for i := 0; i < m; i++ {
		pos := int(sa[i])
		if prev < 0 || !equalLMS(text, stype, prev, pos) {
			name++
		}
		prev = pos
		names[pos/2] = T(name - 1)
	}
	j := n - 1
	for i := n - 1; i >= m; i-- {
		if sa[i] >= 0 {
			sa[j] = sa[i]
			j--
		}
	}
	return name
}

// unmap replaces the indices in summarySA, which point into the reduced
// string, with the text positions of the corresponding LMS suffixes.
// summary is reused to hold the LMS positions in text order.
func unmap[T Integer](sa []T, stype []bool, summary, summarySA []T) {
	var j int
	for i := 1; i < len(stype); i++ {
		if isLMS(stype, i) {
			summary[j] = T(i)
			j++
		}
	}
	for i, k := range summarySA {
		summarySA[i] = summary[k]
	}
	fill(sa[len(summarySA):], -1)
}

// expand moves the m sorted LMS suffixes from sa[:m] to the ends of their
// buckets, keeping their relative order.
func expand[S, T Integer](text []S, sa []T, freq, bkt []int, lo, m int) {
	bucketEnd(freq, bkt)
	for i := m - 1; i >= 0; i-- {
		p := sa[i]
		sa[i] = -1
		c := int(text[p]) - lo
		bkt[c]--
		sa[bkt[c]] = p
	}
}
