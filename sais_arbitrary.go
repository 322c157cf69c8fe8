// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

import "slices"

// denseAlphaSize is the largest symbol range always sorted with dense
// buckets. Wider ranges go through rankSymbols when they exceed the text
// length, so bucket memory stays proportional to n.
const denseAlphaSize = 256

// sparseAlphabet reports whether a symbol range of size is too wide for
// dense buckets over a text of n symbols.
func sparseAlphabet(size, n int) bool {
	return size > denseAlphaSize && size > n
}

// rankSymbols maps every symbol of text to its rank among the distinct
// symbols, writing the ranks to ranked. The alphabet is collected through
// a map and sorted to fix the bucket order. Returns the number of distinct
// symbols.
// Parameters:
// - text: input text with an arbitrary, possibly sparse, alphabet.
// - ranked: output buffer of len(text) symbols.
func rankSymbols[S, T Integer](text []S, ranked []T) int {
	ranks := make(map[S]T, min(len(text), 1024))
	var alphabet []S
	for _, c := range text {
		if _, exists := ranks[c]; !exists {
			ranks[c] = 0
			alphabet = append(alphabet, c)
		}
	}
	slices.Sort(alphabet)
	for i, c := range alphabet {
		ranks[c] = T(i)
	}
	for i, c := range text {
		ranked[i] = ranks[c]
	}
	return len(alphabet)
}

// saisSparse sorts the suffixes of a text whose symbols span a wide, sparse
// range by renaming them to dense ranks first. Renaming keeps the symbol
// order, so the suffix order is unchanged.
// Parameters:
// - text: input text, len(text) >= 2.
// - sa: suffix array to store results.
func saisSparse[S, T Integer](text []S, sa []T) {
	ranked := make([]T, len(text))
	alphaSize := rankSymbols(text, ranked)
	sais(ranked, sa, 0, alphaSize)
}
