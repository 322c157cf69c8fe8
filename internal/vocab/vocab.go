// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package vocab ranks the repeated substrings of a corpus as subword
// vocabulary candidates.
package vocab

import (
	"cmp"
	"slices"

	"github.com/nekitakamenev/esaxx"
)

// Candidate is a repeated substring with its occurrence count.
type Candidate struct {
	Text string
	Freq int
	// Score is Freq times the length in code points.
	Score int
}

// Options filter the candidates.
type Options struct {
	MinFreq, MinLen int
	// MaxLen 0 means unbounded.
	MaxLen int
	// Top 0 keeps every candidate.
	Top int
}

// Candidates returns the non-empty repeated substrings of s passing opts,
// best score first. Equal scores keep node construction order.
func Candidates[T esaxx.Index](s *esaxx.Suffix[T], opts Options) []Candidate {
	var cands []Candidate
	for substr, freq := range s.All() {
		n := len(substr)
		if n == 0 || n < opts.MinLen || opts.MaxLen > 0 && n > opts.MaxLen || int(freq) < opts.MinFreq {
			continue
		}
		cands = append(cands, Candidate{
			Text:  string(substr),
			Freq:  int(freq),
			Score: int(freq) * n,
		})
	}
	slices.SortStableFunc(cands, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if opts.Top > 0 && len(cands) > opts.Top {
		cands = cands[:opts.Top]
	}
	return cands
}
