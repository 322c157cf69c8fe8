// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

import (
	"fmt"
	"iter"
	"math"
)

// Iterator walks the nodes of a Suffix in construction order.
type Iterator[T Index] struct {
	s *Suffix[T]
	i int
}

// Iter returns an iterator positioned before the first node.
func (s *Suffix[T]) Iter() *Iterator[T] {
	return &Iterator[T]{s: s}
}

// Next returns the substring of the next node and its frequency.
// The substring borrows the text of the Suffix and must not be modified.
// ok is false once every node has been returned. Next panics if a
// frequency does not fit in uint32, which takes a text of 2^32 symbols.
func (it *Iterator[T]) Next() (substr []rune, freq uint32, ok bool) {
	if it.i >= it.s.nodeNum {
		return nil, 0, false
	}
	i := it.i
	it.i++
	n := uint64(it.s.right[i] - it.s.left[i])
	if n > math.MaxUint32 {
		panic(fmt.Sprintf("esaxx: node %d frequency %d overflows uint32", i, n))
	}
	return it.s.substr(i), uint32(n), true
}

// All returns every node as a (substring, frequency) pair in construction
// order. Each call starts a fresh walk.
func (s *Suffix[T]) All() iter.Seq2[[]rune, uint32] {
	return func(yield func([]rune, uint32) bool) {
		it := s.Iter()
		for {
			substr, freq, ok := it.Next()
			if !ok || !yield(substr, freq) {
				return
			}
		}
	}
}
