// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

import (
	"fmt"
	"math"
)

// NewNative builds the enhanced suffix array of text with 32-bit indices
// through the esaxx_int32 calling convention. Built with the esaxx_cgo tag
// the work is done by the external esaxx library; otherwise by the
// algorithms of this package.
func NewNative(text string) (*Suffix[int32], error) {
	chars := []rune(text)
	n := len(chars)
	if n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d symbols do not fit 32-bit indices", ErrInvalidLength, n)
	}
	buf := make([]int32, 4*n)
	s := &Suffix[int32]{
		chars: chars,
		sa:    buf[:n:n],
		left:  buf[n : 2*n : 2*n],
		right: buf[2*n : 3*n : 3*n],
		depth: buf[3*n:],
	}
	nodeNum, err := ComputeNative(chars, s.sa, s.left, s.right, s.depth, AlphabetSize)
	if err != nil {
		return nil, err
	}
	s.nodeNum = nodeNum
	return s, nil
}

// ComputeNative is Compute across the esaxx_int32 boundary. Buffer lengths
// are checked before the boundary is crossed.
func ComputeNative(text []rune, sa, left, right, depth []int32, k int) (int, error) {
	n := len(text)
	if err := checkLengths(n, sa, left, right, depth); err != nil {
		return 0, err
	}
	if n > math.MaxInt32 || k < 0 || k > math.MaxInt32 {
		return 0, fmt.Errorf("%w: n=%d k=%d exceed the 32-bit boundary", ErrInvalidLength, n, k)
	}
	if n == 0 {
		return 0, nil
	}
	var nodeNum int32
	if status := esaxxInt32(text, sa, left, right, depth, int32(n), int32(k), &nodeNum); status != 0 {
		return 0, fmt.Errorf("%w: esaxx_int32 returned status %d", ErrInternal, status)
	}
	if nodeNum < 0 || int(nodeNum) > n {
		return 0, fmt.Errorf("%w: esaxx_int32 reported %d nodes for %d symbols", ErrInternal, nodeNum, n)
	}
	return int(nodeNum), nil
}
