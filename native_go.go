// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !esaxx_cgo

package esaxx

// esaxxInt32 serves the esaxx_int32 contract with Compute.
func esaxxInt32(text []rune, sa, left, right, depth []int32, n, k int32, nodeNum *int32) int32 {
	num, err := Compute(text[:n], sa[:n], left[:n], right[:n], depth[:n], int(k))
	if err != nil {
		return -1
	}
	*nodeNum = int32(num)
	return 0
}
