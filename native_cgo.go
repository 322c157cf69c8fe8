// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build esaxx_cgo

package esaxx

/*
#cgo LDFLAGS: -lesaxx
#include <stdint.h>

int esaxx_int32(const uint32_t *T, int32_t *SA, int32_t *L, int32_t *R, int32_t *D,
                uint32_t n, uint32_t k, uint32_t *nodeNum);
*/
import "C"

import "unsafe"

// esaxxInt32 calls the external esaxx library. n > 0.
func esaxxInt32(text []rune, sa, left, right, depth []int32, n, k int32, nodeNum *int32) int32 {
	var num C.uint32_t
	status := C.esaxx_int32(
		(*C.uint32_t)(unsafe.Pointer(&text[0])),
		(*C.int32_t)(unsafe.Pointer(&sa[0])),
		(*C.int32_t)(unsafe.Pointer(&left[0])),
		(*C.int32_t)(unsafe.Pointer(&right[0])),
		(*C.int32_t)(unsafe.Pointer(&depth[0])),
		C.uint32_t(n),
		C.uint32_t(k),
		&num,
	)
	*nodeNum = int32(num)
	return int32(status)
}
