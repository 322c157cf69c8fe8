// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "esaxx: " + string(e) }

const (
	// ErrInvalidLength reports a buffer whose length differs from the text length.
	// No work has been done when it is returned and the call can be retried
	// with correctly sized buffers.
	ErrInvalidLength = Error("invalid length")

	// ErrInternal reports a failure after construction started.
	// The contents of every output buffer are undefined.
	ErrInternal = Error("internal failure")
)
