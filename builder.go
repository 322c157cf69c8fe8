// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

// Builder builds enhanced suffix arrays with indices of type T.
type Builder[T Index] interface {
	Build(text string) (*Suffix[T], error)
}

// BuilderFunc adapts a constructor to the Builder interface.
type BuilderFunc[T Index] func(text string) (*Suffix[T], error)

// Build calls f(text).
func (f BuilderFunc[T]) Build(text string) (*Suffix[T], error) { return f(text) }

var (
	// Wide builds with native-width indices in pure Go.
	Wide Builder[int] = BuilderFunc[int](New)

	// Native builds with 32-bit indices through the esaxx_int32 boundary.
	Native Builder[int32] = BuilderFunc[int32](NewNative)
)
