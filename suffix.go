// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

// AlphabetSize covers the whole UCS-4 range.
const AlphabetSize = 0x110000

// Index is the element width of the arrays held by a Suffix.
type Index interface {
	~int32 | ~int
}

// Node is one maximal repeated substring: the suffixes in
// SuffixArray()[Left:Right] share a prefix of Depth symbols.
type Node struct {
	Left, Right, Depth int
}

// Freq returns the number of occurrences of the node's substring.
func (n Node) Freq() int { return n.Right - n.Left }

// Suffix is an enhanced suffix array: a text, its suffix array and the
// internal nodes of its suffix tree as parallel left, right and depth arrays.
// A Suffix is immutable and safe for concurrent use.
type Suffix[T Index] struct {
	chars                  []rune
	sa, left, right, depth []T
	nodeNum                int
}

// New builds the enhanced suffix array of text.
func New(text string) (*Suffix[int], error) {
	chars := []rune(text)
	n := len(chars)
	buf := make([]int, 4*n)
	s := &Suffix[int]{
		chars: chars,
		sa:    buf[:n:n],
		left:  buf[n : 2*n : 2*n],
		right: buf[2*n : 3*n : 3*n],
		depth: buf[3*n:],
	}
	nodeNum, err := Compute(chars, s.sa, s.left, s.right, s.depth, AlphabetSize)
	if err != nil {
		return nil, err
	}
	s.nodeNum = nodeNum
	return s, nil
}

// Compute builds the suffix array of text into sa and its nodes into left,
// right and depth, returning the node count. All four arrays must have the
// length of text and every symbol must lie in [0, k).
func Compute[S, T Integer](text []S, sa, left, right, depth []T, k int) (int, error) {
	if err := checkLengths(len(text), sa, left, right, depth); err != nil {
		return 0, err
	}
	if err := SortSuffixes(text, sa, k); err != nil {
		return 0, err
	}
	return Intervals(text, sa, left, right, depth)
}

// Len returns the number of symbols in the text.
func (s *Suffix[T]) Len() int { return len(s.chars) }

// Chars returns the text as code points. The slice must not be modified.
func (s *Suffix[T]) Chars() []rune { return s.chars }

// SuffixArray returns the suffix array. The slice must not be modified.
func (s *Suffix[T]) SuffixArray() []T { return s.sa }

// Left returns the left bounds of the nodes. Only the first NodeNum entries
// are meaningful. The slice must not be modified.
func (s *Suffix[T]) Left() []T { return s.left }

// Right returns the right bounds of the nodes. Only the first NodeNum entries
// are meaningful. The slice must not be modified.
func (s *Suffix[T]) Right() []T { return s.right }

// Depth returns the depths of the nodes. Only the first NodeNum entries
// are meaningful. The slice must not be modified.
func (s *Suffix[T]) Depth() []T { return s.depth }

// NodeNum returns the number of nodes.
func (s *Suffix[T]) NodeNum() int { return s.nodeNum }

// Node returns the i-th node in construction order.
// It panics if i is not in [0, NodeNum()).
func (s *Suffix[T]) Node(i int) Node {
	if i < 0 || i >= s.nodeNum {
		panic("esaxx: node index out of range")
	}
	return Node{int(s.left[i]), int(s.right[i]), int(s.depth[i])}
}

// substr returns the text of node i, borrowed from chars.
func (s *Suffix[T]) substr(i int) []rune {
	off := int(s.sa[s.left[i]])
	end := off + int(s.depth[i])
	return s.chars[off:end:end]
}
