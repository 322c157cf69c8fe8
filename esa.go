// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package esaxx

import "fmt"

// interval is an open lcp-interval on the sweep stack.
type interval struct {
	left, depth int
}

// Intervals derives the internal nodes of the suffix tree of text from its
// suffix array sa. Node i covers sa[left[i]:right[i]], whose suffixes share
// a prefix of exactly depth[i] symbols. Returns the number of nodes.
//
// Nodes are emitted in the order their intervals close, so depth is not
// monotonic. The root, depth 0 over [0, n), is always the last node.
//
// left and right double as scratch space: on return, entries past the node
// count hold heights and permuted heights of the construction.
func Intervals[S, T Integer](text []S, sa, left, right, depth []T) (int, error) {
	n := len(text)
	if err := checkLengths(n, sa, left, right, depth); err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	height := heights(text, sa, left, right)

	var (
		stack = []interval{{-1, -1}}
		nodes int
	)
	for i := 0; ; i++ {
		cur := interval{i, -1}
		if i < n {
			cur.depth = int(height[i])
		}
		top := stack[len(stack)-1]
		// Close every interval deeper than the current height. Nodes are
		// written behind the read position of height, which shares left.
		for top.depth > cur.depth {
			if i-top.left > 1 {
				left[nodes], right[nodes], depth[nodes] = T(top.left), T(i), T(top.depth)
				nodes++
			}
			cur.left = top.left
			stack = stack[:len(stack)-1]
			top = stack[len(stack)-1]
		}
		if top.depth < cur.depth {
			stack = append(stack, cur)
		}
		if i == n {
			break
		}
		// Leaf of suffix sa[i], deeper than any height.
		stack = append(stack, interval{i, n - int(sa[i]) + 1})
	}

	// Every adjacent pair shares a symbol only when the text repeats a
	// single symbol; the depth 0 interval never opened then.
	if nodes == 0 || depth[nodes-1] != 0 {
		if nodes >= n {
			return 0, fmt.Errorf("%w: no room for the root after %d nodes", ErrInternal, nodes)
		}
		left[nodes], right[nodes], depth[nodes] = 0, T(n), 0
		nodes++
	}
	if nodes > n {
		return 0, fmt.Errorf("%w: %d nodes for %d symbols", ErrInternal, nodes, n)
	}
	return nodes, nil
}

// checkLengths reports ErrInvalidLength unless every array has length n.
func checkLengths[T Integer](n int, sa, left, right, depth []T) error {
	if len(sa) != n || len(left) != n || len(right) != n || len(depth) != n {
		return fmt.Errorf("%w: text has %d symbols, arrays have %d, %d, %d, %d",
			ErrInvalidLength, n, len(sa), len(left), len(right), len(depth))
	}
	return nil
}

// heights computes the longest common prefix of every suffix with its
// predecessor in sa, using the permuted LCP array of Kärkkäinen et al.
// phi is stored in left, the permuted array in right, and the result,
// indexed by suffix array rank, overwrites left. height[0] is -1.
func heights[S, T Integer](text []S, sa, left, right []T) []T {
	n := len(text)
	phi := left
	phi[sa[0]] = sa[n-1]
	for i := 1; i < n; i++ {
		phi[sa[i]] = sa[i-1]
	}

	plcp := right
	var h int
	for i := 0; i < n; i++ {
		// The smallest suffix has no predecessor.
		if i == int(sa[0]) {
			plcp[i], h = 0, 0
			continue
		}
		j := int(phi[i])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		plcp[i] = T(h)
		if h > 0 {
			h--
		}
	}

	height := left
	for i := 0; i < n; i++ {
		height[i] = plcp[sa[i]]
	}
	height[0] = -1
	return height
}
