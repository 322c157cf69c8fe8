package esaxx

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lorem = "Lorem Ipsum is simply dummy text of the printing and typesetting industry. Lorem Ipsum has been the industry's standard dummy text ever since the 1500s, when an unknown printer took a galley of type and scrambled it to make a type specimen book. It has survived not only five centuries, but also the leap into electronic typesetting, remaining essentially unchanged. It was popularised in the 1960s with the release of Letraset sheets containing Lorem Ipsum passages, and more recently with desktop publishing software like Aldus PageMaker including versions of Lorem Ipsum."

type item struct {
	substr string
	freq   uint32
}

func collect[T Index](s *Suffix[T]) []item {
	var items []item
	for substr, freq := range s.All() {
		items = append(items, item{string(substr), freq})
	}
	return items
}

func TestNewAbracadabra(t *testing.T) {
	s, err := New("abracadabra")
	require.NoError(t, err)

	assert.Equal(t, 11, s.Len())
	assert.Equal(t, 5, s.NodeNum())
	assert.Equal(t, []int{10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2}, s.SuffixArray())
	assert.Equal(t, []int{1, 0, 5, 9, 0, 0, 3, 0, 0, 0, 2}, s.Left())
	assert.Equal(t, []int{3, 5, 7, 11, 11, 1, 0, 1, 0, 0, 0}, s.Right())
	assert.Equal(t, []int{4, 1, 3, 2, 0, 0, 0, 0, 0, 0, 0}, s.Depth())

	chars := s.Chars()
	it := s.Iter()
	exp := []struct {
		substr []rune
		freq   uint32
	}{
		{chars[:4], 2},  // abra
		{chars[:1], 5},  // a
		{chars[1:4], 2}, // bra
		{chars[2:4], 2}, // ra
		{chars[:0], 11}, // ''
	}
	for _, e := range exp {
		substr, freq, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, e.substr, substr)
		assert.Equal(t, e.freq, freq)
	}
	_, _, ok := it.Next()
	assert.False(t, ok)
	_, _, ok = it.Next()
	assert.False(t, ok)

	assert.Equal(t, []item{{"abra", 2}, {"a", 5}, {"bra", 2}, {"ra", 2}, {"", 11}}, collect(s))
	assert.Equal(t, Node{Left: 1, Right: 3, Depth: 4}, s.Node(0))
	assert.Equal(t, 11, s.Node(4).Freq())
}

func TestNewBorrowsText(t *testing.T) {
	s, err := New("abracadabra")
	require.NoError(t, err)
	substr, _, ok := s.Iter().Next()
	require.True(t, ok)
	assert.Same(t, &s.Chars()[s.SuffixArray()[s.Node(0).Left]], &substr[0])
	assert.Equal(t, len(substr), cap(substr))
}

func TestNewTerminatorLike(t *testing.T) {
	text := "banana$band$$"
	s, err := New(text)
	require.NoError(t, err)

	chars := []rune(text)
	assert.Equal(t, makeSA(chars), s.SuffixArray())
	require.LessOrEqual(t, s.NodeNum(), s.Len())
	for substr, freq := range s.All() {
		assert.Equal(t, s.Count(substr), int(freq), "substring %q", string(substr))
	}
	assert.Contains(t, collect(s), item{"ban", 2})
	assert.Contains(t, collect(s), item{"$", 3})
	assert.Contains(t, collect(s), item{"ana", 2})
}

func TestNewLong(t *testing.T) {
	require.Equal(t, 574, utf8.RuneCountInString(lorem))

	s, err := New(lorem)
	require.NoError(t, err)
	assert.Equal(t, 574, s.Len())
	assert.Equal(t, 260, s.NodeNum())
	assert.Equal(t, Node{0, 574, 0}, s.Node(s.NodeNum()-1))

	n, err := NewNative(lorem)
	require.NoError(t, err)
	assert.Equal(t, 260, n.NodeNum())
}

func TestNewEmpty(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.NodeNum())
	assert.Empty(t, s.SuffixArray())
	assert.Empty(t, collect(s))
	_, _, ok := s.Iter().Next()
	assert.False(t, ok)
	assert.Zero(t, s.Count([]rune("a")))
	assert.Empty(t, s.Lookup([]rune("a")))
}

func TestNewSingleSymbol(t *testing.T) {
	tests := map[string]struct {
		text string
		exp  []item
	}{
		"one": {
			text: "z",
			exp:  []item{{"", 1}},
		},
		"four": {
			text: "aaaa",
			exp:  []item{{"aaa", 2}, {"aa", 3}, {"a", 4}, {"", 4}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := New(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, collect(s))
		})
	}
}

func TestNewIdempotent(t *testing.T) {
	texts := []string{"abracadabra", "banana$band$$", lorem, "日本語の日本語テキスト日本"}
	for _, text := range texts {
		a, err := New(text)
		require.NoError(t, err)
		b, err := New(text)
		require.NoError(t, err)
		assert.Equal(t, a.SuffixArray(), b.SuffixArray())
		assert.Equal(t, a.Left(), b.Left())
		assert.Equal(t, a.Right(), b.Right())
		assert.Equal(t, a.Depth(), b.Depth())
		assert.Equal(t, collect(a), collect(b))
		assert.Equal(t, collect(a), collect(a))
	}
}

func TestNativeMatchesWide(t *testing.T) {
	texts := []string{"", "a", "abracadabra", "banana$band$$", lorem, "ünïcödé ünïcödé"}
	for i := 0; i < 5; i++ {
		texts = append(texts, string(genRandText(500, 4)))
	}
	for _, text := range texts {
		wide, err := Wide.Build(text)
		require.NoError(t, err)
		native, err := Native.Build(text)
		require.NoError(t, err)

		require.Equal(t, wide.NodeNum(), native.NodeNum())
		for i, v := range native.SuffixArray() {
			assert.Equal(t, wide.SuffixArray()[i], int(v))
		}
		assert.Equal(t, collect(wide), collect(native))
	}
}

func TestComputeNativeInvalidLength(t *testing.T) {
	text := []rune("banana")
	n := len(text)
	_, err := ComputeNative(text, make([]int32, n), make([]int32, n), make([]int32, n-1), make([]int32, n), AlphabetSize)
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = ComputeNative(text, make([]int32, n), make([]int32, n), make([]int32, n), make([]int32, n), -1)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestComputeNativeInternal(t *testing.T) {
	text := []rune("banana")
	n := len(text)
	_, err := ComputeNative(text, make([]int32, n), make([]int32, n), make([]int32, n), make([]int32, n), 'b')
	assert.ErrorIs(t, err, ErrInternal)
}

func TestNodePanics(t *testing.T) {
	s, err := New("banana")
	require.NoError(t, err)
	assert.Panics(t, func() { s.Node(s.NodeNum()) })
	assert.Panics(t, func() { s.Node(-1) })
}

func TestNextFrequencyOverflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	big := uint64(1) << 32
	s := &Suffix[int]{
		chars:   []rune("a"),
		sa:      []int{0},
		left:    []int{0, 0},
		right:   []int{int(big) - 1, int(big)},
		depth:   []int{1, 1},
		nodeNum: 2,
	}
	it := s.Iter()
	_, freq, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, uint32(math.MaxUint32), freq)
	assert.Panics(t, func() { it.Next() })
}

func TestAllStops(t *testing.T) {
	s, err := New("abracadabra")
	require.NoError(t, err)
	var got []string
	for substr := range s.All() {
		got = append(got, string(substr))
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"abra", "a"}, got)
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		text,
		prefix string
		lexOrdExp []int
	}{
		"empty text": {
			text:      "",
			prefix:    "a",
			lexOrdExp: []int{},
		},
		"empty prefix": {
			text:      "aaaaaaa",
			prefix:    "",
			lexOrdExp: []int{6, 5, 4, 3, 2, 1, 0},
		},
		"same characters": {
			text:      "aaaaaaa",
			prefix:    "a",
			lexOrdExp: []int{6, 5, 4, 3, 2, 1, 0},
		},
		"banana": {
			text:      "banana",
			prefix:    "banana",
			lexOrdExp: []int{0},
		},
		"ana": {
			text:      "banana",
			prefix:    "ana",
			lexOrdExp: []int{3, 1},
		},
		"na": {
			text:      "banana",
			prefix:    "na",
			lexOrdExp: []int{4, 2},
		},
		"a": {
			text:      "banana",
			prefix:    "a",
			lexOrdExp: []int{5, 3, 1},
		},
		"longer than text": {
			text:      "banana",
			prefix:    "bananas",
			lexOrdExp: []int{},
		},
		"not found": {
			text:      "banana",
			prefix:    "ab",
			lexOrdExp: []int{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := New(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.lexOrdExp, s.Lookup([]rune(tc.prefix)))
			assert.Equal(t, len(tc.lexOrdExp), s.Count([]rune(tc.prefix)))
		})
	}
}

func TestCountMatchesFrequencies(t *testing.T) {
	for i := 0; i < 5; i++ {
		text := string(genRandText(300, 3+int32(i)))
		s, err := New(text)
		require.NoError(t, err)
		for substr, freq := range s.All() {
			assert.Equal(t, int(freq), s.Count(substr))
		}
	}
}

func BenchmarkNew(b *testing.B) {
	runes := make([]rune, 1<<18)
	for i := range runes {
		runes[i] = 'a' + rand.Int31n(26)
	}
	text := string(runes)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New(text)
	}
}
