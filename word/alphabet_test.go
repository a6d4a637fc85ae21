package word_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abba/word"
)

func TestNewAlphabet_Dedup(t *testing.T) {
	a := word.NewAlphabet('b', 'a', 'b', 'c', 'a')

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []rune{'b', 'a', 'c'}, a.Symbols())
	assert.Equal(t, "{b, a, c}", a.String())
	assert.True(t, a.Contains('c'))
	assert.False(t, a.Contains('z'))
}

func TestAlphabetOf(t *testing.T) {
	assert.Equal(t, "{o, n, c, e}", word.AlphabetOf("once").String())
	assert.Equal(t, "{a, b}", word.AlphabetOf("abba").String())
	assert.Zero(t, word.AlphabetOf("").Len())
}

func TestParseAlphabet(t *testing.T) {
	a, err := word.ParseAlphabet([]string{"o", "n", "c", "e", "o"})
	require.NoError(t, err)
	assert.Equal(t, []rune("once"), a.Symbols())

	for _, bad := range [][]string{{"ab"}, {""}, {"a", "bc"}} {
		_, err = word.ParseAlphabet(bad)
		require.ErrorIs(t, err, word.ErrNotSymbol, "input %q", bad)
	}

	empty, err := word.ParseAlphabet(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestAlphabet_ZeroValue(t *testing.T) {
	var a word.Alphabet

	assert.Zero(t, a.Len())
	assert.False(t, a.Contains('a'))
	assert.Equal(t, "{}", a.String())
	assert.Empty(t, slices.Collect(a.Words(2)))
}

func TestAlphabet_Accepts(t *testing.T) {
	a := word.AlphabetOf("once")

	assert.True(t, a.Accepts("once", 4))
	assert.True(t, a.Accepts("eeee", 4))
	assert.False(t, a.Accepts("once", 3), "wrong length")
	assert.False(t, a.Accepts("onca", 4), "foreign symbol")
	assert.True(t, a.Accepts("", 0))
}

func TestAlphabet_Count(t *testing.T) {
	a := word.AlphabetOf("abc")

	n, ok := a.Count(0)
	require.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = a.Count(4)
	require.True(t, ok)
	assert.Equal(t, 81, n)

	_, ok = a.Count(200)
	assert.False(t, ok, "3^200 overflows int")

	_, ok = a.Count(-1)
	assert.False(t, ok)
}

func TestAlphabet_Words(t *testing.T) {
	got := slices.Collect(word.AlphabetOf("ab").Words(2))
	assert.Equal(t, []string{"aa", "ab", "ba", "bb"}, got)

	// order follows the alphabet order, not rune order
	got = slices.Collect(word.AlphabetOf("ba").Words(2))
	assert.Equal(t, []string{"bb", "ba", "ab", "aa"}, got)

	assert.Empty(t, slices.Collect(word.AlphabetOf("ab").Words(0)))
	assert.Empty(t, slices.Collect(word.AlphabetOf("ab").Words(-3)))
}

// TestAlphabet_WordsComplete asserts |Σ|^n distinct words of length n.
func TestAlphabet_WordsComplete(t *testing.T) {
	for _, tc := range []struct {
		symbols string
		n       int
	}{
		{"a", 1}, {"a", 5}, {"ab", 3}, {"once", 4}, {"xyz", 2},
	} {
		a := word.AlphabetOf(tc.symbols)
		want, ok := a.Count(tc.n)
		require.True(t, ok)

		seen := make(map[string]struct{})
		for w := range a.Words(tc.n) {
			require.True(t, a.Accepts(w, tc.n), "word %q", w)
			seen[w] = struct{}{}
		}
		assert.Len(t, seen, want, "alphabet %s n=%d", a, tc.n)
	}
}

// TestAlphabet_WordsEarlyStop asserts the iterator honours break.
func TestAlphabet_WordsEarlyStop(t *testing.T) {
	var got []string
	for w := range word.AlphabetOf("abc").Words(3) {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"aaa", "aab"}, got)
}
