package word

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrNotSymbol is returned when a textual symbol is not exactly one rune.
var ErrNotSymbol = errors.New("word: symbol must be a single character")

// Alphabet is an ordered set of distinct symbols.
// The zero value is the empty alphabet.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet returns the alphabet of the given symbols in order.
// Repeated symbols keep their first position.
func NewAlphabet(symbols ...rune) Alphabet {
	a := Alphabet{index: make(map[rune]int, len(symbols))}
	for _, r := range symbols {
		if _, dup := a.index[r]; dup {
			continue
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}

	return a
}

// AlphabetOf returns the alphabet of the distinct runes of s, in order of
// first appearance: AlphabetOf("once") is {o, n, c, e}.
func AlphabetOf(s string) Alphabet {
	return NewAlphabet([]rune(s)...)
}

// ParseAlphabet builds an alphabet from textual symbols such as
// []string{"o", "n", "c", "e"}. Every entry must be exactly one rune.
func ParseAlphabet(symbols []string) (Alphabet, error) {
	runes := make([]rune, 0, len(symbols))
	for i, s := range symbols {
		if utf8.RuneCountInString(s) != 1 {
			return Alphabet{}, fmt.Errorf("ParseAlphabet: symbol[%d]=%q: %w", i, s, ErrNotSymbol)
		}
		r, _ := utf8.DecodeRuneInString(s)
		runes = append(runes, r)
	}

	return NewAlphabet(runes...), nil
}

// Len returns the number of distinct symbols.
func (a Alphabet) Len() int { return len(a.symbols) }

// Symbols returns a copy of the symbols in order.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// Contains reports whether r is a symbol of a.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Accepts reports whether s is a word of length n over a.
func (a Alphabet) Accepts(s string, n int) bool {
	if utf8.RuneCountInString(s) != n {
		return false
	}
	for _, r := range s {
		if !a.Contains(r) {
			return false
		}
	}

	return true
}

// Count returns |a|^n, the number of words of length n.
// ok is false when the result does not fit in an int.
func (a Alphabet) Count(n int) (count int, ok bool) {
	if n < 0 {
		return 0, false
	}
	count = 1
	k := len(a.symbols)
	for i := 0; i < n; i++ {
		if k != 0 && count > math.MaxInt/k {
			return 0, false
		}
		count *= k
	}

	return count, true
}

// Words yields every word of length n over a in lexicographic order with
// respect to the alphabet order (the last position varies fastest).
// Nothing is yielded for n <= 0 or an empty alphabet.
func (a Alphabet) Words(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		k := len(a.symbols)
		if n <= 0 || k == 0 {
			return
		}

		// odometer over symbol indexes
		digits := make([]int, n)
		buf := make([]rune, n)
		for i := range buf {
			buf[i] = a.symbols[0]
		}
		for {
			if !yield(string(buf)) {
				return
			}
			pos := n - 1
			for pos >= 0 {
				digits[pos]++
				if digits[pos] < k {
					buf[pos] = a.symbols[digits[pos]]
					break
				}
				digits[pos] = 0
				buf[pos] = a.symbols[0]
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// String renders the alphabet as "{o, n, c, e}".
func (a Alphabet) String() string {
	parts := make([]string, len(a.symbols))
	for i, r := range a.symbols {
		parts[i] = string(r)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
