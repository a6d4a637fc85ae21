package word

import "strings"

// IsPalindrome reports whether s reads the same rune sequence backwards.
// The empty string and single-rune strings are palindromes.
func IsPalindrome(s string) bool {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		if r[i] != r[j] {
			return false
		}
	}

	return true
}

// ReplaceAll returns s with every occurrence of old replaced by new.
//
// If old does not occur in s the substitution is a no-op and ReplaceAll
// reports ok == false with an empty result, so callers can skip it without
// comparing strings.
func ReplaceAll(s string, old, new rune) (string, bool) {
	if !strings.ContainsRune(s, old) {
		return "", false
	}

	return strings.Map(func(r rune) rune {
		if r == old {
			return new
		}
		return r
	}, s), true
}
