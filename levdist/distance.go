// Package levdist computes Levenshtein edit distances between sequences
// and writes the lower triangle of the normalized all-pairs distance matrix
// for a list of labelled sequences.
package levdist

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrBothEmpty is returned (wrapped) when a normalized distance is requested
// for two empty sequences and the policy does not allow it.
var ErrBothEmpty = errors.New("both sequences are empty")

// BothEmptyPolicy determines what Normalized does when both of the
// sequences are empty. The edit distance and the longest length are then
// both zero.
type BothEmptyPolicy string

// These are the available BothEmptyPolicy values
const (
	// BothEmptyZero gives a normalized distance of zero
	BothEmptyZero BothEmptyPolicy = "zero"
	// BothEmptyError reports an ErrBothEmpty error
	BothEmptyError BothEmptyPolicy = "error"
)

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-character insertions, deletions or substitutions needed
// to transform a into b. Every edit has a cost of one.
//
// The characters are runes if both strings are valid UTF-8 and bytes
// otherwise. Invalid bytes all decode to utf8.RuneError so comparing them as
// runes would make distinct sequences equal.
func Distance(a, b string) int {
	if bothValidUTF8(a, b) {
		return distance([]rune(a), []rune(b))
	}

	return distance([]byte(a), []byte(b))
}

// bothValidUTF8 reports whether both strings are valid UTF-8
func bothValidUTF8(a, b string) bool {
	return utf8.ValidString(a) && utf8.ValidString(b)
}

// seqLens returns the lengths of a and b counted in the same characters as
// Distance uses
func seqLens(a, b string) (int, int) {
	if bothValidUTF8(a, b) {
		return utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	}

	return len(a), len(b)
}

// distance calculates the edit distance between a and b. The full table has
// len(b)+1 rows and len(a)+1 columns but only the previous and current rows
// are kept.
func distance[T comparable](a, b []T) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for c := range prev {
		prev[c] = c
	}

	for r := 1; r <= len(b); r++ {
		curr[0] = r

		for c := 1; c <= len(a); c++ {
			subCost := 1
			if a[c-1] == b[r-1] {
				subCost = 0
			}

			curr[c] = min(curr[c-1]+1, prev[c]+1, prev[c-1]+subCost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Normalized returns the Levenshtein distance between a and b divided by
// the length of the longer of the two. Lengths are counted in the same
// characters as Distance uses. For any pair where at least one sequence is
// non-empty the result lies in the range [0,1]. If both sequences are empty
// the policy decides the result.
func Normalized(a, b string, policy BothEmptyPolicy) (float64, error) {
	aLen, bLen := seqLens(a, b)

	maxLen := max(aLen, bLen)
	if maxLen == 0 {
		switch policy {
		case BothEmptyZero, "":
			return 0, nil
		case BothEmptyError:
			return 0, ErrBothEmpty
		default:
			return 0, fmt.Errorf("unknown both-empty policy: %q", policy)
		}
	}

	return float64(Distance(a, b)) / float64(maxLen), nil
}
