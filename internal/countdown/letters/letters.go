// Package letters implements the Countdown letters solver: a
// multiset-subset filter over a word list.
package letters

import (
	"sort"
	"strings"
)

// Result is one printable line of the letters solver's output.
type Result struct {
	Word   string
	Length int
}

// Normalise strips surrounding whitespace and uppercases a letters
// pool or word. It is idempotent: Normalise(Normalise(s)) ==
// Normalise(s).
func Normalise(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsValid reports whether word can be spelled using only the letters
// in pool, respecting multiplicity: every letter occurring in word
// must occur at least as many times in pool.
func IsValid(word, pool string) bool {
	available := tally(pool)
	for _, r := range word {
		available[r]--
		if available[r] < 0 {
			return false
		}
	}
	return true
}

func tally(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// Solve normalises pool and every word, keeps the words valid for
// pool, sorts them by descending length (stable on ties, so words
// that tie in length keep the order they had in the input word list),
// and truncates to maxResults.
func Solve(pool string, words []string, maxResults int) []Result {
	normPool := Normalise(pool)

	var valid []Result
	for _, w := range words {
		normWord := Normalise(w)
		if normWord == "" {
			continue
		}
		if IsValid(normWord, normPool) {
			valid = append(valid, Result{Word: normWord, Length: len(normWord)})
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Length > valid[j].Length
	})

	if maxResults < len(valid) {
		valid = valid[:maxResults]
	}
	return valid
}
