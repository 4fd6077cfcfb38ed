package main

import (
	"strings"
	"unicode"
)

// String similarity functions used by entity resolution. All of them operate
// on case-insensitive input and none of them mutate their arguments.

// businessStopwords are corporate boilerplate words dropped before token
// comparison so "ABC Electric LLC" and "ABC Electric" compare equal.
var businessStopwords = map[string]bool{
	"inc":          true,
	"llc":          true,
	"llp":          true,
	"corp":         true,
	"co":           true,
	"ltd":          true,
	"company":      true,
	"construction": true,
	"contracting":  true,
	"services":     true,
	"enterprises":  true,
	"group":        true,
}

// businessNameTokens lowercases a name, strips punctuation, and drops
// corporate stopwords, returning the remaining whitespace-separated tokens.
func businessNameTokens(name string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
		// Punctuation is deleted, not replaced, so "Jon's" becomes "jons".
	}

	var tokens []string
	for _, tok := range strings.Fields(b.String()) {
		if !businessStopwords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// normalizeBusinessName returns the canonical comparison form of a business
// name: lowercased, punctuation stripped, stopwords removed.
func normalizeBusinessName(name string) string {
	return strings.Join(businessNameTokens(name), " ")
}

// levenshteinSimilarity computes edit distance between two strings and
// normalizes it to a 0-1 score as (maxLen - distance) / maxLen.
func levenshteinSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	distance := prev[len(rb)]
	return float64(maxLen-distance) / float64(maxLen)
}

// jaroWinklerSimilarity computes the Jaro score between two strings and
// boosts it by a weighted common-prefix bonus of up to 4 leading characters.
// This rewards names that share a start, e.g. "Smith Electric" vs
// "Smith Electrical Co".
func jaroWinklerSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Characters only match within a bounded window around each position.
	window := len(ra)
	if len(rb) > window {
		window = len(rb)
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	aMatched := make([]bool, len(ra))
	bMatched := make([]bool, len(rb))
	matches := 0
	for i := range ra {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > len(rb) {
			hi = len(rb)
		}
		for j := lo; j < hi; j++ {
			if bMatched[j] || ra[i] != rb[j] {
				continue
			}
			aMatched[i] = true
			bMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Count transpositions among the matched characters.
	transpositions := 0
	j := 0
	for i := range ra {
		if !aMatched[i] {
			continue
		}
		for !bMatched[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	jaro := (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(transpositions)/2)/m) / 3

	// Winkler prefix bonus, capped at 4 characters with scaling factor 0.1.
	prefix := 0
	for i := 0; i < len(ra) && i < len(rb) && i < 4; i++ {
		if ra[i] != rb[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*0.1*(1-jaro)
}

// tokenSetSimilarity computes the Jaccard index of the normalized token sets
// of two names. Word order and corporate suffixes do not affect the score.
func tokenSetSimilarity(a, b string) float64 {
	setA := make(map[string]bool)
	for _, tok := range businessNameTokens(a) {
		setA[tok] = true
	}
	setB := make(map[string]bool)
	for _, tok := range businessNameTokens(b) {
		setB[tok] = true
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
