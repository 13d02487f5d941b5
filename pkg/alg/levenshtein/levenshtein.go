// Copyright (c) 2015, Arbo von Monkiewitsch All rights reserved.
// Use of this source code is governed by a BSD-style
// license.

// Package levenshtein calculates edit distances and picks the closest
// candidate for "did you mean" hints.
package levenshtein

// Distance returns the minimum number of single-rune insertions, deletions,
// or substitutions needed to turn a into b. It uses one column of
// O(len(a)) space.
func Distance(a, b string) int {
	s1 := []rune(a)
	s2 := []rune(b)

	if len(s2) == 0 {
		return len(s1)
	}

	column := make([]int, len(s1)+1)
	for idx := 1; idx <= len(s1); idx++ {
		column[idx] = idx
	}

	for col, s2Rune := range s2 {
		column[0] = col + 1
		lastdiag := col

		for row, s1Rune := range s1 {
			olddiag := column[row+1]

			cost := 0
			if s1Rune != s2Rune {
				cost = 1
			}

			column[row+1] = min(
				column[row+1]+1,
				column[row]+1,
				lastdiag+cost,
			)
			lastdiag = olddiag
		}
	}

	return column[len(s1)]
}

// Closest returns the candidate nearest to word, provided its distance is
// at most maxDistance. Ties go to the earlier candidate.
func Closest(word string, candidates []string, maxDistance int) (string, bool) {
	best := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		d := Distance(word, candidate)
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best, bestDistance <= maxDistance
}
