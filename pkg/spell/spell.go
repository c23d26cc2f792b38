// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"github.com/agext/levenshtein"
)

// maxDistance is the largest edit distance still considered a misspelling.
const maxDistance = 2

// Nearest returns the candidate closest to word, or "" if none is close enough.
// Ties go to the candidate listed first.
func Nearest(word string, candidates []string) string {
	best := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		if candidate == word {
			continue
		}
		distance := levenshtein.Distance(word, candidate, nil)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}
