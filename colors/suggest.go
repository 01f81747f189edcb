// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/image/colornames"
)

// MinSuggestSimilarity is the similarity (0..1) a standard color name
// must reach to be offered by [SuggestName].
const MinSuggestSimilarity = 0.6

// SuggestName returns the standard color name closest to the given
// misspelled name, and whether any name was close enough to suggest.
func SuggestName(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, nm := range colornames.Names {
		sim := strutil.Similarity(name, nm, lev)
		if sim > bestSim {
			best, bestSim = nm, sim
		}
	}
	if bestSim < MinSuggestSimilarity {
		return "", false
	}
	return best, true
}
