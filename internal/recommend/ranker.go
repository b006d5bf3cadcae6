// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"math"
	"sort"
)

// Ranking is the ordered output of Rank. Top is nil when nothing scored
// above zero.
type Ranking struct {
	Top          *RankedItem
	Alternatives []RankedItem
}

// Empty reports whether the ranking is the no-match shape.
func (r Ranking) Empty() bool { return r.Top == nil }

// RankedItem is a scored item with its percentage relative to the top pick.
type RankedItem struct {
	ScoredItem
	MatchPercentage int
}

// Rank drops non-positive scores, stable-sorts the rest by descending score
// and returns the top item plus up to maxAlternatives runners-up. Equal
// scores keep their input order.
func Rank(scored []ScoredItem, maxAlternatives int) Ranking {
	kept := make([]ScoredItem, 0, len(scored))
	for i := range scored {
		if !scored[i].Rejected && scored[i].Score > 0 {
			kept = append(kept, scored[i])
		}
	}
	if len(kept) == 0 {
		return Ranking{Alternatives: []RankedItem{}}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	topScore := kept[0].Score
	top := RankedItem{ScoredItem: kept[0], MatchPercentage: MatchPercentage(topScore, topScore)}

	if maxAlternatives < 0 {
		maxAlternatives = 0
	}
	n := len(kept) - 1
	if n > maxAlternatives {
		n = maxAlternatives
	}
	alts := make([]RankedItem, 0, n)
	for _, s := range kept[1 : n+1] {
		alts = append(alts, RankedItem{ScoredItem: s, MatchPercentage: MatchPercentage(s.Score, topScore)})
	}

	return Ranking{Top: &top, Alternatives: alts}
}

// MatchPercentage normalizes score against the top score:
// round(clamp(score/top*100, 0, 100)). The top item is always 100.
func MatchPercentage(score, top float64) int {
	if top <= 0 || math.IsNaN(score) || math.IsNaN(top) {
		return 0
	}
	return int(math.Round(clamp(score/top*100, 0, 100)))
}
