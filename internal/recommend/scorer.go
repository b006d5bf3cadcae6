// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"math"
	"strings"

	"github.com/tomtom215/lutem/internal/models"
)

// ReasonSeparator joins the leading reasons into one sentence.
const ReasonSeparator = " • "

// Scorer folds a rule pipeline over one item. It holds no mutable state
// and is safe for concurrent use.
type Scorer struct {
	rules      []Rule
	maxReasons int
}

// NewScorer creates a scorer running the default rules with weights w.
func NewScorer(w Weights, maxReasons int) *Scorer {
	return NewScorerWithRules(DefaultRules(w), maxReasons)
}

// NewScorerWithRules creates a scorer over an explicit pipeline.
func NewScorerWithRules(rules []Rule, maxReasons int) *Scorer {
	if maxReasons < 1 {
		maxReasons = 3
	}
	return &Scorer{rules: rules, maxReasons: maxReasons}
}

// Score evaluates item against req. The returned score is never negative;
// a rejected item scores exactly 0 with the rejecting rule's reason only.
func (s *Scorer) Score(item *models.Item, req *models.ContextRequest, profile *models.SatisfactionProfile) ScoredItem {
	c := &Candidate{Item: item, Request: req, Profile: profile}

	scores := make(map[string]float64, len(s.rules))
	var reasons []string
	var total float64

	for _, rule := range s.rules {
		out := rule.Apply(c)
		if out.Reject {
			return ScoredItem{
				Item:     *item,
				Score:    0,
				Scores:   map[string]float64{rule.Name: 0},
				Reasons:  []string{out.Reason},
				Reason:   out.Reason,
				Rejected: true,
			}
		}
		if out.Points != 0 {
			scores[rule.Name] = out.Points
			total += out.Points
		}
		if out.Reason != "" {
			reasons = append(reasons, out.Reason)
		}
	}

	return ScoredItem{
		Item:    *item,
		Score:   math.Max(0, total),
		Scores:  scores,
		Reasons: reasons,
		Reason:  FormatReason(reasons, s.maxReasons),
	}
}

// FormatReason joins the first limit reasons, or returns the fallback text
// when no rule produced one.
func FormatReason(reasons []string, limit int) string {
	if len(reasons) == 0 {
		return ReasonFallback
	}
	if limit > 0 && len(reasons) > limit {
		reasons = reasons[:limit]
	}
	return strings.Join(reasons, ReasonSeparator)
}
