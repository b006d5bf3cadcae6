// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/lutem/internal/models"
)

// Rule names, also used as keys of ScoredItem.Scores.
const (
	RuleTimeFit         = "time_fit"
	RuleEmotionalGoals  = "emotional_goals"
	RuleInterrupt       = "interruptibility"
	RuleEnergy          = "energy"
	RuleTimeOfDay       = "time_of_day"
	RuleSocial          = "social"
	RulePersonalBonus   = "personal_bonus"
	RuleGenrePreference = "genre_preference"
	RuleGenreAffinity   = "genre_affinity"
	RuleBestTimeOfDay   = "best_time_of_day"
	RulePopularity      = "popularity"
)

// Reason texts that do not depend on the candidate.
const (
	ReasonTooLong          = "Too long for available time"
	ReasonInvalidDurations = "Invalid duration range"
	ReasonEasyToPause      = "Easy to pause when needed"
	ReasonWontDrain        = "Won't drain your energy"
	ReasonLovedBefore      = "You've loved this before (%.1f/5 ⭐)"
	ReasonEnjoyedBefore    = "Previously enjoyed by you"
	ReasonPlayersLove      = "Players love this (%.1f/5 ⭐)"
	ReasonWellLiked        = "Well liked by other players"
	ReasonBestTime         = "Your best time to play"
	ReasonAcclaimed        = "Highly rated by critics"
	ReasonFallback         = "Available item for your time slot"
)

// Candidate is the input shared by every rule for one item.
// Profile is nil when personalization is disabled.
type Candidate struct {
	Item    *models.Item
	Request *models.ContextRequest
	Profile *models.SatisfactionProfile
}

// Outcome is a single rule's contribution. A zero Outcome means the rule
// did not fire. Reject short-circuits the pipeline with a score of 0.
type Outcome struct {
	Points float64
	Reason string
	Reject bool
}

// Rule is a named pure scoring function.
type Rule struct {
	Name  string
	Apply func(c *Candidate) Outcome
}

// DefaultRules returns the scoring pipeline in evaluation order.
// Reason order follows this order.
func DefaultRules(w Weights) []Rule {
	return []Rule{
		{RuleTimeFit, timeFitRule(w)},
		{RuleEmotionalGoals, emotionalGoalRule(w)},
		{RuleInterrupt, interruptibilityRule(w)},
		{RuleEnergy, energyRule(w)},
		{RuleTimeOfDay, timeOfDayRule(w)},
		{RuleSocial, socialRule(w)},
		{RulePersonalBonus, personalBonusRule(w)},
		{RuleGenrePreference, genrePreferenceRule(w)},
		{RuleGenreAffinity, genreAffinityRule(w)},
		{RuleBestTimeOfDay, bestTimeOfDayRule(w)},
		{RulePopularity, popularityRule(w)},
	}
}

// timeFitRule is the hard gate: an item that cannot start within the
// available window is rejected.
func timeFitRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		it, avail := c.Item, c.Request.AvailableMinutes
		if !it.ValidDurations() {
			return Outcome{Reject: true, Reason: ReasonInvalidDurations}
		}
		if it.MinMinutes > avail {
			return Outcome{Reject: true, Reason: ReasonTooLong}
		}
		if it.MaxMinutes <= avail {
			return Outcome{Points: w.TimeFitFull, Reason: fmt.Sprintf("Fits your %d-minute window", avail)}
		}
		return Outcome{Points: w.TimeFitPartial, Reason: fmt.Sprintf("Can start in %d minutes", avail)}
	}
}

func emotionalGoalRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		goals := uniqueGoals(c.Request.DesiredGoals)
		if len(goals) == 0 {
			return Outcome{}
		}
		share := w.EmotionalGoals / float64(len(goals))

		var points float64
		var matched []string
		for _, g := range goals {
			if c.Item.HasGoal(g) {
				points += share
				matched = append(matched, strings.ToLower(g.DisplayName()))
			}
		}
		if len(matched) == 0 {
			return Outcome{}
		}
		return Outcome{Points: points, Reason: "Great for " + strings.Join(matched, " and ")}
	}
}

func interruptibilityRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		required, level := c.Request.RequiredInterruptibility, c.Item.Interruptibility
		if !required.Known() || !level.Known() {
			return Outcome{}
		}
		switch {
		case level == required:
			return Outcome{
				Points: w.InterruptExact,
				Reason: level.DisplayName() + " - " + level.Description(),
			}
		case level.Rank() > required.Rank():
			return Outcome{Points: w.InterruptFlexible, Reason: ReasonEasyToPause}
		default:
			return Outcome{Points: w.InterruptPenalty}
		}
	}
}

func energyRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		current, needed := c.Request.EnergyLevel, c.Item.EnergyRequired
		if !current.Known() || !needed.Known() {
			return Outcome{}
		}
		switch {
		case needed == current:
			return Outcome{
				Points: w.EnergyExact,
				Reason: fmt.Sprintf("Perfect match for your %s energy level", strings.ToLower(needed.DisplayName())),
			}
		case needed.Rank() < current.Rank():
			return Outcome{Points: w.EnergyLower, Reason: ReasonWontDrain}
		default:
			return Outcome{Points: w.EnergyPenalty}
		}
	}
}

func timeOfDayRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		slot := c.Request.TimeOfDay
		if !slot.Valid() || !c.Item.SuitsTimeOfDay(slot) {
			return Outcome{}
		}
		return Outcome{
			Points: w.TimeOfDay,
			Reason: "Ideal for " + strings.ToLower(slot.DisplayName()),
		}
	}
}

// socialRule penalizes an explicit mismatch. Items without social tags
// carry no information and are left alone.
// socialRule penalizes an item without social tags like a mismatch: it
// cannot be shown to suit the requested mode.
func socialRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		pref := c.Request.SocialPreference
		if !pref.Valid() {
			return Outcome{}
		}
		if c.Item.SupportsSocial(pref) {
			return Outcome{
				Points: w.SocialMatch,
				Reason: "Perfect for " + strings.ToLower(pref.DisplayName()) + " play",
			}
		}
		return Outcome{Points: w.SocialPenalty}
	}
}

// personalBonusRule prefers the requester's own rating of the item and
// falls back to the lifetime average across all users.
func personalBonusRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		if c.Profile != nil {
			if rating, ok := c.Profile.ItemRatings[c.Item.ID]; ok {
				out := Outcome{Points: rating / 5 * w.PersonalRating}
				switch {
				case rating >= 4.0:
					out.Reason = fmt.Sprintf(ReasonLovedBefore, rating)
				case rating >= 3.5:
					out.Reason = ReasonEnjoyedBefore
				}
				return out
			}
		}

		if c.Item.SatisfactionCount < 1 {
			return Outcome{}
		}
		avg := c.Item.SatisfactionAverage
		out := Outcome{Points: avg / 5 * w.GlobalRating}
		switch {
		case avg >= 4.0:
			out.Reason = fmt.Sprintf(ReasonPlayersLove, avg)
		case avg >= 3.5:
			out.Reason = ReasonWellLiked
		}
		return out
	}
}

// genrePreferenceRule counts how many preferred genres the item carries,
// so the bonus never exceeds its weight.
func genrePreferenceRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		prefs := c.Request.PreferredGenres
		if len(prefs) == 0 || len(c.Item.Genres) == 0 {
			return Outcome{}
		}

		matchedPrefs := 0
		for _, p := range prefs {
			if containsFold(c.Item.Genres, p) {
				matchedPrefs++
			}
		}
		if matchedPrefs == 0 {
			return Outcome{}
		}

		var names []string
		for _, g := range c.Item.Genres {
			if containsFold(prefs, g) {
				names = append(names, g)
			}
		}
		return Outcome{
			Points: float64(matchedPrefs) / float64(len(prefs)) * w.GenrePreference,
			Reason: "Matches your taste: " + strings.Join(names, ", "),
		}
	}
}

// genreAffinityRule awards a flat bonus once, however many genres qualify.
func genreAffinityRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		if c.Profile == nil || len(c.Profile.GenreRatings) == 0 {
			return Outcome{}
		}
		for _, g := range c.Item.Genres {
			if genreRatedAtLeast(c.Profile.GenreRatings, g, w.AffinityThreshold) {
				return Outcome{Points: w.GenreAffinity, Reason: "You rate " + g + " highly"}
			}
		}
		return Outcome{}
	}
}

func bestTimeOfDayRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		p, slot := c.Profile, c.Request.TimeOfDay
		if p == nil || slot == "" || p.BestTimeOfDay != slot {
			return Outcome{}
		}
		if p.TimeOfDayRatings[slot] < w.AffinityThreshold {
			return Outcome{}
		}
		return Outcome{Points: w.BestTimeOfDay, Reason: ReasonBestTime}
	}
}

func popularityRule(w Weights) func(*Candidate) Outcome {
	return func(c *Candidate) Outcome {
		if c.Item.Popularity == nil {
			return Outcome{}
		}
		p := clamp(*c.Item.Popularity, 0, models.MaxPopularity)
		points := p / models.MaxPopularity * w.Popularity
		if points == 0 {
			return Outcome{}
		}
		out := Outcome{Points: points}
		if points >= 0.8*w.Popularity {
			out.Reason = ReasonAcclaimed
		}
		return out
	}
}

func uniqueGoals(goals []models.EmotionalGoal) []models.EmotionalGoal {
	seen := make(map[models.EmotionalGoal]struct{}, len(goals))
	out := make([]models.EmotionalGoal, 0, len(goals))
	for _, g := range goals {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func genreRatedAtLeast(ratings map[string]float64, genre string, threshold float64) bool {
	if avg, ok := ratings[genre]; ok {
		return avg >= threshold
	}
	for g, avg := range ratings {
		if strings.EqualFold(g, genre) && avg >= threshold {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
