// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package models

import (
	"fmt"
	"strings"
)

// Interruptibility describes how freely a session can be paused.
// Values carry an explicit rank; HIGH is the most flexible.
type Interruptibility int

const (
	InterruptibilityUnknown Interruptibility = 0
	InterruptibilityLow     Interruptibility = 1
	InterruptibilityMedium  Interruptibility = 2
	InterruptibilityHigh    Interruptibility = 3
)

// Rank returns the ordinal used for flexibility comparisons.
// Unknown levels rank 0 and are skipped by scoring rules.
func (i Interruptibility) Rank() int {
	switch i {
	case InterruptibilityLow:
		return 1
	case InterruptibilityMedium:
		return 2
	case InterruptibilityHigh:
		return 3
	default:
		return 0
	}
}

// Known reports whether i is one of the defined levels.
func (i Interruptibility) Known() bool { return i.Rank() > 0 }

// String returns the wire name.
func (i Interruptibility) String() string {
	switch i {
	case InterruptibilityLow:
		return "LOW"
	case InterruptibilityMedium:
		return "MEDIUM"
	case InterruptibilityHigh:
		return "HIGH"
	default:
		return ""
	}
}

// DisplayName returns the user-facing label.
func (i Interruptibility) DisplayName() string {
	switch i {
	case InterruptibilityLow:
		return "Fully Committed"
	case InterruptibilityMedium:
		return "Some Flexibility"
	case InterruptibilityHigh:
		return "Very Flexible"
	default:
		return ""
	}
}

// Description returns the short pause-behaviour hint shown in reasons.
func (i Interruptibility) Description() string {
	switch i {
	case InterruptibilityLow:
		return "Complete sessions preferred"
	case InterruptibilityMedium:
		return "Can pause between rounds"
	case InterruptibilityHigh:
		return "Pause anytime"
	default:
		return ""
	}
}

// ParseInterruptibility parses a case-insensitive wire name.
func ParseInterruptibility(s string) (Interruptibility, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return InterruptibilityLow, nil
	case "MEDIUM":
		return InterruptibilityMedium, nil
	case "HIGH":
		return InterruptibilityHigh, nil
	default:
		return InterruptibilityUnknown, fmt.Errorf("%w: interruptibility %q", ErrUnknownEnum, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (i Interruptibility) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Empty input leaves the
// level unknown.
func (i *Interruptibility) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*i = InterruptibilityUnknown
		return nil
	}
	v, err := ParseInterruptibility(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// EnergyLevel is the energy an item demands or a user currently has.
type EnergyLevel int

const (
	EnergyUnknown EnergyLevel = 0
	EnergyLow     EnergyLevel = 1
	EnergyMedium  EnergyLevel = 2
	EnergyHigh    EnergyLevel = 3
)

// Rank returns the explicit ordinal (LOW < MEDIUM < HIGH).
func (e EnergyLevel) Rank() int {
	switch e {
	case EnergyLow:
		return 1
	case EnergyMedium:
		return 2
	case EnergyHigh:
		return 3
	default:
		return 0
	}
}

// Known reports whether e is one of the defined levels.
func (e EnergyLevel) Known() bool { return e.Rank() > 0 }

func (e EnergyLevel) String() string {
	switch e {
	case EnergyLow:
		return "LOW"
	case EnergyMedium:
		return "MEDIUM"
	case EnergyHigh:
		return "HIGH"
	default:
		return ""
	}
}

// DisplayName returns the user-facing label.
func (e EnergyLevel) DisplayName() string {
	switch e {
	case EnergyLow:
		return "Low"
	case EnergyMedium:
		return "Medium"
	case EnergyHigh:
		return "High"
	default:
		return ""
	}
}

// ParseEnergyLevel parses a case-insensitive wire name.
func ParseEnergyLevel(s string) (EnergyLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return EnergyLow, nil
	case "MEDIUM":
		return EnergyMedium, nil
	case "HIGH":
		return EnergyHigh, nil
	default:
		return EnergyUnknown, fmt.Errorf("%w: energy level %q", ErrUnknownEnum, s)
	}
}

func (e EnergyLevel) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *EnergyLevel) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*e = EnergyUnknown
		return nil
	}
	v, err := ParseEnergyLevel(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ContentRating is an age rating ordered EVERYONE < TEEN < MATURE < ADULT.
type ContentRating int

const (
	ContentRatingUnknown  ContentRating = 0
	ContentRatingEveryone ContentRating = 1
	ContentRatingTeen     ContentRating = 2
	ContentRatingMature   ContentRating = 3
	ContentRatingAdult    ContentRating = 4
)

// Rank returns the explicit ordinal; unrated items rank 0.
func (c ContentRating) Rank() int {
	switch c {
	case ContentRatingEveryone:
		return 1
	case ContentRatingTeen:
		return 2
	case ContentRatingMature:
		return 3
	case ContentRatingAdult:
		return 4
	default:
		return 0
	}
}

// Known reports whether c is one of the defined ratings.
func (c ContentRating) Known() bool { return c.Rank() > 0 }

func (c ContentRating) String() string {
	switch c {
	case ContentRatingEveryone:
		return "EVERYONE"
	case ContentRatingTeen:
		return "TEEN"
	case ContentRatingMature:
		return "MATURE"
	case ContentRatingAdult:
		return "ADULT"
	default:
		return ""
	}
}

// ParseContentRating parses a case-insensitive wire name.
func ParseContentRating(s string) (ContentRating, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EVERYONE":
		return ContentRatingEveryone, nil
	case "TEEN":
		return ContentRatingTeen, nil
	case "MATURE":
		return ContentRatingMature, nil
	case "ADULT":
		return ContentRatingAdult, nil
	default:
		return ContentRatingUnknown, fmt.Errorf("%w: content rating %q", ErrUnknownEnum, s)
	}
}

func (c ContentRating) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *ContentRating) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*c = ContentRatingUnknown
		return nil
	}
	v, err := ParseContentRating(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// EmotionalGoal is a desired emotional outcome of a play session.
type EmotionalGoal string

const (
	GoalUnwind           EmotionalGoal = "UNWIND"
	GoalRecharge         EmotionalGoal = "RECHARGE"
	GoalLockingIn        EmotionalGoal = "LOCKING_IN"
	GoalChallenge        EmotionalGoal = "CHALLENGE"
	GoalAdventureTime    EmotionalGoal = "ADVENTURE_TIME"
	GoalProgressOriented EmotionalGoal = "PROGRESS_ORIENTED"
)

var goalDisplayNames = map[EmotionalGoal]string{
	GoalUnwind:           "Unwind and relax",
	GoalRecharge:         "Recharge Energy",
	GoalLockingIn:        "Locking in",
	GoalChallenge:        "Challenge Myself",
	GoalAdventureTime:    "Adventure Time",
	GoalProgressOriented: "Progress Oriented",
}

// Valid reports whether g is a known goal.
func (g EmotionalGoal) Valid() bool {
	_, ok := goalDisplayNames[g]
	return ok
}

// DisplayName returns the user-facing label, or the raw value if unknown.
func (g EmotionalGoal) DisplayName() string {
	if name, ok := goalDisplayNames[g]; ok {
		return name
	}
	return string(g)
}

// TimeOfDay is a coarse slot of the day. TimeOfDayAny is a wildcard tag.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "MORNING"
	TimeOfDayMidday    TimeOfDay = "MIDDAY"
	TimeOfDayAfternoon TimeOfDay = "AFTERNOON"
	TimeOfDayEvening   TimeOfDay = "EVENING"
	TimeOfDayLateNight TimeOfDay = "LATE_NIGHT"
	TimeOfDayAny       TimeOfDay = "ANY"
)

var timeOfDayDisplayNames = map[TimeOfDay]string{
	TimeOfDayMorning:   "Morning",
	TimeOfDayMidday:    "Midday",
	TimeOfDayAfternoon: "Afternoon",
	TimeOfDayEvening:   "Evening",
	TimeOfDayLateNight: "Late Night",
	TimeOfDayAny:       "Anytime",
}

func (t TimeOfDay) Valid() bool {
	_, ok := timeOfDayDisplayNames[t]
	return ok
}

func (t TimeOfDay) DisplayName() string {
	if name, ok := timeOfDayDisplayNames[t]; ok {
		return name
	}
	return string(t)
}

// SocialPreference is a play mode. SocialBoth is a wildcard tag.
type SocialPreference string

const (
	SocialSolo        SocialPreference = "SOLO"
	SocialCoop        SocialPreference = "COOP"
	SocialCompetitive SocialPreference = "COMPETITIVE"
	SocialBoth        SocialPreference = "BOTH"
)

var socialDisplayNames = map[SocialPreference]string{
	SocialSolo:        "Solo",
	SocialCoop:        "Co-op",
	SocialCompetitive: "Competitive",
	SocialBoth:        "Solo/Multiplayer",
}

func (s SocialPreference) Valid() bool {
	_, ok := socialDisplayNames[s]
	return ok
}

func (s SocialPreference) DisplayName() string {
	if name, ok := socialDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

// AudioDependency describes how much an item relies on sound.
type AudioDependency string

const (
	AudioRequired AudioDependency = "REQUIRED"
	AudioHelpful  AudioDependency = "HELPFUL"
	AudioOptional AudioDependency = "OPTIONAL"
)

func (a AudioDependency) Valid() bool {
	switch a {
	case AudioRequired, AudioHelpful, AudioOptional:
		return true
	}
	return false
}

// AudioMode is the caller's current ability to play sound.
type AudioMode string

const (
	AudioModeFull  AudioMode = "full"
	AudioModeLow   AudioMode = "low"
	AudioModeMuted AudioMode = "muted"
)

func (m AudioMode) Valid() bool {
	switch m {
	case AudioModeFull, AudioModeLow, AudioModeMuted:
		return true
	}
	return false
}

// ExplicitContent is the sexual-content level of an item.
type ExplicitContent string

const (
	ExplicitNone       ExplicitContent = "NONE"
	ExplicitSuggestive ExplicitContent = "SUGGESTIVE"
	ExplicitExplicit   ExplicitContent = "EXPLICIT"
)

func (e ExplicitContent) Valid() bool {
	switch e {
	case ExplicitNone, ExplicitSuggestive, ExplicitExplicit:
		return true
	}
	return false
}

// TaggingSource records how an item's context tags were produced.
// PENDING items are not yet fully classified and never recommended.
type TaggingSource string

const (
	TaggingManual       TaggingSource = "MANUAL"
	TaggingAIGenerated  TaggingSource = "AI_GENERATED"
	TaggingUserAdjusted TaggingSource = "USER_ADJUSTED"
	TaggingPending      TaggingSource = "PENDING"
)

// Classified reports whether the item may enter recommendation.
func (t TaggingSource) Classified() bool {
	switch t {
	case TaggingManual, TaggingAIGenerated, TaggingUserAdjusted:
		return true
	}
	return false
}
