// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package validation

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/lutem/internal/models"
)

// domainValidators are the custom tags registered on the singleton.
var domainValidators = map[string]validator.Func{
	"emotional_goal":    validateEmotionalGoal,
	"interruptibility":  validateInterruptibility,
	"energy_level":      validateEnergyLevel,
	"time_of_day":       validateTimeOfDay,
	"social_preference": validateSocialPreference,
	"audio_mode":        validateAudioMode,
	"content_rating":    validateContentRating,
}

func validateEmotionalGoal(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && models.EmotionalGoal(s).Valid()
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && models.TimeOfDay(s).Valid()
}

func validateSocialPreference(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && models.SocialPreference(s).Valid()
}

func validateAudioMode(fl validator.FieldLevel) bool {
	s, ok := stringField(fl)
	return ok && models.AudioMode(s).Valid()
}

func validateInterruptibility(fl validator.FieldLevel) bool {
	n, ok := intField(fl)
	return ok && models.Interruptibility(n).Known()
}

func validateEnergyLevel(fl validator.FieldLevel) bool {
	n, ok := intField(fl)
	return ok && models.EnergyLevel(n).Known()
}

func validateContentRating(fl validator.FieldLevel) bool {
	n, ok := intField(fl)
	return ok && models.ContentRating(n).Known()
}

func stringField(fl validator.FieldLevel) (string, bool) {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}

func intField(fl validator.FieldLevel) (int, bool) {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(f.Int()), true
	}
	return 0, false
}
