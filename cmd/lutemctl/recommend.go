// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/lutem/internal/models"
)

type recommendFlags struct {
	minutes          int
	goals            []string
	interruptibility string
	energy           string
	timeOfDay        string
	social           string
	genres           []string
	user             string
}

// request builds the context body. Enum values are accepted in any case;
// unknown ones are rejected before anything is sent.
func (f *recommendFlags) request() (*models.ContextRequest, error) {
	req := &models.ContextRequest{
		AvailableMinutes: f.minutes,
		DesiredGoals:     make([]models.EmotionalGoal, 0, len(f.goals)),
		TimeOfDay:        models.TimeOfDay(strings.ToUpper(f.timeOfDay)),
		SocialPreference: models.SocialPreference(strings.ToUpper(f.social)),
		PreferredGenres:  f.genres,
		UserID:           f.user,
	}

	var err error
	if req.RequiredInterruptibility, err = models.ParseInterruptibility(f.interruptibility); err != nil {
		return nil, err
	}
	if f.energy != "" {
		if req.EnergyLevel, err = models.ParseEnergyLevel(f.energy); err != nil {
			return nil, err
		}
	}
	for _, g := range f.goals {
		goal := models.EmotionalGoal(strings.ToUpper(g))
		if !goal.Valid() {
			return nil, fmt.Errorf("%w: emotional goal %q", models.ErrUnknownEnum, g)
		}
		req.DesiredGoals = append(req.DesiredGoals, goal)
	}
	return req, nil
}

func newRecommendCmd() *cobra.Command {
	f := &recommendFlags{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Ask the server for a recommendation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}
			data, err := call(cmd.Context(), http.MethodPost, endpoint("/api/v1/recommendations"), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().IntVarP(&f.minutes, "minutes", "m", 0, "Available minutes (required)")
	cmd.Flags().StringSliceVarP(&f.goals, "goal", "g", nil, "Emotional goal, repeatable (e.g. unwind, challenge)")
	cmd.Flags().StringVarP(&f.interruptibility, "interruptibility", "i", "medium", "Required interruptibility: low, medium, high")
	cmd.Flags().StringVarP(&f.energy, "energy", "e", "", "Current energy: low, medium, high")
	cmd.Flags().StringVar(&f.timeOfDay, "time", "", "Time of day: morning, midday, afternoon, evening, late_night")
	cmd.Flags().StringVar(&f.social, "social", "", "Social preference: solo, coop, competitive, both")
	cmd.Flags().StringSliceVar(&f.genres, "genre", nil, "Preferred genre, repeatable")
	cmd.Flags().StringVarP(&f.user, "user", "u", "", "User id for personalization")
	_ = cmd.MarkFlagRequired("minutes")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}

// newUserCmd builds a GET command for /api/v1/users/{user}/{resource}.
func newUserCmd(name, resource, short string) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := fmt.Sprintf("/api/v1/users/%s/%s", url.PathEscape(user), resource)
			data, err := call(cmd.Context(), http.MethodGet, endpoint(path), nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "User id (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
