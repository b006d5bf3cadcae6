// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"testing"

	"github.com/tomtom215/lutem/internal/models"
)

func filterCatalog() []models.Item {
	return []models.Item{
		{ID: 1, Name: "needs sound", AudioDependency: models.AudioRequired, ContentRating: models.ContentRatingEveryone, ExplicitContent: models.ExplicitNone},
		{ID: 2, Name: "sound helps", AudioDependency: models.AudioHelpful, ContentRating: models.ContentRatingTeen, ExplicitContent: models.ExplicitSuggestive},
		{ID: 3, Name: "silent ok", AudioDependency: models.AudioOptional, ContentRating: models.ContentRatingMature, ExplicitContent: models.ExplicitExplicit},
		{ID: 4, Name: "untagged"},
		{ID: 5, Name: "adult", AudioDependency: models.AudioOptional, ContentRating: models.ContentRatingAdult, ExplicitContent: models.ExplicitNone},
	}
}

func ids(items []models.Item) []int64 {
	out := make([]int64, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    Constraints
		want []int64
	}{
		{
			name: "no constraints keeps everything",
			c:    Constraints{AllowExplicit: true},
			want: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "full audio applies no audio filter",
			c:    Constraints{AudioMode: models.AudioModeFull, AllowExplicit: true},
			want: []int64{1, 2, 3, 4, 5},
		},
		{
			name: "muted keeps optional and untagged",
			c:    Constraints{AudioMode: models.AudioModeMuted, AllowExplicit: true},
			want: []int64{3, 4, 5},
		},
		{
			name: "low excludes only required",
			c:    Constraints{AudioMode: models.AudioModeLow, AllowExplicit: true},
			want: []int64{2, 3, 4, 5},
		},
		{
			name: "teen ceiling keeps unrated",
			c:    Constraints{MaxContentRating: models.ContentRatingTeen, AllowExplicit: true},
			want: []int64{1, 2, 4},
		},
		{
			name: "explicit disallowed keeps none and unset",
			c:    Constraints{AllowExplicit: false},
			want: []int64{1, 4, 5},
		},
		{
			name: "combined",
			c:    Constraints{AudioMode: models.AudioModeMuted, MaxContentRating: models.ContentRatingMature, AllowExplicit: false},
			want: []int64{4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ids(Filter(filterCatalog(), tt.c))
			if !equalIDs(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_EmptyAndOrder(t *testing.T) {
	t.Parallel()

	if got := Filter(nil, Constraints{}); got == nil || len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty non-nil slice", got)
	}

	items := []models.Item{{ID: 9}, {ID: 3}, {ID: 7}}
	if got := ids(Filter(items, Constraints{AllowExplicit: true})); !equalIDs(got, []int64{9, 3, 7}) {
		t.Errorf("Filter() reordered items: %v", got)
	}
}

func TestConstraintsFor(t *testing.T) {
	t.Parallel()

	req := unwindRequest()
	if c := ConstraintsFor(&req); !c.AllowExplicit {
		t.Error("unset AllowExplicit should allow explicit content")
	}

	req.AllowExplicit = boolPtr(false)
	req.AudioMode = models.AudioModeLow
	req.MaxContentRating = models.ContentRatingTeen
	c := ConstraintsFor(&req)
	if c.AllowExplicit || c.AudioMode != models.AudioModeLow || c.MaxContentRating != models.ContentRatingTeen {
		t.Errorf("ConstraintsFor() = %+v", c)
	}
}
