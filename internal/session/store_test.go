// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/lutem/internal/models"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"in memory without path", func(c *Config) { c.Path = ""; c.InMemory = true }, false},
		{"missing path", func(c *Config) { c.Path = "" }, true},
		{"zero retries", func(c *Config) { c.MaxConflictRetries = 0 }, true},
		{"discard ratio one", func(c *Config) { c.GCDiscardRatio = 1 }, true},
		{"zero gc interval", func(c *Config) { c.GCInterval = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBadgerStore_InsertGet(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	sess := &models.Session{
		ID:            "s1",
		ItemID:        42,
		ItemName:      "Celeste",
		UserID:        "u1",
		RecommendedAt: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
	}
	if err := store.Insert(ctx, sess); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ItemID != 42 || got.ItemName != "Celeste" || !got.RecommendedAt.Equal(sess.RecommendedAt) {
		t.Errorf("Get() = %+v, want %+v", got, sess)
	}

	if err := store.Insert(ctx, sess); !errors.Is(err, ErrSessionExists) {
		t.Errorf("second Insert() error = %v, want ErrSessionExists", err)
	}
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrSessionNotFound", err)
	}
	if _, err := store.Get(ctx, ""); !errors.Is(err, ErrEmptySessionID) {
		t.Errorf("Get(\"\") error = %v, want ErrEmptySessionID", err)
	}
}

func TestBadgerStore_Update(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Insert(ctx, &models.Session{ID: "s1", ItemID: 1}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	updated, err := store.Update(ctx, "s1", func(s *models.Session) error {
		s.AvailableMinutes = 45
		return nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.AvailableMinutes != 45 {
		t.Errorf("AvailableMinutes = %d, want 45", updated.AvailableMinutes)
	}

	sentinel := errors.New("abort")
	_, err = store.Update(ctx, "s1", func(s *models.Session) error {
		s.AvailableMinutes = 99
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Update() error = %v, want %v", err, sentinel)
	}

	got, _ := store.Get(ctx, "s1")
	if got.AvailableMinutes != 45 {
		t.Errorf("aborted update was written: AvailableMinutes = %d", got.AvailableMinutes)
	}

	if _, err := store.Update(ctx, "missing", func(*models.Session) error { return nil }); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrSessionNotFound", err)
	}
}

func TestBadgerStore_ListByUser(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Inserted out of order; listing follows RecommendedAt.
	inserts := []models.Session{
		{ID: "c", UserID: "u1", RecommendedAt: base.Add(2 * time.Hour)},
		{ID: "a", UserID: "u1", RecommendedAt: base},
		{ID: "b", UserID: "u1", RecommendedAt: base.Add(time.Hour)},
		{ID: "x", UserID: "u1:2", RecommendedAt: base},
		{ID: "anon", RecommendedAt: base},
	}
	for i := range inserts {
		if err := store.Insert(ctx, &inserts[i]); err != nil {
			t.Fatalf("Insert(%s) error = %v", inserts[i].ID, err)
		}
	}

	got, err := store.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	var ids []string
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("ListByUser(u1) ids = %v, want [a b c]", ids)
	}

	other, err := store.ListByUser(ctx, "u1:2")
	if err != nil || len(other) != 1 || other[0].ID != "x" {
		t.Errorf("ListByUser(u1:2) = %v, %v; want [x]", other, err)
	}

	none, err := store.ListByUser(ctx, "nobody")
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("ListByUser(nobody) = %v, %v; want empty non-nil", none, err)
	}
}

func TestBadgerStore_Closed(t *testing.T) {
	t.Parallel()

	store, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, err := store.Get(context.Background(), "s1"); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("Get() after close error = %v, want ErrStoreClosed", err)
	}
	if err := store.RunGC(); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("RunGC() after close error = %v, want ErrStoreClosed", err)
	}
}

func TestBadgerStore_RunGCInMemory(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
}

func TestBadgerStore_OnDisk(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Path = t.TempDir()
	cfg.SyncWrites = false

	store, err := Open(&cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	ctx := context.Background()
	if err := store.Insert(ctx, &models.Session{ID: "s1", ItemID: 7}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := store.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(&cfg)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "s1")
	if err != nil || got.ItemID != 7 {
		t.Errorf("Get() after reopen = %+v, %v", got, err)
	}
}
