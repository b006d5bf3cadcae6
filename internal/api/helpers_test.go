// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/lutem/internal/database"
	"github.com/tomtom215/lutem/internal/eventprocessor"
	"github.com/tomtom215/lutem/internal/models"
	"github.com/tomtom215/lutem/internal/recommend"
	"github.com/tomtom215/lutem/internal/satisfaction"
	"github.com/tomtom215/lutem/internal/session"
)

// fakeCatalog serves a fixed item list.
type fakeCatalog struct {
	mu      sync.Mutex
	items   []models.Item
	err     error
	pingErr error
}

func (c *fakeCatalog) FetchEligibleCatalog(context.Context) ([]models.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return append([]models.Item(nil), c.items...), nil
}

func (c *fakeCatalog) GetItem(_ context.Context, id int64) (*models.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			item := c.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", database.ErrItemNotFound, id)
}

func (c *fakeCatalog) GetItems(_ context.Context, ids []int64) (map[int64]models.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int64]models.Item, len(ids))
	for _, id := range ids {
		for i := range c.items {
			if c.items[i].ID == id {
				out[id] = c.items[i]
			}
		}
	}
	return out, nil
}

func (c *fakeCatalog) Ping(context.Context) error { return c.pingErr }

func (c *fakeCatalog) setErr(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

// fakeChecker reports a fixed health.
type fakeChecker struct {
	health eventprocessor.ComponentHealth
}

func (c fakeChecker) HealthCheck(context.Context) eventprocessor.ComponentHealth { return c.health }

func testItems() []models.Item {
	return []models.Item{
		{
			ID:               1,
			Name:             "Stardew Valley",
			MinMinutes:       10,
			MaxMinutes:       30,
			EmotionalGoals:   []models.EmotionalGoal{models.GoalUnwind},
			Interruptibility: models.InterruptibilityHigh,
			EnergyRequired:   models.EnergyLow,
			Genres:           []string{"Simulation"},
			TaggingSource:    models.TaggingManual,
		},
		{
			ID:               2,
			Name:             "Celeste",
			MinMinutes:       15,
			MaxMinutes:       45,
			EmotionalGoals:   []models.EmotionalGoal{models.GoalChallenge},
			Interruptibility: models.InterruptibilityMedium,
			EnergyRequired:   models.EnergyHigh,
			Genres:           []string{"Platformer"},
			TaggingSource:    models.TaggingManual,
		},
	}
}

// testEnv wires real engine, recorder and satisfaction service over an
// in-memory Badger store and a fake catalog.
type testEnv struct {
	router   http.Handler
	catalog  *fakeCatalog
	recorder *session.Recorder
}

func newTestEnv(t *testing.T, checkers ...eventprocessor.HealthCheckable) *testEnv {
	t.Helper()

	store, err := session.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	catalog := &fakeCatalog{items: testItems()}
	recorder := session.NewRecorder(store, zerolog.Nop())
	svc := satisfaction.NewService(satisfaction.NewSessionHistory(store, catalog), zerolog.Nop())

	engine, err := recommend.NewEngine(nil, catalog, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.SetProfileSource(svc)
	engine.SetSessionRecorder(recorder)

	h := NewHandler(Dependencies{
		Engine:       engine,
		Sessions:     recorder,
		Satisfaction: svc,
		Catalog:      catalog,
		Checkers:     checkers,
		Version:      "test",
		Logger:       zerolog.Nop(),
	})

	return &testEnv{
		router:   NewRouter(h, DefaultRouterConfig()).SetupChi(),
		catalog:  catalog,
		recorder: recorder,
	}
}

// envelope mirrors models.APIResponse with a raw data payload.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Error    *models.APIError `json:"error"`
	Metadata models.Metadata  `json:"metadata"`
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Status != StatusError || env.Error == nil {
		t.Fatalf("envelope = %+v, want error", env)
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
}

// Minimal response shapes.

type resultBody struct {
	Outcome   string `json:"outcome"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Top       *struct {
		Item struct {
			ID int64 `json:"id"`
		} `json:"item"`
		MatchPercentage int `json:"match_percentage"`
	} `json:"top"`
	Alternatives []json.RawMessage       `json:"alternatives"`
	Violations   []models.FieldViolation `json:"violations"`
}

type sessionBody struct {
	ID                string  `json:"id"`
	ItemID            int64   `json:"item_id"`
	UserID            string  `json:"user_id"`
	DesiredMood       string  `json:"desired_mood"`
	StartedAt         *string `json:"started_at"`
	EndedAt           *string `json:"ended_at"`
	SkippedAt         *string `json:"skipped_at"`
	SatisfactionScore *int    `json:"satisfaction_score"`
	FeedbackAt        *string `json:"feedback_at"`
}

var errCatalogDown = errors.New("catalog unavailable")

const unwindBody = `{"available_minutes":30,"desired_emotional_goals":["UNWIND"],"required_interruptibility":"HIGH","current_energy_level":"LOW","user_id":"u1"}`
