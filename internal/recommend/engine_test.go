// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package recommend

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/lutem/internal/models"
)

// mockCatalog implements CatalogSource for testing.
type mockCatalog struct {
	items []models.Item
	err   error
	calls atomic.Int32
}

func (m *mockCatalog) FetchEligibleCatalog(ctx context.Context) ([]models.Item, error) {
	m.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

// mockProfiles implements ProfileSource for testing.
type mockProfiles struct {
	profiles map[string]*models.SatisfactionProfile
	err      error
}

func (m *mockProfiles) Profile(ctx context.Context, userID string) (*models.SatisfactionProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return models.NewSatisfactionProfile(userID), nil
}

// mockRecorder implements SessionRecorder for testing.
type mockRecorder struct {
	mu       sync.Mutex
	created  []models.ContextSnapshot
	itemIDs  []int64
	err      error
	sequence int
}

func (m *mockRecorder) Create(ctx context.Context, item *models.Item, snap models.ContextSnapshot) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.sequence++
	m.created = append(m.created, snap)
	m.itemIDs = append(m.itemIDs, item.ID)
	return &models.Session{
		ID:               "session-" + strconv.Itoa(m.sequence),
		ItemID:           item.ID,
		ItemName:         item.Name,
		UserID:           snap.UserID,
		AvailableMinutes: snap.AvailableMinutes,
		DesiredMood:      snap.DesiredMood,
		RecommendedAt:    time.Now(),
	}, nil
}

func newTestEngine(t *testing.T, items []models.Item) (*Engine, *mockRecorder) {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), &mockCatalog{items: items}, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	rec := &mockRecorder{}
	engine.SetSessionRecorder(rec)
	return engine, rec
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		e, err := NewEngine(nil, &mockCatalog{}, testLogger())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		if e.Config().MaxAlternatives != 4 {
			t.Errorf("MaxAlternatives = %d, want 4", e.Config().MaxAlternatives)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxReasons = 0
		if _, err := NewEngine(cfg, &mockCatalog{}, testLogger()); err == nil {
			t.Error("NewEngine() expected error for invalid config")
		}
	})

	t.Run("missing catalog", func(t *testing.T) {
		if _, err := NewEngine(nil, nil, testLogger()); !errors.Is(err, ErrNoCatalog) {
			t.Errorf("NewEngine() error = %v, want ErrNoCatalog", err)
		}
	})
}

func TestEngine_ScenarioA(t *testing.T) {
	engine, rec := newTestEngine(t, []models.Item{itemA(), itemB()})

	result, err := engine.Recommend(context.Background(), unwindRequest())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if result.Outcome != models.OutcomeRecommended {
		t.Fatalf("Outcome = %s, want recommended", result.Outcome)
	}
	if result.Top.Item.ID != 1 {
		t.Errorf("Top = %d, want item A", result.Top.Item.ID)
	}
	if result.Top.Score != 90 {
		t.Errorf("Top score = %v, want 90", result.Top.Score)
	}
	if result.Top.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %d, want 100", result.Top.MatchPercentage)
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("Alternatives = %v, want none (item B is too long)", result.Alternatives)
	}
	if result.TotalCandidates != 2 || result.EligibleCandidates != 2 {
		t.Errorf("candidates = %d/%d, want 2/2", result.TotalCandidates, result.EligibleCandidates)
	}
	if result.SessionID == "" {
		t.Error("SessionID should be set")
	}

	if len(rec.created) != 1 {
		t.Fatalf("sessions created = %d, want 1", len(rec.created))
	}
	snap := rec.created[0]
	if snap.AvailableMinutes != 30 || snap.DesiredMood != "unwind" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestEngine_ScenarioChallenge(t *testing.T) {
	engine, _ := newTestEngine(t, []models.Item{itemA()})

	req := unwindRequest()
	req.DesiredGoals = []models.EmotionalGoal{models.GoalChallenge}

	result, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Outcome != models.OutcomeRecommended {
		t.Fatalf("Outcome = %s, want recommended", result.Outcome)
	}
	if result.Top.Score != 65 {
		t.Errorf("Top score = %v, want 65", result.Top.Score)
	}
}

func TestEngine_NoMatch(t *testing.T) {
	engine, rec := newTestEngine(t, []models.Item{itemB()})

	result, err := engine.Recommend(context.Background(), unwindRequest())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if result.Outcome != models.OutcomeNoMatch {
		t.Fatalf("Outcome = %s, want no_match", result.Outcome)
	}
	if result.Top != nil || len(result.Alternatives) != 0 {
		t.Errorf("no_match result should be empty: %+v", result)
	}
	if result.Message != models.NoMatchMessage {
		t.Errorf("Message = %q", result.Message)
	}
	if len(rec.created) != 0 {
		t.Error("no session should be created when nothing matched")
	}
}

func TestEngine_EmptyCatalog(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	result, err := engine.Recommend(context.Background(), unwindRequest())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Outcome != models.OutcomeNoMatch {
		t.Errorf("Outcome = %s, want no_match", result.Outcome)
	}
}

func TestEngine_InvalidRequest(t *testing.T) {
	catalog := &mockCatalog{items: []models.Item{itemA()}}
	engine, err := NewEngine(nil, catalog, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	tests := []struct {
		name    string
		req     models.ContextRequest
		wantMsg []string
	}{
		{
			name:    "empty request",
			req:     models.ContextRequest{},
			wantMsg: []string{"availableMinutes must be positive", "at least one emotional goal required", "interruptibility level required"},
		},
		{
			name: "negative minutes",
			req: func() models.ContextRequest {
				r := unwindRequest()
				r.AvailableMinutes = -10
				return r
			}(),
			wantMsg: []string{"availableMinutes must be positive"},
		},
		{
			name: "unknown goal",
			req: func() models.ContextRequest {
				r := unwindRequest()
				r.DesiredGoals = []models.EmotionalGoal{"SLEEP"}
				return r
			}(),
			wantMsg: []string{"desired_emotional_goals[0] must be a valid emotional goal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Recommend(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if result.Outcome != models.OutcomeInvalidRequest {
				t.Fatalf("Outcome = %s, want invalid_request", result.Outcome)
			}
			if len(result.Violations) != len(tt.wantMsg) {
				t.Fatalf("Violations = %+v, want %d", result.Violations, len(tt.wantMsg))
			}
			for i, v := range result.Violations {
				if v.Message != tt.wantMsg[i] {
					t.Errorf("Violations[%d] = %q, want %q", i, v.Message, tt.wantMsg[i])
				}
			}
			if !strings.HasPrefix(result.Message, "Please check: ") {
				t.Errorf("Message = %q", result.Message)
			}
		})
	}

	if catalog.calls.Load() != 0 {
		t.Error("invalid requests must not reach the catalog")
	}
	if got := engine.GetMetrics().InvalidRequests; got != 3 {
		t.Errorf("InvalidRequests = %d, want 3", got)
	}
}

func TestEngine_CatalogError(t *testing.T) {
	boom := errors.New("duckdb unavailable")
	engine, err := NewEngine(nil, &mockCatalog{err: boom}, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	result, err := engine.Recommend(context.Background(), unwindRequest())
	if !errors.Is(err, boom) {
		t.Errorf("Recommend() error = %v, want wrapped catalog error", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
	if engine.GetMetrics().Errors != 1 {
		t.Errorf("Errors = %d, want 1", engine.GetMetrics().Errors)
	}
}

func TestEngine_CallerCancellationKeepsBreakersClosed(t *testing.T) {
	catalog := &mockCatalog{items: []models.Item{itemA()}}
	engine, err := NewEngine(nil, catalog, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.SetProfileSource(&mockProfiles{})

	req := unwindRequest()
	req.UserID = "u1"

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	threshold := int(engine.Config().Breaker.FailureThreshold)
	for i := 0; i < threshold; i++ {
		if _, err := engine.Recommend(canceled, req); !errors.Is(err, context.Canceled) {
			t.Fatalf("call %d: Recommend() error = %v, want context.Canceled", i, err)
		}
	}

	if got := engine.catalogBreaker.State(); got != gobreaker.StateClosed {
		t.Errorf("catalog breaker = %s, want closed", got)
	}

	result, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() after cancellations error = %v", err)
	}
	if result.Outcome != models.OutcomeRecommended {
		t.Errorf("Outcome = %s, want recommended", result.Outcome)
	}
	if got := catalog.calls.Load(); got != int32(threshold+1) {
		t.Errorf("catalog calls = %d, want %d", got, threshold+1)
	}
}

func TestEngine_CanceledProfileLookupKeepsBreakerClosed(t *testing.T) {
	engine, _ := newTestEngine(t, []models.Item{itemA()})
	engine.SetProfileSource(&mockProfiles{})

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < int(engine.Config().Breaker.FailureThreshold)+1; i++ {
		if p := engine.loadProfile(canceled, "u1", testLogger()); p != nil {
			t.Fatalf("call %d: profile = %+v, want nil for a canceled lookup", i, p)
		}
	}

	if got := engine.profileBreaker.State(); got != gobreaker.StateClosed {
		t.Errorf("profile breaker = %s, want closed", got)
	}
	if p := engine.loadProfile(context.Background(), "u1", testLogger()); p == nil {
		t.Error("profile lookup after cancellations returned nil")
	}
}

func TestEngine_CatalogFailuresOpenBreaker(t *testing.T) {
	catalog := &mockCatalog{err: errors.New("duckdb unavailable")}
	engine, err := NewEngine(nil, catalog, testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	threshold := int(engine.Config().Breaker.FailureThreshold)
	for i := 0; i < threshold; i++ {
		_, _ = engine.Recommend(context.Background(), unwindRequest())
	}

	_, err = engine.Recommend(context.Background(), unwindRequest())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Recommend() error = %v, want open breaker", err)
	}
	if got := catalog.calls.Load(); got != int32(threshold) {
		t.Errorf("catalog calls = %d, want %d", got, threshold)
	}
}

func TestEngine_SessionError(t *testing.T) {
	engine, rec := newTestEngine(t, []models.Item{itemA()})
	rec.err = errors.New("badger closed")

	if _, err := engine.Recommend(context.Background(), unwindRequest()); err == nil {
		t.Error("Recommend() expected error when the session cannot be recorded")
	}
}

func TestEngine_Personalization(t *testing.T) {
	liked := itemA()
	liked.ID = 10
	liked.Name = "Liked"
	other := itemA()
	other.ID = 11
	other.Name = "Other"

	engine, _ := newTestEngine(t, []models.Item{other, liked})

	profile := models.NewSatisfactionProfile("u1")
	profile.ItemRatings[10] = 5
	engine.SetProfileSource(&mockProfiles{profiles: map[string]*models.SatisfactionProfile{"u1": profile}})

	req := unwindRequest()
	req.UserID = "u1"

	result, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Top.Item.ID != 10 {
		t.Errorf("Top = %d, want the item the user rated 5", result.Top.Item.ID)
	}
	if result.Top.Score != 105 {
		t.Errorf("Top score = %v, want 105", result.Top.Score)
	}
	if len(result.Alternatives) != 1 || result.Alternatives[0].MatchPercentage != 86 {
		t.Errorf("Alternatives = %+v, want one at 86%%", result.Alternatives)
	}

	t.Run("anonymous requests skip profiles", func(t *testing.T) {
		anon := unwindRequest()
		result, err := engine.Recommend(context.Background(), anon)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if result.Top.Item.ID != 11 {
			t.Errorf("Top = %d, want catalog order on a tie", result.Top.Item.ID)
		}
	})
}

func TestEngine_ProfileErrorDegrades(t *testing.T) {
	engine, _ := newTestEngine(t, []models.Item{itemA()})
	engine.SetProfileSource(&mockProfiles{err: errors.New("history timeout")})

	req := unwindRequest()
	req.UserID = "u1"

	result, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Outcome != models.OutcomeRecommended || result.Top.Score != 90 {
		t.Errorf("result = %+v, want unpersonalized recommendation", result)
	}
}

func TestEngine_TiesKeepCatalogOrder(t *testing.T) {
	items := make([]models.Item, 0, 6)
	for i := int64(1); i <= 6; i++ {
		it := itemA()
		it.ID = i
		items = append(items, it)
	}
	engine, _ := newTestEngine(t, items)

	for run := 0; run < 5; run++ {
		result, err := engine.Recommend(context.Background(), unwindRequest())
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if result.Top.Item.ID != 1 {
			t.Fatalf("run %d: Top = %d, want 1", run, result.Top.Item.ID)
		}
		for i, alt := range result.Alternatives {
			if alt.Item.ID != int64(i+2) {
				t.Errorf("run %d: Alternatives[%d] = %d, want %d", run, i, alt.Item.ID, i+2)
			}
			if alt.MatchPercentage != 100 {
				t.Errorf("tied alternative pct = %d, want 100", alt.MatchPercentage)
			}
		}
		if len(result.Alternatives) != 4 {
			t.Errorf("len(Alternatives) = %d, want 4", len(result.Alternatives))
		}
	}
}

func TestEngine_FiltersBeforeScoring(t *testing.T) {
	loud := itemA()
	loud.ID = 20
	loud.AudioDependency = models.AudioRequired
	quiet := itemA()
	quiet.ID = 21
	quiet.AudioDependency = models.AudioOptional

	engine, _ := newTestEngine(t, []models.Item{loud, quiet})

	req := unwindRequest()
	req.AudioMode = models.AudioModeMuted

	result, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Top.Item.ID != 21 || len(result.Alternatives) != 0 {
		t.Errorf("result = %+v, want only the quiet item", result)
	}
	if result.EligibleCandidates != 1 {
		t.Errorf("EligibleCandidates = %d, want 1", result.EligibleCandidates)
	}
}

func TestEngine_PanicIsolation(t *testing.T) {
	good, bad := itemA(), itemA()
	bad.ID = 99

	engine, _ := newTestEngine(t, []models.Item{bad, good})

	rules := DefaultRules(DefaultWeights())
	rules = append(rules, Rule{
		Name: "explodes",
		Apply: func(c *Candidate) Outcome {
			if c.Item.ID == 99 {
				panic("corrupt item")
			}
			return Outcome{}
		},
	})
	engine.scorer = NewScorerWithRules(rules, engine.config.MaxReasons)

	result, err := engine.Recommend(context.Background(), unwindRequest())
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Top.Item.ID != good.ID {
		t.Errorf("Top = %d, want the healthy item", result.Top.Item.ID)
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("panicking item leaked into alternatives: %+v", result.Alternatives)
	}
	if got := engine.GetMetrics().ScoringFailures; got != 1 {
		t.Errorf("ScoringFailures = %d, want 1", got)
	}
}

func TestEngine_ConcurrentRecommend(t *testing.T) {
	engine, _ := newTestEngine(t, []models.Item{itemA(), itemB()})

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := engine.Recommend(context.Background(), unwindRequest())
			if err != nil {
				errs <- err
				return
			}
			if result.Top.Score != 90 {
				errs <- errors.New("unexpected score")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	if got := engine.GetMetrics().TotalRequests; got != 20 {
		t.Errorf("TotalRequests = %d, want 20", got)
	}
}
