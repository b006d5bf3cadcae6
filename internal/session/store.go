// Lutem - Context-Aware Game Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lutem

package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/lutem/internal/logging"
	"github.com/tomtom215/lutem/internal/metrics"
	"github.com/tomtom215/lutem/internal/models"
)

// Store persists sessions. Update applies fn atomically: fn sees the
// current value and its error aborts the write. fn may run more than once
// when concurrent updates conflict, so it must only touch the session.
type Store interface {
	Insert(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, id string, fn func(*models.Session) error) (*models.Session, error)
	ListByUser(ctx context.Context, userID string) ([]models.Session, error)
}

// Key prefixes.
const (
	prefixSession = "session:"
	prefixUser    = "user:"
)

// BadgerStore implements Store on BadgerDB.
type BadgerStore struct {
	db         *badger.DB
	config     Config
	maxRetries int

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the session store.
func Open(cfg *Config) (*BadgerStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session store config: %w", err)
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
		opts.SyncWrites = cfg.SyncWrites
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("session store opened")

	return &BadgerStore{
		db:         db,
		config:     *cfg,
		maxRetries: cfg.MaxConflictRetries,
	}, nil
}

// OpenInMemory opens an in-memory store with default settings.
func OpenInMemory() (*BadgerStore, error) {
	cfg := DefaultConfig()
	cfg.InMemory = true
	cfg.Path = ""
	return Open(&cfg)
}

func sessionKey(id string) []byte {
	return []byte(prefixSession + id)
}

// userPrefix escapes the user id so ids containing ':' cannot share a
// prefix with another user.
func userPrefix(userID string) string {
	return prefixUser + url.QueryEscape(userID) + ":"
}

// userIndexKey orders a user's sessions by recommendation time.
func userIndexKey(s *models.Session) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", userPrefix(s.UserID), s.RecommendedAt.UnixNano(), s.ID))
}

func (s *BadgerStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

// Insert stores a new session. ErrSessionExists is returned if the id is
// taken.
func (s *BadgerStore) Insert(_ context.Context, sess *models.Session) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if sess.ID == "" {
		return ErrEmptySessionID
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := sessionKey(sess.ID)
		if _, err := txn.Get(key); err == nil {
			return ErrSessionExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check session: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		if sess.UserID != "" {
			if err := txn.Set(userIndexKey(sess), nil); err != nil {
				return fmt.Errorf("set user index: %w", err)
			}
		}
		return nil
	})
}

// Get returns the session with id.
func (s *BadgerStore) Get(_ context.Context, id string) (*models.Session, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrEmptySessionID
	}

	var sess *models.Session
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		sess, err = readSession(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Update applies fn to the stored session inside an optimistic
// transaction. A commit conflict is retried up to MaxConflictRetries times
// against the freshly read value.
func (s *BadgerStore) Update(ctx context.Context, id string, fn func(*models.Session) error) (*models.Session, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrEmptySessionID
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var updated *models.Session
		err := s.db.Update(func(txn *badger.Txn) error {
			sess, err := readSession(txn, id)
			if err != nil {
				return err
			}
			if err := fn(sess); err != nil {
				return err
			}

			data, err := json.Marshal(sess)
			if err != nil {
				return fmt.Errorf("marshal session: %w", err)
			}
			if err := txn.Set(sessionKey(id), data); err != nil {
				return fmt.Errorf("set session: %w", err)
			}
			updated = sess
			return nil
		})

		if errors.Is(err, badger.ErrConflict) && attempt < s.maxRetries {
			metrics.SessionStoreConflicts.Inc()
			logging.Debug().
				Str("session_id", id).
				Int("attempt", attempt).
				Msg("session update conflicted, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
}

// ListByUser returns a user's sessions ordered by recommendation time.
func (s *BadgerStore) ListByUser(ctx context.Context, userID string) ([]models.Session, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	sessions := []models.Session{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		prefix := []byte(userPrefix(userID))
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			key := string(it.Item().Key())
			id := key[strings.LastIndexByte(key, ':')+1:]

			sess, err := readSession(txn, id)
			if errors.Is(err, ErrSessionNotFound) {
				logging.Warn().Str("key", key).Msg("user index points at missing session")
				continue
			}
			if err != nil {
				return err
			}
			sessions = append(sessions, *sess)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate user sessions: %w", err)
	}
	return sessions, nil
}

func readSession(txn *badger.Txn, id string) (*models.Session, error) {
	item, err := txn.Get(sessionKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess models.Session
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &sess)
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// RunGC reclaims value log space until Badger reports nothing left to
// rewrite. It is a no-op for in-memory stores.
func (s *BadgerStore) RunGC() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.config.InMemory {
		metrics.SessionStoreGCRuns.WithLabelValues("nothing").Inc()
		return nil
	}

	start := time.Now()
	rewrites := 0
	for {
		err := s.db.RunValueLogGC(s.config.GCDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			break
		}
		if err != nil {
			metrics.SessionStoreGCRuns.WithLabelValues("error").Inc()
			return fmt.Errorf("run GC: %w", err)
		}
		rewrites++
	}

	result := "nothing"
	if rewrites > 0 {
		result = "rewritten"
	}
	metrics.SessionStoreGCRuns.WithLabelValues(result).Inc()

	logging.Debug().
		Int("rewrites", rewrites).
		Dur("duration", time.Since(start)).
		Msg("session store GC complete")
	return nil
}

// Config returns the store configuration.
func (s *BadgerStore) Config() Config {
	return s.config
}

// Close closes the underlying database. It is safe to call more than once.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	return nil
}
