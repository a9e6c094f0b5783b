package prefs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/example/roomportal/internal/logging"
)

// Repository is the persistence surface for preferences.
type Repository interface {
	Get(ctx context.Context, visitorID string) (Preferences, bool, error)
	Put(ctx context.Context, visitorID string, p Preferences) error
}

// Service is the process-wide owner of display preferences. Views read one
// Preferences value per render instead of consulting ambient storage, and
// subscribers are notified after every change so dependent state can refresh.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers []func(visitorID string, p Preferences)
}

// NewService constructs a preference service over the given repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Get returns the stored preferences for a visitor, or the defaults when the
// visitor is unknown. Storage failures degrade to the defaults as well: a
// broken preference store must never take a page down.
func (s *Service) Get(ctx context.Context, visitorID string) Preferences {
	if s == nil || s.repo == nil || visitorID == "" {
		return Default()
	}

	stored, ok, err := s.repo.Get(ctx, visitorID)
	if err != nil {
		logging.Or(ctx, s.logger).WarnContext(ctx, "failed to load preferences, using defaults",
			"visitor_id", visitorID, "error", err)
		return Default()
	}
	if !ok {
		return Default()
	}
	return stored.Normalized()
}

// Put normalizes and persists the preferences, then notifies subscribers.
func (s *Service) Put(ctx context.Context, visitorID string, p Preferences) error {
	if s == nil || s.repo == nil {
		return nil
	}

	p = p.Normalized()
	if err := s.repo.Put(ctx, visitorID, p); err != nil {
		return err
	}

	s.mu.RLock()
	subscribers := make([]func(string, Preferences), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.RUnlock()

	for _, notify := range subscribers {
		notify(visitorID, p)
	}
	return nil
}

// Subscribe registers a callback invoked after every successful change.
func (s *Service) Subscribe(fn func(visitorID string, p Preferences)) {
	if s == nil || fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}
