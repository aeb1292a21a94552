package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/model"
	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/store"
)

const dayMillis = 24 * 60 * 60 * 1000

// Tracker captures referral tokens from inbound visits and resolves the
// active referrer for a visitor within the configured attribution window.
// All state is keyed per visitor; operations on the same visitor are
// serialized so the read-modify-write on the marker cannot lose updates.
type Tracker struct {
	store store.Store
	now   func() time.Time

	mu       sync.Mutex
	visitors map[string]*sync.Mutex
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the time source, used by tests to move through the
// attribution window.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func New(st store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:    st,
		now:      time.Now,
		visitors: make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) visitorLock(visitorID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.visitors[visitorID]
	if !ok {
		lock = &sync.Mutex{}
		t.visitors[visitorID] = lock
	}
	return lock
}

// Track records an inbound visit carrying a referral token. An empty or
// unknown token is silently ignored. A valid token overwrites the visitor's
// marker unconditionally and appends one click; clicks are never
// deduplicated, every valid visit counts. The affiliate's active flag is not
// consulted here.
func (t *Tracker) Track(ctx context.Context, visitorID, refToken, clientTag string) error {
	if refToken == "" {
		return nil
	}

	_, err := t.store.GetUserByID(ctx, refToken)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil
		}
		// Treat an unreadable users collection as "token unknown".
		slog.Warn("referral lookup failed, visit not tracked",
			"visitor_id", visitorID, "error", err)
		return nil
	}

	if runes := []rune(clientTag); len(runes) > model.MaxUserAgentLen {
		clientTag = string(runes[:model.MaxUserAgentLen])
	}

	lock := t.visitorLock(visitorID)
	lock.Lock()
	defer lock.Unlock()

	now := t.now().UnixMilli()
	marker := &model.ReferrerMarker{AffiliateID: refToken, Timestamp: now}
	if err := t.store.SaveReferrerMarker(ctx, visitorID, marker); err != nil {
		return fmt.Errorf("failed to save referrer marker: %w", err)
	}

	click := model.Click{AffiliateID: refToken, Timestamp: now, UserAgent: clientTag}
	if err := t.store.AppendClick(ctx, click); err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return nil
}

// ActiveReferrer returns the visitor's referrer marker if it is still inside
// the attribution window, or nil when there is none. An expired marker is
// deleted on read; a valid one is returned untouched, a read never refreshes
// its timestamp.
func (t *Tracker) ActiveReferrer(ctx context.Context, visitorID string) (*model.ReferrerMarker, error) {
	lock := t.visitorLock(visitorID)
	lock.Lock()
	defer lock.Unlock()

	marker, err := t.store.GetReferrerMarker(ctx, visitorID)
	if err != nil {
		slog.Warn("referrer marker read failed, treating as absent",
			"visitor_id", visitorID, "error", err)
		return nil, nil
	}
	if marker == nil {
		return nil, nil
	}

	settings := t.settings(ctx)
	windowMillis := int64(settings.AttributionDays) * dayMillis
	if t.now().UnixMilli()-marker.Timestamp > windowMillis {
		if err := t.store.SaveReferrerMarker(ctx, visitorID, nil); err != nil {
			return nil, fmt.Errorf("failed to clear expired referrer marker: %w", err)
		}
		return nil, nil
	}
	return marker, nil
}

// Clear drops the visitor's marker regardless of its age.
func (t *Tracker) Clear(ctx context.Context, visitorID string) error {
	lock := t.visitorLock(visitorID)
	lock.Lock()
	defer lock.Unlock()
	return t.store.SaveReferrerMarker(ctx, visitorID, nil)
}

// settings re-reads the current settings on every call so admin changes take
// effect immediately; a failed read degrades to the defaults.
func (t *Tracker) settings(ctx context.Context) model.Settings {
	settings, err := t.store.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSettingsNotFound) {
			slog.Warn("settings read failed, using defaults", "error", err)
		}
		return model.DefaultSettings()
	}
	return settings
}
