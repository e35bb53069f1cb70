// Package theme owns the process-wide appearance mode: it loads the persisted
// preference, applies the root dark-background marker consumed by style
// resolution, and notifies subscribers when the mode changes.
package theme

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/folio/internal/logging"
	"github.com/renato0307/folio/internal/storage"
)

// StorageKey is the persisted preference key. Values are the literal
// strings "true" (dark) and "false" (light).
const StorageKey = "darkMode"

// Mode is the appearance mode.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool {
	return m == Dark
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Persisted returns the storage literal for m.
func (m Mode) Persisted() string {
	if m == Dark {
		return "true"
	}
	return "false"
}

// ParseMode maps a persisted literal back to a Mode. Anything other than
// exactly "true" or "false" is reported as unset.
func ParseMode(v string) (Mode, bool) {
	switch v {
	case "true":
		return Dark, true
	case "false":
		return Light, true
	default:
		return Light, false
	}
}

// ParseName accepts the user-facing names "light" and "dark".
func ParseName(name string) (Mode, bool) {
	switch name {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	default:
		return Light, false
	}
}

// Marker applies the global mode flag read by the style layer.
type Marker func(dark bool)

// Option configures a Store.
type Option func(*Store)

// WithMarker replaces the default lipgloss dark-background marker.
func WithMarker(m Marker) Option {
	return func(s *Store) {
		if m != nil {
			s.marker = m
		}
	}
}

type subscriber struct {
	id int
	fn func(Mode)
}

// Store is the single owner of the appearance mode.
// It is not safe for concurrent use; all calls happen on the UI loop.
type Store struct {
	mode    Mode
	storage storage.Storage
	marker  Marker
	subs    []subscriber
	nextID  int
	log     *logging.Logger
}

// New loads the persisted mode from st. A nil storage, a read error, a
// missing key or an unrecognized value all yield Light.
func New(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		mode:    Light,
		storage: st,
		marker:  lipgloss.SetHasDarkBackground,
		log:     logging.For("theme"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.storage == nil {
		s.storage = storage.Disabled{}
	}

	s.mode = s.load()
	s.marker(s.mode.IsDark())
	return s
}

func (s *Store) load() Mode {
	v, err := s.storage.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Debug("preference unavailable, using light", "error", err)
		}
		return Light
	}

	mode, ok := ParseMode(v)
	if !ok {
		s.log.Debug("unrecognized preference, using light", "value", v)
	}
	return mode
}

// Mode returns the current mode.
func (s *Store) Mode() Mode {
	return s.mode
}

// Set updates the mode, persists it, applies the marker and notifies
// subscribers. A failed write keeps the in-memory mode authoritative.
func (s *Store) Set(mode Mode) {
	if mode != Dark {
		mode = Light
	}
	s.mode = mode

	if err := s.storage.Set(StorageKey, mode.Persisted()); err != nil {
		s.log.Debug("failed to persist preference", "mode", mode, "error", err)
	}
	s.marker(mode.IsDark())
	s.log.Info("appearance changed", "mode", mode)

	// copy: a subscriber may unsubscribe while being notified
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(mode)
	}
}

// Toggle flips the mode.
func (s *Store) Toggle() Mode {
	s.Set(s.mode.Opposite())
	return s.mode
}

// Subscribe registers fn to be called after every Set, in subscription
// order. The returned function removes the subscription; calling it more
// than once is harmless.
func (s *Store) Subscribe(fn func(Mode)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store) Subscribers() int {
	return len(s.subs)
}
