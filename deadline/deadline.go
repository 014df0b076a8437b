// Package deadline owns the single instant at which a quiz session runs out
// of time and keeps it persisted for the life of the session
package deadline

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/quiztimer/internal/timeutil"
	"github.com/ayoisaiah/quiztimer/store"
	"github.com/ayoisaiah/quiztimer/ticker"
)

// Key is the name under which the deadline is persisted.
const Key = "deadline"

// Store is the source of truth for the session deadline. The deadline is
// immutable once created until Reset is called.
type Store struct {
	deadline time.Time
	storage  store.Storage
	clock    ticker.Clock
	log      *slog.Logger
	mu       sync.Mutex
	degraded bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to compute new deadlines.
func WithClock(c ticker.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New returns a Store backed by storage. A nil storage keeps the deadline in
// memory only.
func New(storage store.Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		clock:   ticker.SystemClock,
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if storage == nil {
		s.degraded = true
	}

	return s
}

// GetOrCreate returns the session deadline. The first call in a session
// creates and persists now+offset; later calls, including those made by a
// new process in the same session, return the persisted instant.
func (s *Store) GetOrCreate(offset time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.deadline.IsZero() {
		return s.deadline
	}

	if t, ok := s.load(); ok {
		s.deadline = t

		return t
	}

	s.deadline = s.clock.Now().Add(offset)
	s.persist()

	return s.deadline
}

// Reset erases all persisted session state and creates a new deadline at
// now+offset, overwriting the previous one. Offset must be positive.
func (s *Store) Reset(offset time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.degraded {
		if err := s.storage.Clear(); err != nil {
			s.degrade("clear", err)
		}
	}

	s.deadline = s.clock.Now().Add(offset)
	s.persist()

	return s.deadline
}

// current returns the deadline if one has been created or restored.
func (s *Store) current() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deadline, !s.deadline.IsZero()
}

// Durable reports whether the deadline survives a restart.
func (s *Store) Durable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.degraded
}

func (s *Store) load() (time.Time, bool) {
	if s.degraded {
		return time.Time{}, false
	}

	b, err := s.storage.Get(Key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.degrade("read", err)
		}

		return time.Time{}, false
	}

	t, err := timeutil.FromKey(b)
	if err != nil {
		s.log.Warn(
			"discarding unreadable deadline",
			slog.String("value", string(b)),
			slog.Any("error", err),
		)

		return time.Time{}, false
	}

	return t, true
}

func (s *Store) persist() {
	if s.degraded {
		return
	}

	err := s.storage.Set(Key, timeutil.ToKey(s.deadline))
	if err != nil {
		s.degrade("write", err)
	}
}

// degrade switches the store to memory-only operation for the rest of the
// process lifetime.
func (s *Store) degrade(op string, err error) {
	s.degraded = true

	s.log.Warn(
		"deadline persistence unavailable, keeping it in memory",
		slog.String("op", op),
		slog.Any("error", err),
	)
}

// Peek reads the deadline persisted in storage without creating one. It
// returns store.ErrNotFound when the session has no deadline.
func Peek(storage store.Storage) (time.Time, error) {
	b, err := storage.Get(Key)
	if err != nil {
		return time.Time{}, err
	}

	return timeutil.FromKey(b)
}
