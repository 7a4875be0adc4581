package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/portalauth/internal/common"
	"github.com/dmitrijs2005/portalauth/internal/kv"
	"github.com/dmitrijs2005/portalauth/internal/logging"
	"github.com/dmitrijs2005/portalauth/internal/models"
)

const (
	DefaultRememberTTL = 24 * time.Hour
	DefaultSessionTTL  = time.Hour
)

type Store struct {
	persistent kv.Backend
	volatile   kv.Backend

	rememberTTL time.Duration
	sessionTTL  time.Duration

	now func() time.Time
	log logging.Logger
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTTL overrides the expiry thresholds of the persistent (remember-me)
// and volatile tiers. Non-positive values keep the defaults.
func WithTTL(remember, session time.Duration) Option {
	return func(s *Store) {
		if remember > 0 {
			s.rememberTTL = remember
		}
		if session > 0 {
			s.sessionTTL = session
		}
	}
}

// WithLogger sets the logger. A nil logger keeps the discarding default.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore binds a Store to the two host-supplied backends. The Store only
// holds references; it never closes them.
func NewStore(persistent, volatile kv.Backend, opts ...Option) *Store {
	s := &Store{
		persistent:  persistent,
		volatile:    volatile,
		rememberTTL: DefaultRememberTTL,
		sessionTTL:  DefaultSessionTTL,
		now:         time.Now,
		log:         logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "session")
	return s
}

func (s *Store) tier(persistent bool) (kv.Backend, string) {
	if persistent {
		return s.persistent, "persistent"
	}
	return s.volatile, "volatile"
}

// Create writes a fresh session for user to the tier picked by persistent.
// The other tier is left untouched. ok is false when the record could not be
// written; the caller should then treat the user as logged out.
func (s *Store) Create(ctx context.Context, user models.User, persistent bool) (sess *Session, ok bool) {
	sess = &Session{
		User:       user.WithoutPassword(),
		CreatedAt:  s.now(),
		Persistent: persistent,
	}

	data, err := encode(sess)
	if err != nil {
		s.log.Error(ctx, "session encode failed", "err", err)
		return nil, false
	}

	backend, tier := s.tier(persistent)
	if err := backend.Set(ctx, common.SessionKey, data); err != nil {
		s.log.Warn(ctx, "session write failed", "tier", tier, "err", err)
		return nil, false
	}

	s.log.Debug(ctx, "session created", "tier", tier, "email", sess.User.Email)
	return sess, true
}

// Load returns the stored session, preferring the persistent tier. Absent,
// unreadable and malformed records all yield (nil, false).
func (s *Store) Load(ctx context.Context) (*Session, bool) {
	for _, persistent := range []bool{true, false} {
		backend, tier := s.tier(persistent)

		data, err := backend.Get(ctx, common.SessionKey)
		if err != nil {
			s.log.Warn(ctx, "session read failed", "tier", tier, "err", err)
			continue
		}
		if data == nil {
			continue
		}

		sess, err := decode(data)
		if err != nil {
			s.log.Warn(ctx, "session record unreadable", "tier", tier, "err", err)
			return nil, false
		}
		return sess, true
	}
	return nil, false
}

// IsExpired reports whether sess has reached the threshold of its tier.
func (s *Store) IsExpired(sess *Session) bool {
	threshold := s.sessionTTL
	if sess.Persistent {
		threshold = s.rememberTTL
	}
	return s.now().Sub(sess.CreatedAt) >= threshold
}

// Validate is the startup check: it returns the live session, evicting it
// from both tiers first if it has expired.
func (s *Store) Validate(ctx context.Context) (*Session, bool) {
	sess, ok := s.Load(ctx)
	if !ok {
		return nil, false
	}
	if s.IsExpired(sess) {
		s.log.Info(ctx, "session expired", "email", sess.User.Email, "persistent", sess.Persistent)
		s.Invalidate(ctx)
		return nil, false
	}
	return sess, true
}

// Invalidate removes the session key from both tiers. It is idempotent.
func (s *Store) Invalidate(ctx context.Context) {
	for _, persistent := range []bool{true, false} {
		backend, tier := s.tier(persistent)
		if err := backend.Remove(ctx, common.SessionKey); err != nil {
			s.log.Warn(ctx, "session remove failed", "tier", tier, "err", err)
		}
	}
}
