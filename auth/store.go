// Package auth tracks whether the current user is logged in and owns the
// persisted access token.
//
// A Store has two states, LoggedOut (initial) and LoggedIn. Login and Logout
// are unconditional transitions; Initialize derives the state from the
// persisted token by asking the backend to verify it. Subscribers are
// notified whenever the state changes.
package auth

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// State is the login state tracked by a Store.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case LoggedIn:
		return "logged_in"
	default:
		return "unknown"
	}
}

// Verifier checks a token against the backend. It reports invalid tokens and
// failures alike as false. *client.Client satisfies it.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) bool
}

type subscriber struct {
	fn      func(State)
	removed atomic.Bool
}

// notification is one state delivered to a fixed set of subscribers.
type notification struct {
	state State
	subs  []*subscriber
}

// Store is an observable login state. It is safe for concurrent use, but
// overlapping Initialize calls are not deduplicated: the last one to finish
// decides the state.
//
// Notifications go through one FIFO queue drained by a single goroutine at a
// time, so every subscriber sees states in the order they were set and its
// last delivered state is the current one.
type Store struct {
	verifier Verifier
	tokens   TokenStore
	logger   zerolog.Logger

	mu         sync.Mutex
	state      State
	subs       []*subscriber
	queue      []notification
	delivering bool
}

// NewStore returns a Store in the LoggedOut state.
func NewStore(verifier Verifier, tokens TokenStore, logger zerolog.Logger) *Store {
	return &Store{verifier: verifier, tokens: tokens, logger: logger}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsLoggedIn reports whether the current state is LoggedIn.
func (s *Store) IsLoggedIn() bool { return s.State() == LoggedIn }

// Subscribe delivers the current state to fn, then every later change. The
// returned func removes the subscription and may be called more than once.
//
// fn runs outside the Store's lock and may call back into the Store. When
// another goroutine is already delivering, that goroutine runs fn and
// Subscribe (like Login and Logout) can return before fn is called.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.queue = append(s.queue, notification{state: s.state, subs: []*subscriber{sub}})
	s.mu.Unlock()

	s.deliver()

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.removed.Store(true)
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, other := range s.subs {
				if other == sub {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Login moves to LoggedIn.
func (s *Store) Login() { s.set(LoggedIn) }

// Logout moves to LoggedOut.
func (s *Store) Logout() { s.set(LoggedOut) }

// Initialize reads the persisted token and settles the state:
//   - no token: LoggedOut
//   - token the backend accepts: LoggedIn
//   - token rejected, or verification failed: token removed, LoggedOut
func (s *Store) Initialize(ctx context.Context) State {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not read persisted token")
		s.set(LoggedOut)
		return LoggedOut
	}
	if token == "" {
		s.set(LoggedOut)
		return LoggedOut
	}

	if !s.verifier.VerifyToken(ctx, token) {
		if err := s.tokens.Clear(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("could not remove rejected token")
		}
		s.set(LoggedOut)
		return LoggedOut
	}
	s.set(LoggedIn)
	return LoggedIn
}

// SignIn persists token and moves to LoggedIn. The state is left untouched
// when the token cannot be saved.
func (s *Store) SignIn(ctx context.Context, token string) error {
	if err := s.tokens.Save(ctx, token); err != nil {
		return err
	}
	s.Login()
	return nil
}

// SignOut removes the persisted token and moves to LoggedOut. The transition
// happens even when removal fails; the removal error is returned.
func (s *Store) SignOut(ctx context.Context) error {
	err := s.tokens.Clear(ctx)
	s.Logout()
	return err
}

// Token returns the persisted token, or "" when none is stored.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.tokens.Load(ctx)
}

func (s *Store) set(next State) {
	s.mu.Lock()
	if s.state == next {
		s.mu.Unlock()
		return
	}
	s.state = next
	s.queue = append(s.queue, notification{state: next, subs: slices.Clone(s.subs)})
	s.mu.Unlock()

	s.logger.Debug().Stringer("state", next).Msg("auth state changed")
	s.deliver()
}

// deliver drains the notification queue unless another goroutine already is.
func (s *Store) deliver() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.queue) > 0 {
		n := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()
		for _, sub := range n.subs {
			if !sub.removed.Load() {
				sub.fn(n.state)
			}
		}
		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}
