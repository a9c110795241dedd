package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"inventario/src/models"
	"inventario/src/navigation"
	"inventario/src/store"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrSessionNotFound    = errors.New("session not found")
)

// Session is one login and its navigation state.
type Session struct {
	ID         string
	Username   string
	LoggedInAt time.Time
	Controller *navigation.Controller

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type SessionServiceI interface {
	Login(username, password string) (*Session, string, error)
	Logout(id string) error
	Get(id string) (*Session, error)
	SweepIdle(maxIdle time.Duration) int
	Count() int
}

var _ SessionServiceI = (*SessionService)(nil)

// SessionService issues mock logins: any non-blank username and password
// pair is accepted and nothing is checked against a user store.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store     store.DataStore
	tokenAuth *jwtauth.JWTAuth
	navOpts   navigation.Options
	logger    *logrus.Logger
	now       func() time.Time
}

type SessionOption func(*SessionService)

// WithSessionClock replaces time.Now, used by tests.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(s *SessionService) {
		s.now = now
	}
}

func NewSessionService(dataStore store.DataStore, tokenAuth *jwtauth.JWTAuth, navOpts navigation.Options, logger *logrus.Logger, opts ...SessionOption) *SessionService {
	s := &SessionService{
		sessions:  map[string]*Session{},
		store:     dataStore,
		tokenAuth: tokenAuth,
		navOpts:   navOpts,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionService) Login(username, password string) (*Session, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, "", ErrMissingCredentials
	}

	opts := s.navOpts
	opts.OnVerified = s.verifiedNotifier(opts.OnVerified)

	now := s.now()
	session := &Session{
		ID:         uuid.NewString(),
		Username:   username,
		LoggedInAt: now,
		Controller: navigation.NewController(opts),
		lastSeen:   now,
	}
	session.Controller.Login()

	claims := map[string]interface{}{
		"sid": session.ID,
		"sub": username,
	}
	jwtauth.SetIssuedAt(claims, now)
	_, token, err := s.tokenAuth.Encode(claims)
	if err != nil {
		return nil, "", fmt.Errorf("signing session token: %w", err)
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{"session": session.ID, "user": username}).Info("session opened")
	return session, token, nil
}

// verifiedNotifier announces first-time scan verifications on the shared store.
func (s *SessionService) verifiedNotifier(next func(string)) func(string) {
	return func(code string) {
		s.store.AddNotification(models.Notification{
			Title:   "Activo Verificado",
			Message: fmt.Sprintf("%s verificado en auditoría", code),
			Type:    models.NotificationAudit,
		})
		if next != nil {
			next(code)
		}
	}
}

func (s *SessionService) Get(id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.touch(s.now())
	return session, nil
}

// Logout resets the session's navigation state and forgets the session.
func (s *SessionService) Logout(id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	session.Controller.Logout()
	s.logger.WithField("session", id).Info("session closed")
	return nil
}

// SweepIdle logs out every session not seen for longer than maxIdle and
// returns how many were dropped.
func (s *SessionService) SweepIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	expired := make([]*Session, 0)
	for id, session := range s.sessions {
		if session.LastSeen().Before(cutoff) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Controller.Logout()
	}
	if len(expired) > 0 {
		s.logger.WithField("expired", len(expired)).Info("idle sessions swept")
	}
	return len(expired)
}

func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
