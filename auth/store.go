package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

// Backend persists session records. Any backend error is treated as "not
// authenticated" by the store; sessions are never worth failing a request
// over.
type Backend interface {
	Put(ctx context.Context, s models.Session) error
	Get(ctx context.Context, token string) (models.Session, bool, error)
	Delete(ctx context.Context, token string) error
}

// Store issues and validates coordinator sessions. A session is valid for
// 24 hours from login; an expired record is deleted and treated as absent.
type Store struct {
	backend Backend
	now     func() time.Time
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

// NewStoreWithClock is for tests that need to control session age.
func NewStoreWithClock(backend Backend, now func() time.Time) *Store {
	return &Store{backend: backend, now: now}
}

// Login creates a new session for a coordinator phone number and returns
// it with a fresh opaque token.
func (s *Store) Login(ctx context.Context, phoneNumber string) (models.Session, error) {
	token, err := newToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	session := models.Session{
		Token:           token,
		PhoneNumber:     phoneNumber,
		LoginTime:       s.now().UnixMilli(),
		IsAuthenticated: true,
	}

	if err := s.backend.Put(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// Validate resolves a token to its session. An expired, malformed or
// unreadable session yields (zero, false) and the stored record is
// cleared.
func (s *Store) Validate(ctx context.Context, token string) (models.Session, bool) {
	if token == "" {
		return models.Session{}, false
	}

	session, found, err := s.backend.Get(ctx, token)
	if err != nil {
		log.Printf("[Auth] Session read failed, treating as unauthenticated: %v", err)
		s.clear(ctx, token)
		return models.Session{}, false
	}
	if !found {
		return models.Session{}, false
	}

	if session.ExpiredAt(s.now()) {
		s.clear(ctx, token)
		return models.Session{}, false
	}

	return session, true
}

// Logout removes a session. Missing tokens are not an error.
func (s *Store) Logout(ctx context.Context, token string) {
	s.clear(ctx, token)
}

func (s *Store) clear(ctx context.Context, token string) {
	if err := s.backend.Delete(ctx, token); err != nil {
		log.Printf("[Auth] Failed to clear session: %v", err)
	}
}

func newToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
