// Package sessions implementa auth.AuthVerifier con tokens de sesión locales.
// El módulo users emite tokens al loguear; el middleware los verifica acá.
// Store in-memory con TTL: las sesiones son efímeras, no se persisten.
package sessions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"poke-pets/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token invalid or expired")
)

const DefaultTTL = 24 * time.Hour

type session struct {
	userID    string
	username  string
	expiresAt time.Time
}

type Service struct {
	mu      sync.RWMutex
	byToken map[string]session

	ttl time.Duration
	now func() time.Time
}

func NewService(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		byToken: make(map[string]session),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue crea una sesión nueva y devuelve el token opaco.
func (s *Service) Issue(ctx context.Context, userID, username string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("sessions: user id required")
	}

	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = session{
		userID:    userID,
		username:  username,
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

// Verify implementa auth.AuthVerifier.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	s.mu.RLock()
	sess, ok := s.byToken[token]
	s.mu.RUnlock()

	if !ok || s.now().After(sess.expiresAt) {
		return auth.Claims{}, ErrTokenInvalid
	}

	return auth.Claims{UserID: sess.userID, Username: sess.username}, nil
}

// Revoke borra una sesión. Idempotente.
func (s *Service) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, strings.TrimSpace(token))
	return nil
}

// RevokeAllForUser borra todas las sesiones del usuario (delete de cuenta).
func (s *Service) RevokeAllForUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, sess := range s.byToken {
		if sess.userID == userID {
			delete(s.byToken, tok)
		}
	}
	return nil
}
