package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username taken")
	ErrEmailTaken         = errors.New("email taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLen = 6

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type SignUpInput struct {
	Username string
	Email    string
	Password string
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || len(username) > 20 {
		return User{}, ErrInvalidInput
	}
	if email == "" || !strings.Contains(email, "@") || len(email) > 50 {
		return User{}, ErrInvalidInput
	}
	if len(in.Password) < minPasswordLen {
		return User{}, ErrInvalidInput
	}

	// Chequeos read-then-write; el unique index del adapter es la red final.
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, ErrUsernameTaken
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate devuelve el usuario si username+password coinciden.
// Misma respuesta para usuario inexistente y password errónea.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Username *string
	Email    *string
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" || len(username) > 20 {
			return User{}, ErrInvalidInput
		}
		if username != u.Username {
			if other, err := s.repo.GetByUsername(ctx, username); err == nil && other.ID != u.ID {
				return User{}, ErrUsernameTaken
			}
			u.Username = username
		}
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" || !strings.Contains(email, "@") || len(email) > 50 {
			return User{}, ErrInvalidInput
		}
		if email != u.Email {
			if other, err := s.repo.GetByEmail(ctx, email); err == nil && other.ID != u.ID {
				return User{}, ErrEmailTaken
			}
			u.Email = email
		}
	}

	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return ErrNotFound
	}
	return nil
}

// AddSeen registra una especie en el pokedex del usuario (insert idempotente).
func (s *Service) AddSeen(ctx context.Context, userID string, speciesID int) error {
	if strings.TrimSpace(userID) == "" || speciesID <= 0 {
		return ErrInvalidInput
	}
	return s.repo.AddSeenSpecies(ctx, userID, speciesID)
}

func (s *Service) ListSeen(ctx context.Context, userID string) ([]int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListSeenSpecies(ctx, userID)
}
