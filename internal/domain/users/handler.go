package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"poke-pets/internal/domain/catalog"
	"poke-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// SessionManager emite y revoca tokens de sesión (adapter auth/sessions).
// Interface local para no acoplar el módulo al adapter concreto.
type SessionManager interface {
	Issue(ctx context.Context, userID, username string) (string, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

func RegisterRoutes(r chi.Router, svc *Service, catalogSvc *catalog.Service, sessions SessionManager) {
	r.Post("/signup", signupHandler(svc, sessions))
	r.Post("/login", loginHandler(svc, sessions))
	r.Post("/logout", logoutHandler(sessions))

	// Perfil público
	r.Get("/users/{userID}", getUserHandler(svc))

	// Cuenta propia
	r.Get("/me", getMeHandler(svc))
	r.Patch("/me", updateMeHandler(svc))
	r.Delete("/me", deleteMeHandler(svc, sessions))

	// Pokedex: especies vistas vía adopciones
	r.Get("/me/pokedex", pokedexHandler(svc, catalogSvc))
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type meResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type sessionResponse struct {
	Token string     `json:"token"`
	User  meResponse `json:"user"`
}

type updateMeRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type seenSpeciesResponse struct {
	ID        int    `json:"id"`
	DexID     string `json:"dex_id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
	Type      string `json:"type"`
}

func signupHandler(svc *Service, sessions SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.SignUp(r.Context(), SignUpInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			switch err {
			case ErrUsernameTaken:
				http.Error(w, "username already taken", http.StatusConflict)
			case ErrEmailTaken:
				http.Error(w, "email already taken", http.StatusConflict)
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		// Como el flujo original: signup deja al usuario logueado.
		token, err := sessions.Issue(r.Context(), u.ID, u.Username)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{Token: token, User: toMeResponse(u)})
	}
}

func loginHandler(svc *Service, sessions SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := sessions.Issue(r.Context(), u.ID, u.Username)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: toMeResponse(u)})
	}
}

func logoutHandler(sessions SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_ = sessions.Revoke(r.Context(), token) // idempotente
		w.WriteHeader(http.StatusNoContent)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, userResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt})
	}
}

func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toMeResponse(u))
	}
}

func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateMeRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.UpdateProfile(r.Context(), claims.UserID, UpdateProfileInput{
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			switch err {
			case ErrUsernameTaken:
				http.Error(w, "username already taken", http.StatusConflict)
			case ErrEmailTaken:
				http.Error(w, "email already taken", http.StatusConflict)
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "user not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toMeResponse(u))
	}
}

func deleteMeHandler(svc *Service, sessions SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID); err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		_ = sessions.RevokeAllForUser(r.Context(), claims.UserID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func pokedexHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ids, err := svc.ListSeen(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]seenSpeciesResponse, 0, len(ids))
		for _, id := range ids {
			sp, err := catalogSvc.GetSpecies(r.Context(), id)
			if err != nil {
				// tolera referencias huérfanas (catálogo re-sembrado en dev)
				continue
			}
			out = append(out, seenSpeciesResponse{
				ID:        sp.ID,
				DexID:     sp.DexID(),
				Name:      sp.Name,
				SpriteURL: sp.SpriteURL,
				Type:      sp.Type,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toMeResponse(u User) meResponse {
	return meResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeJSON duplicado a propósito por módulo (ver nota en pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
