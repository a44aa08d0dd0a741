package actions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"poke-pets/internal/domain/inventory"
	"poke-pets/internal/domain/pets"
	"poke-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets/{petID}/feed", feedSnackHandler(svc))
	r.Post("/pets/{petID}/feed/{itemID}", feedBerryHandler(svc))
	r.Post("/pets/{petID}/play", playHandler(svc))
	r.Post("/pets/{petID}/forage", forageHandler(svc))
}

type petStats struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Hunger    int    `json:"hunger"`
	Happiness int    `json:"happiness"`
}

type feedResponse struct {
	Outcome FeedOutcome `json:"outcome"`
	Pet     petStats    `json:"pet"`
	Message string      `json:"message"`
}

type playResponse struct {
	Outcome      PlayOutcome `json:"outcome"`
	Pet          petStats    `json:"pet"`
	AlreadyHappy bool        `json:"already_happy"`
	Message      string      `json:"message"`
}

type foundBerry struct {
	ItemID   string    `json:"item_id"`
	BerryID  int       `json:"berry_id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"img_url"`
	PickedAt time.Time `json:"picked_at"`
}

type forageResponse struct {
	Outcome ForageOutcome `json:"outcome"`
	Pet     petStats      `json:"pet"`
	Found   *foundBerry   `json:"found,omitempty"`
	Message string        `json:"message"`
}

func feedSnackHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.FeedSnack(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, feedResponse{
			Outcome: res.Outcome,
			Pet:     toPetStats(res.Pet),
			Message: res.Message,
		})
	}
}

func feedBerryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.FeedBerry(r.Context(),
			chi.URLParam(r, "petID"),
			chi.URLParam(r, "itemID"),
			claims.UserID,
		)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, feedResponse{
			Outcome: res.Outcome,
			Pet:     toPetStats(res.Pet),
			Message: res.Message,
		})
	}
}

func playHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.Play(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeActionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, playResponse{
			Outcome:      res.Outcome,
			Pet:          toPetStats(res.Pet),
			AlreadyHappy: res.AlreadyHappy,
			Message:      res.Message,
		})
	}
}

func forageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.Forage(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeActionError(w, err)
			return
		}

		out := forageResponse{
			Outcome: res.Outcome,
			Pet:     toPetStats(res.Pet),
			Message: res.Message,
		}
		if res.Outcome == ForageFound && res.Berry != nil && res.Item != nil {
			out.Found = &foundBerry{
				ItemID:   res.Item.ID,
				BerryID:  res.Berry.ID,
				Name:     res.Berry.Name,
				ImageURL: res.Berry.ImageURL,
				PickedAt: res.Item.CreatedAt,
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeActionError mapea sentinels de los módulos orquestados a status HTTP.
func writeActionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pets.ErrForbidden), errors.Is(err, inventory.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, pets.ErrNotFound), errors.Is(err, inventory.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrInvalidInput), errors.Is(err, inventory.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetStats(p pets.Pet) petStats {
	return petStats{
		ID:        p.ID,
		Nickname:  p.Nickname,
		Hunger:    int(p.Hunger),
		Happiness: int(p.Happiness),
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
