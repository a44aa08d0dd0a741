package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"poke-pets/internal/domain/catalog"
	"poke-pets/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, catalogSvc *catalog.Service) {
	// Rutas planas: el módulo actions también cuelga de /pets/{petID},
	// así que acá no se monta un subrouter.
	r.Post("/pets", adoptHandler(svc, catalogSvc))
	r.Get("/pets", listPetsHandler(svc, catalogSvc))

	// Vitrina pública de mascotas existentes
	r.Get("/pets/showcase", showcaseHandler(svc, catalogSvc))

	r.Get("/pets/{petID}", getPetHandler(svc, catalogSvc))
	r.Delete("/pets/{petID}", releaseHandler(svc))

	// Berrydex: berries que la mascota probó alguna vez
	r.Get("/pets/{petID}/berrydex", berrydexHandler(svc, catalogSvc))
}

type adoptRequest struct {
	SpeciesID int    `json:"species_id"`
	Nickname  string `json:"nickname"`
}

type speciesSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
	Type      string `json:"type"`
}

type petResponse struct {
	ID          string          `json:"id"`
	OwnerUserID string          `json:"owner_user_id"`
	Nickname    string          `json:"nickname"`
	Species     *speciesSummary `json:"species,omitempty"`
	Hunger      int             `json:"hunger"`
	Happiness   int             `json:"happiness"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type tastedBerryResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"img_url"`
}

func adoptHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req adoptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Adopt(r.Context(), claims.UserID, AdoptInput{
			SpeciesID: req.SpeciesID,
			Nickname:  req.Nickname,
		})
		if err != nil {
			switch err {
			case ErrRosterFull:
				http.Error(w, "max amount of pets reached, release one first", http.StatusConflict)
			case ErrNicknameTaken:
				http.Error(w, "nickname already taken, pick another", http.StatusConflict)
			case ErrNotFound:
				http.Error(w, "species not found", http.StatusNotFound)
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(r, catalogSvc, p))
	}
}

func listPetsHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	// Solo el roster propio.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(r, catalogSvc, p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func showcaseHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Showcase(r.Context(), 15)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(r, catalogSvc, p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	// Detalle público (la vitrina linkea acá), igual que el show_pet original.
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(r, catalogSvc, p))
	}
}

func releaseHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		err := svc.Release(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			switch err {
			case ErrForbidden:
				http.Error(w, "forbidden", http.StatusForbidden)
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func berrydexHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if _, err := svc.GetByID(r.Context(), petID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		ids, err := svc.ListTasted(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]tastedBerryResponse, 0, len(ids))
		for _, id := range ids {
			b, err := catalogSvc.GetBerry(r.Context(), id)
			if err != nil {
				continue
			}
			out = append(out, tastedBerryResponse{ID: b.ID, Name: b.Name, ImageURL: b.ImageURL})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toPetResponse(r *http.Request, catalogSvc *catalog.Service, p Pet) petResponse {
	resp := petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Nickname:    p.Nickname,
		Hunger:      int(p.Hunger),
		Happiness:   int(p.Happiness),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	// Species es data de referencia: si falla el lookup, devolvemos el pet igual.
	if sp, err := catalogSvc.GetSpecies(r.Context(), p.SpeciesID); err == nil {
		resp.Species = &speciesSummary{
			ID:        sp.ID,
			Name:      sp.Name,
			SpriteURL: sp.SpriteURL,
			Type:      sp.Type,
		}
	}
	return resp
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
