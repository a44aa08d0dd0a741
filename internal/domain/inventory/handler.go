package inventory

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
	// Inventario propio de berries.
	r.Get("/me/berries", listMyBerriesHandler(svc, catalogSvc))
}

type berryItemResponse struct {
	ID        string    `json:"id"`
	BerryID   int       `json:"berry_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"img_url"`
	CreatedAt time.Time `json:"created_at"`
}

func listMyBerriesHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]berryItemResponse, 0, len(items))
		for _, it := range items {
			resp := berryItemResponse{
				ID:        it.ID,
				BerryID:   it.BerryID,
				CreatedAt: it.CreatedAt,
			}
			if b, err := catalogSvc.GetBerry(r.Context(), it.BerryID); err == nil {
				resp.Name = b.Name
				resp.ImageURL = b.ImageURL
			}
			out = append(out, resp)
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
