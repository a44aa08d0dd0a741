package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/catalog", func(cr chi.Router) {
		// Pokedex completo (público, data de referencia).
		cr.Get("/species", listSpeciesHandler(svc))

		// Centro de adopción: muestra de especies al azar.
		cr.Get("/species/adoptable", adoptableSpeciesHandler(svc))

		cr.Get("/species/{speciesID}", getSpeciesHandler(svc))
		cr.Get("/berries", listBerriesHandler(svc))
	})
}

type speciesResponse struct {
	ID        int    `json:"id"`
	DexID     string `json:"dex_id"`
	Name      string `json:"name"`
	SpriteURL string `json:"sprite_url"`
	Type      string `json:"type"`
}

type berryResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"img_url"`
}

func listSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListSpecies(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]speciesResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toSpeciesResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func adoptableSpeciesHandler(svc *Service) http.HandlerFunc {
	// 3 especies al azar por defecto, como la vitrina original.
	return func(w http.ResponseWriter, r *http.Request) {
		count := 3
		if v := r.URL.Query().Get("count"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 12 {
				http.Error(w, "count must be 1..12", http.StatusBadRequest)
				return
			}
			count = n
		}

		items, err := svc.RandomAdoptables(r.Context(), count)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]speciesResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toSpeciesResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "speciesID"))
		if err != nil || id <= 0 {
			http.Error(w, "invalid species id", http.StatusBadRequest)
			return
		}

		s, err := svc.GetSpecies(r.Context(), id)
		if err != nil {
			http.Error(w, "species not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toSpeciesResponse(s))
	}
}

func listBerriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListBerries(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]berryResponse, 0, len(items))
		for _, b := range items {
			out = append(out, berryResponse{ID: b.ID, Name: b.Name, ImageURL: b.ImageURL})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toSpeciesResponse(s Species) speciesResponse {
	return speciesResponse{
		ID:        s.ID,
		DexID:     s.DexID(),
		Name:      s.Name,
		SpriteURL: s.SpriteURL,
		Type:      s.Type,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (mismo criterio que pets/users): todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
