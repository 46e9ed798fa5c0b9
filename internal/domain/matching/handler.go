package matching

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-match/internal/domain/profiles"
	"pet-match/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, finder *Finder, profilesSvc *profiles.Service) {
	// Discovery de candidatos para un perfil propio
	r.Get("/profiles/{profileID}/candidates", findCandidatesHandler(finder, profilesSvc))
}

type candidateResponse struct {
	ProfileID   string          `json:"profile_id"`
	Name        string          `json:"name"`
	Breed       string          `json:"breed"`
	Age         int             `json:"age"`
	Gender      profiles.Gender `json:"gender"`
	Size        profiles.Size   `json:"size"`
	Temperament string          `json:"temperament"`
	LookingFor  profiles.Goal   `json:"looking_for"`
	Score       int             `json:"score"`
	CreatedAt   time.Time       `json:"created_at"`
}

func findCandidatesHandler(finder *Finder, profilesSvc *profiles.Service) http.HandlerFunc {
	// Solo el dueño del perfil puede pedir sus candidatos.
	// ?include_matched=true desactiva el filtro de matches existentes.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := profilesSvc.GetByID(r.Context(), chi.URLParam(r, "profileID"))
		if err != nil {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		if p.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		excludeMatched := r.URL.Query().Get("include_matched") != "true"

		candidates, err := finder.FindCandidates(r.Context(), p, excludeMatched)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]candidateResponse, 0, len(candidates))
		for _, c := range candidates {
			out = append(out, candidateResponse{
				ProfileID:   c.Profile.ID,
				Name:        c.Profile.Name,
				Breed:       c.Profile.Breed,
				Age:         c.Profile.Age,
				Gender:      c.Profile.Gender,
				Size:        c.Profile.Size,
				Temperament: c.Profile.Temperament,
				LookingFor:  c.Profile.LookingFor,
				Score:       c.Score,
				CreatedAt:   c.Profile.CreatedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
