package favorites

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-match/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Put("/profiles/{profileID}/favorite", addFavoriteHandler(svc))
	r.Delete("/profiles/{profileID}/favorite", removeFavoriteHandler(svc))
	r.Get("/me/favorites", listFavoritesHandler(svc))
}

type favoriteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProfileID string    `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

func addFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		f, err := svc.Add(r.Context(), claims.UserID, chi.URLParam(r, "profileID"))
		if err != nil {
			writeFavoriteError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toFavoriteResponse(f))
	}
}

func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Remove(r.Context(), claims.UserID, chi.URLParam(r, "profileID")); err != nil {
			writeFavoriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			writeFavoriteError(w, err)
			return
		}

		out := make([]favoriteResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFavoriteResponse(f))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toFavoriteResponse(f Favorite) favoriteResponse {
	return favoriteResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		ProfileID: f.ProfileID,
		CreatedAt: f.CreatedAt,
	}
}

func writeFavoriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
