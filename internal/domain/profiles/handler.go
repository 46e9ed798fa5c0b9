package profiles

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
	r.Route("/profiles", func(pr chi.Router) {
		pr.Post("/", createProfileHandler(svc))
		pr.Get("/", listMyProfilesHandler(svc))

		pr.Get("/{profileID}", getProfileHandler(svc))
		pr.Patch("/{profileID}", updateProfileHandler(svc))

		// Baja lógica (el perfil desaparece del discovery, el historial queda)
		pr.Post("/{profileID}/deactivate", deactivateProfileHandler(svc))
	})
}

type createProfileRequest struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`      // M | F
	Size        string `json:"size"`        // S | M | L
	Temperament string `json:"temperament"` // ej: "дружелюбный, энергичный"
	LookingFor  string `json:"looking_for"` // playmate | companion | mate | friendship
	Description string `json:"description"`
}

type updateProfileRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string `json:"name"`
	Breed       *string `json:"breed"`
	Age         *int    `json:"age"`
	Gender      *string `json:"gender"`
	Size        *string `json:"size"`
	Temperament *string `json:"temperament"`
	LookingFor  *string `json:"looking_for"`
	Description *string `json:"description"`
}

type profileResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Gender      Gender    `json:"gender"`
	Size        Size      `json:"size"`
	Temperament string    `json:"temperament"`
	LookingFor  Goal      `json:"looking_for"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func createProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Age:         req.Age,
			Gender:      req.Gender,
			Size:        req.Size,
			Temperament: req.Temperament,
			LookingFor:  req.LookingFor,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toProfileResponse(p))
	}
}

func listMyProfilesHandler(svc *Service) http.HandlerFunc {
	// Owner-only: perfiles propios, activos o no
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

		out := make([]profileResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProfileResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "profileID"))
		if err != nil {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		// Perfiles inactivos solo los ve su dueño.
		if !p.IsActive && p.OwnerUserID != claims.UserID {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateProfileRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "profileID"), claims.UserID, UpdateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Age:         req.Age,
			Gender:      req.Gender,
			Size:        req.Size,
			Temperament: req.Temperament,
			LookingFor:  req.LookingFor,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func deactivateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.Deactivate(r.Context(), chi.URLParam(r, "profileID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Size:        p.Size,
		Temperament: p.Temperament,
		LookingFor:  p.LookingFor,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos;
// si se repite en más lugares conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
