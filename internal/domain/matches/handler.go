package matches

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-match/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/matches", func(mr chi.Router) {
		mr.Post("/", createMatchHandler(svc))
		mr.Post("/{matchID}/accept", acceptMatchHandler(svc))
		mr.Post("/{matchID}/decline", declineMatchHandler(svc))
	})

	r.Get("/me/matches/mutual", listMutualHandler(svc))
	r.Get("/me/matches/pending", listPendingHandler(svc))
	r.Get("/me/matches/stats", statsHandler(svc))
}

type createMatchRequest struct {
	FromProfileID string `json:"from_profile_id"`
	ToProfileID   string `json:"to_profile_id"`
}

type matchResponse struct {
	ID            string    `json:"id"`
	FromProfileID string    `json:"from_profile_id"`
	ToProfileID   string    `json:"to_profile_id"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type transitionResponse struct {
	// Updated es false cuando el match ya estaba en un estado final (no-op).
	Updated bool   `json:"updated"`
	Status  Status `json:"status"`
}

type statisticsResponse struct {
	PendingSent     int `json:"pending_sent"`
	PendingReceived int `json:"pending_received"`
	Accepted        int `json:"accepted"`
	Declined        int `json:"declined"`
	Total           int `json:"total"`
}

func createMatchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.CreateForUser(r.Context(), claims.UserID, req.FromProfileID, req.ToProfileID)
		if err != nil {
			writeMatchError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toMatchResponse(m))
	}
}

func acceptMatchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transitionHandler(w, r, svc, svc.AcceptForUser)
	}
}

func declineMatchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transitionHandler(w, r, svc, svc.DeclineForUser)
	}
}

func transitionHandler(
	w http.ResponseWriter,
	r *http.Request,
	svc *Service,
	op func(ctx context.Context, actingUserID, matchID string) (bool, error),
) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	matchID := chi.URLParam(r, "matchID")
	updated, err := op(r.Context(), claims.UserID, matchID)
	if err != nil {
		writeMatchError(w, err)
		return
	}

	m, err := svc.GetByID(r.Context(), matchID)
	if err != nil {
		writeMatchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, transitionResponse{Updated: updated, Status: m.Status})
}

func listMutualHandler(svc *Service) http.HandlerFunc {
	return listHandler(svc.MutualForUser)
}

func listPendingHandler(svc *Service) http.HandlerFunc {
	return listHandler(svc.PendingForUser)
}

func listHandler(list func(ctx context.Context, userID string) ([]Match, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := list(r.Context(), claims.UserID)
		if err != nil {
			writeMatchError(w, err)
			return
		}

		out := make([]matchResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMatchResponse(m))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		st, err := svc.StatisticsForUser(r.Context(), claims.UserID)
		if err != nil {
			writeMatchError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statisticsResponse{
			PendingSent:     st.PendingSent,
			PendingReceived: st.PendingReceived,
			Accepted:        st.Accepted,
			Declined:        st.Declined,
			Total:           st.Total,
		})
	}
}

func toMatchResponse(m Match) matchResponse {
	return matchResponse{
		ID:            m.ID,
		FromProfileID: m.FromProfileID,
		ToProfileID:   m.ToProfileID,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func writeMatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "match not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
