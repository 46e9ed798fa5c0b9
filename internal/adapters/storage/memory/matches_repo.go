package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-match/internal/domain/matches"
)

type matchRepo struct {
	mu   sync.RWMutex
	byID map[string]matches.Match
}

func NewMatchRepo() matches.Repository {
	return &matchRepo{
		byID: make(map[string]matches.Match),
	}
}

func (r *matchRepo) Create(ctx context.Context, m matches.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("match id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("match already exists")
	}

	// Unicidad del par ordenado, como el índice único en Postgres.
	for _, other := range r.byID {
		if other.FromProfileID == m.FromProfileID && other.ToProfileID == m.ToProfileID {
			return errors.New("match already exists for pair")
		}
	}

	r.byID[m.ID] = m
	return nil
}

func (r *matchRepo) Update(ctx context.Context, m matches.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("match id required")
	}
	if _, exists := r.byID[m.ID]; !exists {
		return ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

// UpdatePair muta ambos registros bajo el mismo lock: si alguno no existe,
// no se toca ninguno.
func (r *matchRepo) UpdatePair(ctx context.Context, a, b matches.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	if _, exists := r.byID[b.ID]; !exists {
		return ErrNotFound
	}

	r.byID[a.ID] = a
	r.byID[b.ID] = b
	return nil
}

func (r *matchRepo) GetByID(ctx context.Context, id string) (matches.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return matches.Match{}, ErrNotFound
	}
	return m, nil
}

func (r *matchRepo) FindByPair(ctx context.Context, fromProfileID, toProfileID string) (matches.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.byID {
		if m.FromProfileID == fromProfileID && m.ToProfileID == toProfileID {
			return m, nil
		}
	}
	return matches.Match{}, ErrNotFound
}

func (r *matchRepo) ListByProfiles(ctx context.Context, profileIDs []string, status matches.Status) ([]matches.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make(map[string]bool, len(profileIDs))
	for _, id := range profileIDs {
		ids[id] = true
	}

	out := make([]matches.Match, 0)
	for _, m := range r.byID {
		if !ids[m.FromProfileID] && !ids[m.ToProfileID] {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		// La iteración es por ID de match: cada registro entra una sola vez
		// aunque ambos extremos estén en la consulta.
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
