package matching

import (
	"context"
	"sort"

	"pet-match/internal/domain/matches"
	"pet-match/internal/domain/profiles"
)

// ProfileSource es la vista del repositorio de perfiles que usa el finder.
type ProfileSource interface {
	ListActive(ctx context.Context, excludeOwnerUserID string) ([]profiles.Profile, error)
}

// MatchSource expone los matches existentes de un perfil, en ambas direcciones.
type MatchSource interface {
	ListByProfiles(ctx context.Context, profileIDs []string, status matches.Status) ([]matches.Match, error)
}

// Candidate es un perfil compatible junto con su score.
type Candidate struct {
	Profile profiles.Profile
	Score   int
}

type Finder struct {
	profiles ProfileSource
	matches  MatchSource
}

func NewFinder(profileSrc ProfileSource, matchSrc MatchSource) *Finder {
	return &Finder{
		profiles: profileSrc,
		matches:  matchSrc,
	}
}

// FindCandidates devuelve perfiles compatibles con p, ordenados por score
// descendente. Un resultado vacío es un resultado normal, no un error.
//
// Pipeline: activos de otros dueños -> ventana de edad ±10 -> sin match
// previo (si excludeExistingMatches) -> score >= umbral -> orden estable.
func (f *Finder) FindCandidates(ctx context.Context, p profiles.Profile, excludeExistingMatches bool) ([]Candidate, error) {
	// Excluir al dueño también excluye al propio perfil de la consulta.
	pool, err := f.profiles.ListActive(ctx, p.OwnerUserID)
	if err != nil {
		return nil, err
	}

	var matched map[string]bool
	if excludeExistingMatches {
		// Cualquier estado cuenta como match existente.
		existing, err := f.matches.ListByProfiles(ctx, []string{p.ID}, "")
		if err != nil {
			return nil, err
		}
		matched = make(map[string]bool, len(existing))
		for _, m := range existing {
			if m.FromProfileID == p.ID {
				matched[m.ToProfileID] = true
			} else {
				matched[m.FromProfileID] = true
			}
		}
	}

	minAge := p.Age - 10
	if minAge < 0 {
		minAge = 0
	}
	maxAge := p.Age + 10

	out := make([]Candidate, 0, len(pool))
	for _, cand := range pool {
		if cand.ID == p.ID {
			continue
		}
		if cand.Age < minAge || cand.Age > maxAge {
			continue
		}
		if matched[cand.ID] {
			continue
		}

		score := Score(p, cand)
		if score < MinCompatibilityScore {
			continue
		}
		out = append(out, Candidate{Profile: cand, Score: score})
	}

	// Orden estable: los empates conservan el orden de entrada.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}
