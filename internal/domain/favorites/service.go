package favorites

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-match/internal/domain/profiles"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ProfileDirectory es la vista del módulo de perfiles que necesita favorites.
type ProfileDirectory interface {
	GetByID(ctx context.Context, id string) (profiles.Profile, error)
}

type Service struct {
	repo     Repository
	profiles ProfileDirectory
	now      func() time.Time
}

func NewService(repo Repository, dir ProfileDirectory) *Service {
	return &Service{
		repo:     repo,
		profiles: dir,
		now:      time.Now,
	}
}

// Add guarda el perfil como favorito del usuario.
// Idempotente: si ya era favorito, devuelve el registro existente.
func (s *Service) Add(ctx context.Context, userID, profileID string) (Favorite, error) {
	userID = strings.TrimSpace(userID)
	profileID = strings.TrimSpace(profileID)

	if userID == "" || profileID == "" {
		return Favorite{}, ErrInvalidInput
	}

	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil || !p.IsActive {
		return Favorite{}, ErrNotFound
	}

	if existing, err := s.repo.GetByUserAndProfile(ctx, userID, profileID); err == nil {
		return existing, nil
	}

	f := Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProfileID: profileID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Favorite{}, err
	}
	return f, nil
}

// Remove quita el favorito. Idempotente: quitar uno inexistente no es error.
func (s *Service) Remove(ctx context.Context, userID, profileID string) error {
	userID = strings.TrimSpace(userID)
	profileID = strings.TrimSpace(profileID)

	if userID == "" || profileID == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, userID, profileID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}
