package matches

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
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// ProfileDirectory es la vista del módulo de perfiles que necesita el lifecycle.
// *profiles.Service la satisface.
type ProfileDirectory interface {
	GetByID(ctx context.Context, id string) (profiles.Profile, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]profiles.Profile, error)
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

// Create crea el match (from -> to) en estado pending.
// Idempotente sobre el par ordenado: si ya existe, devuelve el registro tal
// cual. No consulta el par inverso; (to -> from) es un match distinto.
func (s *Service) Create(ctx context.Context, fromProfileID, toProfileID string) (Match, error) {
	fromProfileID = strings.TrimSpace(fromProfileID)
	toProfileID = strings.TrimSpace(toProfileID)

	if fromProfileID == "" || toProfileID == "" {
		return Match{}, ErrInvalidInput
	}
	if fromProfileID == toProfileID {
		return Match{}, ErrInvalidInput
	}

	if existing, err := s.repo.FindByPair(ctx, fromProfileID, toProfileID); err == nil {
		return existing, nil
	}

	now := s.now()
	m := Match{
		ID:            uuid.NewString(),
		FromProfileID: fromProfileID,
		ToProfileID:   toProfileID,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Match{}, err
	}
	return m, nil
}

// CreateForUser valida permisos antes de crear:
// - el perfil origen debe existir, estar activo y pertenecer al usuario
// - no se permite match consigo mismo ni entre perfiles del mismo dueño
// - el perfil destino debe existir y estar activo
func (s *Service) CreateForUser(ctx context.Context, actingUserID, fromProfileID, toProfileID string) (Match, error) {
	actingUserID = strings.TrimSpace(actingUserID)
	fromProfileID = strings.TrimSpace(fromProfileID)
	toProfileID = strings.TrimSpace(toProfileID)

	if actingUserID == "" || fromProfileID == "" || toProfileID == "" {
		return Match{}, ErrInvalidInput
	}

	from, err := s.profiles.GetByID(ctx, fromProfileID)
	if err != nil || !from.IsActive || from.OwnerUserID != actingUserID {
		return Match{}, ErrForbidden
	}
	if fromProfileID == toProfileID {
		return Match{}, ErrForbidden
	}

	to, err := s.profiles.GetByID(ctx, toProfileID)
	if err != nil || !to.IsActive {
		return Match{}, ErrNotFound
	}
	if to.OwnerUserID == from.OwnerUserID {
		return Match{}, ErrForbidden
	}

	return s.Create(ctx, fromProfileID, toProfileID)
}

// Accept acepta un match pending. Si el match inverso existe y también está
// pending, ambos pasan a accepted en una sola operación atómica (interés
// recíproco => conexión mutua). Devuelve false sin cambios si el match ya
// está en un estado final.
func (s *Service) Accept(ctx context.Context, matchID string) (bool, error) {
	m, err := s.repo.GetByID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return false, ErrNotFound
	}
	return s.accept(ctx, m)
}

// AcceptForUser exige que el usuario sea dueño de alguno de los dos extremos.
func (s *Service) AcceptForUser(ctx context.Context, actingUserID, matchID string) (bool, error) {
	m, err := s.authorize(ctx, actingUserID, matchID)
	if err != nil {
		return false, err
	}
	return s.accept(ctx, m)
}

func (s *Service) accept(ctx context.Context, m Match) (bool, error) {
	if m.Status != StatusPending {
		return false, nil
	}

	now := s.now()
	m.Status = StatusAccepted
	m.UpdatedAt = now

	reverse, err := s.repo.FindByPair(ctx, m.ToProfileID, m.FromProfileID)
	if err == nil && reverse.Status == StatusPending {
		// Simpatía mutua: las dos direcciones se aceptan juntas o ninguna.
		reverse.Status = StatusAccepted
		reverse.UpdatedAt = now
		if err := s.repo.UpdatePair(ctx, m, reverse); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return false, err
	}
	return true, nil
}

// Decline rechaza solo el registro dado; no tiene efecto recíproco.
// Devuelve false sin cambios si el match ya está en un estado final.
func (s *Service) Decline(ctx context.Context, matchID string) (bool, error) {
	m, err := s.repo.GetByID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return false, ErrNotFound
	}
	return s.decline(ctx, m)
}

func (s *Service) DeclineForUser(ctx context.Context, actingUserID, matchID string) (bool, error) {
	m, err := s.authorize(ctx, actingUserID, matchID)
	if err != nil {
		return false, err
	}
	return s.decline(ctx, m)
}

func (s *Service) decline(ctx context.Context, m Match) (bool, error) {
	if m.Status != StatusPending {
		return false, nil
	}

	m.Status = StatusDeclined
	m.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, m); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) GetByID(ctx context.Context, matchID string) (Match, error) {
	m, err := s.repo.GetByID(ctx, strings.TrimSpace(matchID))
	if err != nil {
		return Match{}, ErrNotFound
	}
	return m, nil
}

// MutualForUser lista los matches accepted donde el usuario es dueño de
// alguno de los extremos.
func (s *Service) MutualForUser(ctx context.Context, userID string) ([]Match, error) {
	return s.ListForUser(ctx, userID, StatusAccepted)
}

// PendingForUser lista los matches pending donde el usuario es dueño de
// alguno de los extremos.
func (s *Service) PendingForUser(ctx context.Context, userID string) ([]Match, error) {
	return s.ListForUser(ctx, userID, StatusPending)
}

// ListForUser lista matches del usuario; status vacío = cualquier estado.
func (s *Service) ListForUser(ctx context.Context, userID string, status Status) ([]Match, error) {
	ids, err := s.ownedProfileIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Match{}, nil
	}
	return s.repo.ListByProfiles(ctx, ids, status)
}

// authorize carga el match y verifica que el usuario sea dueño de alguno de
// los dos extremos. La propiedad vale aunque el perfil esté inactivo.
func (s *Service) authorize(ctx context.Context, actingUserID, matchID string) (Match, error) {
	actingUserID = strings.TrimSpace(actingUserID)
	matchID = strings.TrimSpace(matchID)

	if actingUserID == "" || matchID == "" {
		return Match{}, ErrInvalidInput
	}

	m, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return Match{}, ErrNotFound
	}

	if !s.ownsEndpoint(ctx, actingUserID, m) {
		return Match{}, ErrForbidden
	}
	return m, nil
}

func (s *Service) ownsEndpoint(ctx context.Context, userID string, m Match) bool {
	if p, err := s.profiles.GetByID(ctx, m.FromProfileID); err == nil && p.OwnerUserID == userID {
		return true
	}
	if p, err := s.profiles.GetByID(ctx, m.ToProfileID); err == nil && p.OwnerUserID == userID {
		return true
	}
	return false
}

func (s *Service) ownedProfileIDs(ctx context.Context, userID string) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	owned, err := s.profiles.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(owned))
	for _, p := range owned {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
