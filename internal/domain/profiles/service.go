package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Breed       string
	Age         int
	Gender      string
	Size        string
	Temperament string
	LookingFor  string
	Description string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Profile, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Profile{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Profile{}, ErrInvalidInput
	}
	if in.Age < 0 {
		return Profile{}, ErrInvalidInput
	}

	gender, err := parseGender(in.Gender)
	if err != nil {
		return Profile{}, err
	}
	size, err := parseSize(in.Size)
	if err != nil {
		return Profile{}, err
	}
	goal, err := parseGoal(in.LookingFor)
	if err != nil {
		return Profile{}, err
	}

	now := s.now()
	p := Profile{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Gender:      gender,
		Size:        size,
		Temperament: strings.TrimSpace(in.Temperament),
		LookingFor:  goal,
		Description: strings.TrimSpace(in.Description),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Profile, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) ListActive(ctx context.Context, excludeOwnerUserID string) ([]Profile, error) {
	return s.repo.ListActive(ctx, excludeOwnerUserID)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string
	Breed       *string
	Age         *int
	Gender      *string
	Size        *string
	Temperament *string
	LookingFor  *string
	Description *string
}

// Update modifica el perfil. Solo el dueño puede hacerlo.
func (s *Service) Update(ctx context.Context, profileID, actingUserID string, in UpdateInput) (Profile, error) {
	p, err := s.GetByID(ctx, profileID)
	if err != nil {
		return Profile{}, err
	}
	if p.OwnerUserID != strings.TrimSpace(actingUserID) {
		return Profile{}, ErrForbidden
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Profile{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Profile{}, ErrInvalidInput
		}
		p.Age = *in.Age
	}
	if in.Gender != nil {
		gender, err := parseGender(*in.Gender)
		if err != nil {
			return Profile{}, err
		}
		p.Gender = gender
	}
	if in.Size != nil {
		size, err := parseSize(*in.Size)
		if err != nil {
			return Profile{}, err
		}
		p.Size = size
	}
	if in.LookingFor != nil {
		goal, err := parseGoal(*in.LookingFor)
		if err != nil {
			return Profile{}, err
		}
		p.LookingFor = goal
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Temperament != nil {
		p.Temperament = strings.TrimSpace(*in.Temperament)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Deactivate hace baja lógica del perfil; el historial de matches se conserva.
// Idempotente: desactivar un perfil ya inactivo devuelve el registro tal cual.
func (s *Service) Deactivate(ctx context.Context, profileID, actingUserID string) (Profile, error) {
	p, err := s.GetByID(ctx, profileID)
	if err != nil {
		return Profile{}, err
	}
	if p.OwnerUserID != strings.TrimSpace(actingUserID) {
		return Profile{}, ErrForbidden
	}

	if !p.IsActive {
		return p, nil
	}

	p.IsActive = false
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func parseGender(raw string) (Gender, error) {
	switch Gender(strings.TrimSpace(raw)) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", ErrInvalidInput
	}
}

func parseSize(raw string) (Size, error) {
	switch Size(strings.TrimSpace(raw)) {
	case SizeSmall:
		return SizeSmall, nil
	case SizeMedium:
		return SizeMedium, nil
	case SizeLarge:
		return SizeLarge, nil
	default:
		return "", ErrInvalidInput
	}
}

func parseGoal(raw string) (Goal, error) {
	switch Goal(strings.TrimSpace(raw)) {
	case GoalPlaymate:
		return GoalPlaymate, nil
	case GoalCompanion:
		return GoalCompanion, nil
	case GoalMate:
		return GoalMate, nil
	case GoalFriendship:
		return GoalFriendship, nil
	default:
		return "", ErrInvalidInput
	}
}
