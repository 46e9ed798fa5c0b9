package profiles

import "context"

type Repository interface {
	Create(ctx context.Context, p Profile) error
	Update(ctx context.Context, p Profile) error
	GetByID(ctx context.Context, id string) (Profile, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Profile, error)
	// ListActive devuelve perfiles activos excluyendo todos los del owner dado.
	ListActive(ctx context.Context, excludeOwnerUserID string) ([]Profile, error)
}
