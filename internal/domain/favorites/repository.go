package favorites

import "context"

type Repository interface {
	Create(ctx context.Context, f Favorite) error
	// Delete elimina el favorito del par (usuario, perfil) si existe.
	Delete(ctx context.Context, userID, profileID string) error
	GetByUserAndProfile(ctx context.Context, userID, profileID string) (Favorite, error)
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
}
