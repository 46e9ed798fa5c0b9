package matches

import "context"

type Repository interface {
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	// UpdatePair persiste ambos registros de forma atómica: o los dos, o ninguno.
	// Es el soporte de la reconciliación mutua en Accept.
	UpdatePair(ctx context.Context, a, b Match) error
	GetByID(ctx context.Context, id string) (Match, error)
	// FindByPair busca el match del par ordenado (from, to).
	FindByPair(ctx context.Context, fromProfileID, toProfileID string) (Match, error)
	// ListByProfiles devuelve, sin duplicar, los matches donde alguno de los
	// perfiles dados participa en cualquiera de los dos extremos.
	// status vacío = cualquier estado.
	ListByProfiles(ctx context.Context, profileIDs []string, status Status) ([]Match, error)
}
