package favorites

import "time"

// Favorite marca un perfil como guardado por un usuario.
// Único por (usuario, perfil).
type Favorite struct {
	ID string

	UserID    string
	ProfileID string

	CreatedAt time.Time
}
