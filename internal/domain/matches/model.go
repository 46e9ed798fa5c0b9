package matches

import "time"

// Status es el ciclo de vida de un match.
// pending -> accepted | declined; ambos estados son finales.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Match es una expresión de interés dirigida de un perfil hacia otro.
// El par invertido (to, from) es un registro distinto, no la misma fila.
type Match struct {
	ID string

	FromProfileID string
	ToProfileID   string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Statistics resume los matches de un usuario por estado.
type Statistics struct {
	PendingSent     int
	PendingReceived int
	Accepted        int
	Declined        int
	Total           int
}
