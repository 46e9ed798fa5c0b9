package profiles

import "time"

// Gender define el sexo del perfil.
// @Enum M, F
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Size define el tamaño del animal.
// @Enum S, M, L
type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Goal define qué busca el perfil en un encuentro.
// @Enum playmate, companion, mate, friendship
type Goal string

const (
	GoalPlaymate   Goal = "playmate"
	GoalCompanion  Goal = "companion"
	GoalMate       Goal = "mate"
	GoalFriendship Goal = "friendship"
)

// Profile representa un animal registrado y elegible para matching.
type Profile struct {
	ID          string
	OwnerUserID string

	Name        string
	Breed       string
	Age         int // años, >= 0
	Gender      Gender
	Size        Size
	Temperament string // frase libre; el scorer la compara en minúsculas
	LookingFor  Goal
	Description string

	// Baja lógica: nunca se borra el perfil, para preservar el historial de matches.
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
