package matching

import (
	"strings"

	"pet-match/internal/domain/profiles"
)

const (
	// MinCompatibilityScore es el umbral mínimo para surgir como candidato.
	MinCompatibilityScore = 30

	maxScore            = 100
	maxTemperamentScore = 15
)

// Score calcula la compatibilidad entre dos perfiles, de 0 a 100.
// Función pura y determinista: mismos inputs, mismo resultado.
func Score(a, b profiles.Profile) int {
	// Un perfil nunca es compatible consigo mismo.
	if a.ID == b.ID {
		return 0
	}

	total := float64(agePoints(a.Age, b.Age))
	total += float64(sizePoints(a.Size, b.Size))
	total += float64(genderPoints(a.Gender, b.Gender))
	total += float64(goalPoints(a.LookingFor, b.LookingFor))
	total += float64(breedPoints(a.Breed, b.Breed))

	t := temperamentPoints(a.Temperament, b.Temperament)
	if t > maxTemperamentScore {
		t = maxTemperamentScore
	}
	total += t

	if total > maxScore {
		total = maxScore
	}
	return int(total)
}

// agePoints: a menor diferencia de edad, más puntos (máx 25).
func agePoints(a, b int) int {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff <= 1:
		return 25
	case diff <= 3:
		return 20
	case diff <= 5:
		return 15
	case diff <= 8:
		return 10
	default:
		return 5
	}
}

var sizeCompatibility = map[[2]profiles.Size]int{
	{profiles.SizeSmall, profiles.SizeSmall}:   20,
	{profiles.SizeSmall, profiles.SizeMedium}:  15,
	{profiles.SizeSmall, profiles.SizeLarge}:   5,
	{profiles.SizeMedium, profiles.SizeSmall}:  15,
	{profiles.SizeMedium, profiles.SizeMedium}: 20,
	{profiles.SizeMedium, profiles.SizeLarge}:  15,
	{profiles.SizeLarge, profiles.SizeSmall}:   5,
	{profiles.SizeLarge, profiles.SizeMedium}:  15,
	{profiles.SizeLarge, profiles.SizeLarge}:   20,
}

// sizePoints (máx 20). Las 9 combinaciones válidas están en la tabla; el
// default 10 solo es alcanzable con valores fuera del enum.
func sizePoints(a, b profiles.Size) int {
	if pts, ok := sizeCompatibility[[2]profiles.Size{a, b}]; ok {
		return pts
	}
	return 10
}

// genderPoints (máx 15): sexos distintos puntúan más alto.
func genderPoints(a, b profiles.Gender) int {
	if a != b {
		return 15
	}
	return 10
}

var goalCompatibility = map[[2]profiles.Goal]int{
	{profiles.GoalPlaymate, profiles.GoalPlaymate}:     20,
	{profiles.GoalCompanion, profiles.GoalCompanion}:   20,
	{profiles.GoalMate, profiles.GoalMate}:             20,
	{profiles.GoalFriendship, profiles.GoalFriendship}: 20,
	{profiles.GoalPlaymate, profiles.GoalCompanion}:    15,
	{profiles.GoalCompanion, profiles.GoalPlaymate}:    15,
	{profiles.GoalPlaymate, profiles.GoalFriendship}:   15,
	{profiles.GoalFriendship, profiles.GoalPlaymate}:   15,
	{profiles.GoalCompanion, profiles.GoalFriendship}:  15,
	{profiles.GoalFriendship, profiles.GoalCompanion}:  15,
}

// goalPoints (máx 20). El default 10 cubre todo par no listado, en particular
// "mate" combinado con cualquier otra meta.
func goalPoints(a, b profiles.Goal) int {
	if pts, ok := goalCompatibility[[2]profiles.Goal{a, b}]; ok {
		return pts
	}
	return 10
}

// breedPoints (máx 5): bonus pequeño por raza idéntica, sin distinguir mayúsculas.
func breedPoints(a, b string) int {
	if strings.EqualFold(a, b) {
		return 5
	}
	return 0
}

// temperamentPoints suma por cada par de tags (uno de cada perfil):
// tag idéntico +7.5, par distinto dentro del subconjunto de afinidad +5.
// El llamador aplica el tope de 15 sobre el acumulado.
func temperamentPoints(a, b string) float64 {
	tagsA := temperamentTags(a)
	tagsB := temperamentTags(b)

	var pts float64
	for _, ta := range tagsA {
		for _, tb := range tagsB {
			switch {
			case ta == tb:
				pts += 7.5
			case affinityTags[ta] && affinityTags[tb]:
				pts += 5
			}
		}
	}
	return pts
}
