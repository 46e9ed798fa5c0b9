package matching

import (
	"testing"

	"pet-match/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
)

func prof(id string, age int, size profiles.Size, gender profiles.Gender, goal profiles.Goal, breed, temperament string) profiles.Profile {
	return profiles.Profile{
		ID:          id,
		OwnerUserID: "owner-" + id,
		Name:        id,
		Age:         age,
		Size:        size,
		Gender:      gender,
		LookingFor:  goal,
		Breed:       breed,
		Temperament: temperament,
		IsActive:    true,
	}
}

func TestScore_SelfIsZero(t *testing.T) {
	p := prof("p1", 3, profiles.SizeMedium, profiles.GenderMale, profiles.GoalPlaymate, "корги", "дружелюбный")
	assert.Equal(t, 0, Score(p, p))
}

func TestScore_PerfectMatchScenario(t *testing.T) {
	// Edad idéntica, mismo tamaño, sexos distintos, misma meta, misma raza,
	// mismo carácter: 25+20+15+20+5+15 = 100.
	a := prof("a", 3, profiles.SizeMedium, profiles.GenderMale, profiles.GoalPlaymate, "корги", "дружелюбный энергичный")
	b := prof("b", 3, profiles.SizeMedium, profiles.GenderFemale, profiles.GoalPlaymate, "корги", "дружелюбный энергичный")

	assert.Equal(t, 100, Score(a, b))
	assert.Equal(t, Score(a, b), Score(b, a), "las tablas son simétricas")
}

func TestScore_WithinBounds(t *testing.T) {
	cases := []struct {
		a, b profiles.Profile
	}{
		{
			prof("a", 1, profiles.SizeSmall, profiles.GenderMale, profiles.GoalMate, "", ""),
			prof("b", 15, profiles.SizeLarge, profiles.GenderMale, profiles.GoalPlaymate, "", ""),
		},
		{
			prof("a", 7, profiles.SizeMedium, profiles.GenderFemale, profiles.GoalFriendship, "дворняга", "спокойная"),
			prof("b", 6, profiles.SizeMedium, profiles.GenderMale, profiles.GoalCompanion, "дворняга", "спокойный"),
		},
		{
			prof("a", 0, profiles.SizeSmall, profiles.GenderFemale, profiles.GoalCompanion, "пудель", "игривая общительная"),
			prof("b", 2, profiles.SizeSmall, profiles.GenderFemale, profiles.GoalCompanion, "Пудель", "активный дружелюбный"),
		},
	}

	for _, tc := range cases {
		s := Score(tc.a, tc.b)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestAgePoints(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{3, 3, 25},
		{3, 4, 25},
		{3, 6, 20},
		{3, 8, 15},
		{3, 11, 10},
		{3, 12, 5},
		{12, 3, 5}, // simétrico
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, agePoints(tc.a, tc.b), "ages %d vs %d", tc.a, tc.b)
	}
}

func TestSizePoints(t *testing.T) {
	cases := []struct {
		a, b profiles.Size
		want int
	}{
		{profiles.SizeSmall, profiles.SizeSmall, 20},
		{profiles.SizeMedium, profiles.SizeMedium, 20},
		{profiles.SizeLarge, profiles.SizeLarge, 20},
		{profiles.SizeSmall, profiles.SizeMedium, 15},
		{profiles.SizeMedium, profiles.SizeLarge, 15},
		{profiles.SizeSmall, profiles.SizeLarge, 5},
		{profiles.SizeLarge, profiles.SizeSmall, 5},
		// El default solo es alcanzable fuera del enum.
		{profiles.Size("X"), profiles.SizeSmall, 10},
		{profiles.Size(""), profiles.Size(""), 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sizePoints(tc.a, tc.b), "sizes %q vs %q", tc.a, tc.b)
	}
}

func TestGenderPoints(t *testing.T) {
	assert.Equal(t, 15, genderPoints(profiles.GenderMale, profiles.GenderFemale))
	assert.Equal(t, 15, genderPoints(profiles.GenderFemale, profiles.GenderMale))
	assert.Equal(t, 10, genderPoints(profiles.GenderMale, profiles.GenderMale))
}

func TestGoalPoints(t *testing.T) {
	cases := []struct {
		a, b profiles.Goal
		want int
	}{
		{profiles.GoalPlaymate, profiles.GoalPlaymate, 20},
		{profiles.GoalMate, profiles.GoalMate, 20},
		{profiles.GoalPlaymate, profiles.GoalCompanion, 15},
		{profiles.GoalFriendship, profiles.GoalPlaymate, 15},
		{profiles.GoalCompanion, profiles.GoalFriendship, 15},
		// Todo par con "mate" y otra meta cae al default.
		{profiles.GoalMate, profiles.GoalPlaymate, 10},
		{profiles.GoalFriendship, profiles.GoalMate, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, goalPoints(tc.a, tc.b), "goals %q vs %q", tc.a, tc.b)
	}
}

func TestBreedPoints(t *testing.T) {
	assert.Equal(t, 5, breedPoints("Корги", "корги"))
	assert.Equal(t, 0, breedPoints("корги", "пудель"))
}

func TestTemperamentTags_SynonymsDetectCanonicalTag(t *testing.T) {
	assert.Equal(t, []Tag{TagFriendly}, temperamentTags("очень общительная собака"))
	assert.Equal(t, []Tag{TagFriendly, TagEnergetic}, temperamentTags("дружелюбный, энергичный"))
	assert.Empty(t, temperamentTags("friendly"))
}

func TestTemperamentPoints(t *testing.T) {
	// Dos tags compartidos del subconjunto de afinidad:
	// (f,f)=7.5 + (f,e)=5 + (e,f)=5 + (e,e)=7.5 = 25 antes del tope.
	assert.InDelta(t, 25.0, temperamentPoints("дружелюбный энергичный", "дружелюбный энергичный"), 0.001)

	// Par de afinidad sin tag idéntico.
	assert.InDelta(t, 5.0, temperamentPoints("дружелюбный", "энергичный"), 0.001)

	// Tags sin relación.
	assert.InDelta(t, 0.0, temperamentPoints("спокойный", "защитный"), 0.001)

	// Tag idéntico único.
	assert.InDelta(t, 7.5, temperamentPoints("послушный", "послушная"), 0.001)
}

func TestScore_TemperamentClampedAt15(t *testing.T) {
	// Base conocida: edad diff 20 (5) + S/L (5) + mismo sexo (10) +
	// mate/playmate (10) + raza distinta (0) = 30. Carácter completo en
	// ambos acumula 47.5 y el tope lo deja en 15 => 45 total.
	full := "дружелюбный энергичный спокойный защитный послушный"
	a := prof("a", 1, profiles.SizeSmall, profiles.GenderMale, profiles.GoalMate, "корги", full)
	b := prof("b", 21, profiles.SizeLarge, profiles.GenderMale, profiles.GoalPlaymate, "пудель", full)

	assert.Equal(t, 45, Score(a, b))
}
