package matching

import "strings"

// Tag es una categoría canónica de carácter usada por el scorer.
type Tag string

const (
	TagFriendly   Tag = "friendly"
	TagEnergetic  Tag = "energetic"
	TagCalm       Tag = "calm"
	TagProtective Tag = "protective"
	TagObedient   Tag = "obedient"
)

// Taxonomía fija de carácter: cada tag canónico con sus formas escritas.
// Se carga una sola vez y es de solo lectura; nunca se muta en runtime.
var tagSurfaceForms = map[Tag][]string{
	TagFriendly:   {"дружелюбный", "дружелюбная", "общительный", "общительная"},
	TagEnergetic:  {"энергичный", "энергичная", "активный", "активная", "игривый", "игривая"},
	TagCalm:       {"спокойный", "спокойная", "мирный", "мирная", "уравновешенный", "уравновешенная"},
	TagProtective: {"защитный", "защитная", "сторожевой", "сторожевая"},
	TagObedient:   {"послушный", "послушная", "управляемый", "управляемая"},
}

// Orden de iteración determinista sobre la taxonomía.
var tagOrder = []Tag{TagFriendly, TagEnergetic, TagCalm, TagProtective, TagObedient}

// Pares distintos dentro de este subconjunto también suman afinidad.
var affinityTags = map[Tag]bool{
	TagFriendly:  true,
	TagEnergetic: true,
}

// temperamentTags devuelve los tags canónicos presentes en el texto.
// Un tag está presente si alguna de sus formas aparece en el texto en
// minúsculas; la presencia es booleana, múltiples formas no lo duplican.
func temperamentTags(text string) []Tag {
	lowered := strings.ToLower(text)

	out := make([]Tag, 0, len(tagOrder))
	for _, tag := range tagOrder {
		for _, form := range tagSurfaceForms[tag] {
			if strings.Contains(lowered, form) {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}
