package core

// The vocabularies cover every food seen in the shipped people.json, plus lettuce.
var (
	fruits = map[string]struct{}{
		"apple":      {},
		"banana":     {},
		"orange":     {},
		"strawberry": {},
	}

	vegetables = map[string]struct{}{
		"beetroot": {},
		"carrot":   {},
		"celery":   {},
		"cucumber": {},
		"lettuce":  {},
	}
)

// IsFruit reports whether food belongs to the fruit vocabulary.
func IsFruit(food string) bool {
	_, ok := fruits[food]
	return ok
}

// IsVegetable reports whether food belongs to the vegetable vocabulary.
func IsVegetable(food string) bool {
	_, ok := vegetables[food]
	return ok
}
