package validator

// RequiredSlice fails when the slice is empty.
func RequiredSlice[T any](field string, value []T) Rule {
	return newRule(field, "is required", "validation.required", nil, func() bool {
		return len(value) > 0
	})
}

// MinLenSlice fails when the slice has fewer than minItems elements.
func MinLenSlice[T any](field string, value []T, minItems int) Rule {
	return newRule(field, "has too few items", "validation.min_items", map[string]any{"min": minItems}, func() bool {
		return len(value) >= minItems
	})
}

// MaxLenSlice fails when the slice has more than maxItems elements.
func MaxLenSlice[T any](field string, value []T, maxItems int) Rule {
	return newRule(field, "has too many items", "validation.max_items", map[string]any{"max": maxItems}, func() bool {
		return len(value) <= maxItems
	})
}

// RequiredMap fails when the map is empty.
func RequiredMap[K comparable, V any](field string, value map[K]V) Rule {
	return newRule(field, "is required", "validation.required", nil, func() bool {
		return len(value) > 0
	})
}
