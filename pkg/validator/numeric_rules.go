package validator

// Numeric is the constraint accepted by numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// RequiredNum fails when value is the zero value.
func RequiredNum[T Numeric](field string, value T) Rule {
	return newRule(field, "is required", "validation.required", nil, func() bool {
		return value != 0
	})
}

// MinNum fails when value is less than minValue.
func MinNum[T Numeric](field string, value, minValue T) Rule {
	return newRule(field, "is too small", "validation.min", map[string]any{"min": minValue}, func() bool {
		return value >= minValue
	})
}

// MaxNum fails when value is greater than maxValue.
func MaxNum[T Numeric](field string, value, maxValue T) Rule {
	return newRule(field, "is too large", "validation.max", map[string]any{"max": maxValue}, func() bool {
		return value <= maxValue
	})
}
