package validator

// Rule pairs a check with the error reported when the check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates rules in order and returns ValidationErrors for every
// failed rule, or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}
		errs = append(errs, r.Error)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func newRule(field, message, key string, values map[string]any, check func() bool) Rule {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}
