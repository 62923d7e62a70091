package validator

import (
	"maps"
	"slices"
)

// FormValidation maps field names to their rules.
type FormValidation map[string]FieldRule

// ValidationResult is the outcome of validating a whole form.
// Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid  bool
	Errors map[string]string

	details ValidationErrors
}

// ValidateForm validates every field with the default catalog.
func ValidateForm(rules FormValidation) ValidationResult {
	return defaultValidator.Form(rules)
}

// Form evaluates every field independently and collects one message per
// failing field. It has no side effects.
func (v *Validator) Form(rules FormValidation) ValidationResult {
	res := ValidationResult{Errors: make(map[string]string)}

	for _, name := range slices.Sorted(maps.Keys(rules)) {
		if verr, ok := v.check(name, rules[name]); !ok {
			res.Errors[name] = verr.Message
			res.details = append(res.details, verr)
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// Error returns the message of field, or "" when it passed.
func (r ValidationResult) Error(field string) string {
	return r.Errors[field]
}

// Fields returns the failing field names in sorted order.
func (r ValidationResult) Fields() []string {
	return slices.Sorted(maps.Keys(r.Errors))
}

// Err returns nil for a valid result and ValidationErrors ordered by field
// name otherwise.
func (r ValidationResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	if len(r.details) == len(r.Errors) {
		return slices.Clone(r.details)
	}

	errs := make(ValidationErrors, 0, len(r.Errors))
	for _, field := range r.Fields() {
		errs.Add(ValidationError{
			Field:             field,
			Message:           r.Errors[field],
			TranslationKey:    "validation.invalid",
			TranslationValues: map[string]any{"field": field},
		})
	}
	return errs
}
