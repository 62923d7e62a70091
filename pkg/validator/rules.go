package validator

import "strings"

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        defaultValidator.catalog.required(field),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func Email(field, value string) Rule {
	return kindRule(field, value, KindEmail)
}

func Phone(field, value string) Rule {
	return kindRule(field, value, KindPhone)
}

// NationalID validates both the mask and the check digits.
func NationalID(field, value string) Rule {
	return kindRule(field, value, KindNationalID)
}

func Password(field, value string) Rule {
	return kindRule(field, value, KindPassword)
}

func Name(field, value string) Rule {
	return kindRule(field, value, KindName)
}

// Matches validates value against m. Empty values fail.
func Matches(field, value string, m Matcher, message string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && m.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Confirms validates that value repeats the value of a field of kind.
func Confirms(field, value string, confirmed Confirmation) Rule {
	return Rule{
		Check: func() bool {
			return value == confirmed.Value
		},
		Error: ValidationError{
			Field:          field,
			Message:        defaultValidator.catalog.mismatch(confirmed.Key()),
			TranslationKey: "validation." + confirmed.Key(),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func kindRule(field, value string, kind FieldKind) Rule {
	return Rule{
		Check: func() bool {
			return ValidateKind(kind, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        defaultValidator.catalog.invalid(field, kind),
			TranslationKey: "validation." + kind.String(),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
