package validator

import (
	"strings"
	"unicode/utf8"
)

// FieldRule describes the validation requirements of one form field.
// MinLength and MaxLength are ignored when zero; lengths count runes.
type FieldRule struct {
	Value     string
	Required  bool
	Pattern   Matcher
	MinLength int
	MaxLength int
	Confirm   *Confirmation
	Custom    func(value string) bool

	// Kind selects the invalid-value message reported when Pattern fails.
	Kind FieldKind
	// Label replaces the field name in messages when set.
	Label string
	// CustomMessage is reported when Custom fails. Defaults to the
	// catalog's generic invalid message.
	CustomMessage string
}

// Confirmation links a field to the value it must repeat.
type Confirmation struct {
	Value string
	Field FieldKind
}

// Key is the catalog key of the mismatch message, e.g. "confirmPassword".
func (c Confirmation) Key() string {
	return c.Field.ConfirmKey()
}

// Validator evaluates field rules against a message catalog.
// The zero value is not usable; construct one with New.
type Validator struct {
	catalog Catalog
}

// Option configures a Validator.
type Option func(*Validator)

// WithCatalog merges c over the default catalog.
func WithCatalog(c Catalog) Option {
	return func(v *Validator) {
		v.catalog = v.catalog.Merge(c)
	}
}

// New creates a Validator using DefaultCatalog plus any overrides.
func New(opts ...Option) *Validator {
	v := &Validator{catalog: DefaultCatalog()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// ValidateField validates a single field with the default catalog and
// returns its error message, or an empty string when the field is valid.
func ValidateField(name string, rule FieldRule) string {
	return defaultValidator.Field(name, rule)
}

// Field returns the first failing rule's message, or "" when valid.
func (v *Validator) Field(name string, rule FieldRule) string {
	verr, ok := v.check(name, rule)
	if ok {
		return ""
	}
	return verr.Message
}

// check evaluates rule in a fixed order and stops at the first failure:
// required, min length, max length, pattern, confirmation, custom.
func (v *Validator) check(name string, rule FieldRule) (ValidationError, bool) {
	label := name
	if rule.Label != "" {
		label = rule.Label
	}
	fail := func(key, msg string, values map[string]any) (ValidationError, bool) {
		if values == nil {
			values = make(map[string]any, 1)
		}
		values["field"] = label
		return ValidationError{
			Field:             name,
			Message:           msg,
			TranslationKey:    "validation." + key,
			TranslationValues: values,
		}, false
	}

	if rule.Required && strings.TrimSpace(rule.Value) == "" {
		return fail("required", v.catalog.required(label), nil)
	}

	length := utf8.RuneCountInString(rule.Value)
	if rule.MinLength > 0 && length < rule.MinLength {
		return fail("min_length", v.catalog.minLength(label, rule.MinLength),
			map[string]any{"min": rule.MinLength})
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fail("max_length", v.catalog.maxLength(label, rule.MaxLength),
			map[string]any{"max": rule.MaxLength})
	}

	if rule.Pattern != nil && rule.Value != "" && !rule.Pattern.MatchString(rule.Value) {
		key := "invalid"
		if rule.Kind != KindGeneric {
			key = rule.Kind.String()
		}
		return fail(key, v.catalog.invalid(label, rule.Kind), nil)
	}

	if rule.Confirm != nil && rule.Value != rule.Confirm.Value {
		return fail(rule.Confirm.Key(), v.catalog.mismatch(rule.Confirm.Key()), nil)
	}

	if rule.Custom != nil && !rule.Custom(rule.Value) {
		msg := rule.CustomMessage
		if msg == "" {
			msg = v.catalog.invalid(label, KindGeneric)
		}
		return fail("custom", msg, nil)
	}

	return ValidationError{}, true
}

// Rule adapts the field rule to the composable Rule form used by Apply.
func (r FieldRule) Rule(name string) Rule {
	verr, ok := defaultValidator.check(name, r)
	return Rule{
		Check: func() bool { return ok },
		Error: verr,
	}
}
