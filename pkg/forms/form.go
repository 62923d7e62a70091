package forms

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

// Form names accepted by New and Decode.
const (
	RegisterForm = "register"
	LoginForm    = "login"
	RecoveryForm = "recovery"
)

// Field names shared by the forms.
const (
	FieldName            = "name"
	FieldPhone           = "phone"
	FieldNationalID      = "nationalId"
	FieldEmail           = "email"
	FieldConfirmEmail    = "confirmEmail"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Inline messages shown when a field loses focus.
const (
	msgFieldRequired = "Este campo é obrigatório"
	msgEmailInvalid  = "Por favor, insira um email válido"
)

// Form is a single authentication form.
type Form interface {
	// FormName returns the form name, e.g. "register".
	FormName() string
	// Fields lists the field names in display order.
	Fields() []string
	// Set stores raw input for field, applying the field's input mask.
	Set(field, raw string) error
	// Check validates one field on blur. It returns "" when valid.
	Check(field string) (string, error)
	// Rules describes the whole form for submit-time validation.
	Rules() validator.FormValidation
}

var factories = map[string]func() Form{
	RegisterForm: func() Form { return &Register{} },
	LoginForm:    func() Form { return &Login{} },
	RecoveryForm: func() Form { return &Recovery{} },
}

// Names returns the known form names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(factories))
}

// New returns an empty form by name.
func New(name string) (Form, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownForm, name, strings.Join(Names(), ", "))
	}
	return factory(), nil
}

// Decode reads a YAML or JSON mapping of field name to value into a new form.
// Values pass through Set, so masked fields are formatted and unknown
// fields are rejected.
func Decode(name string, r io.Reader) (Form, error) {
	f, err := New(name)
	if err != nil {
		return nil, err
	}

	var values map[string]string
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrDecode, err)
	}

	for _, field := range slices.Sorted(maps.Keys(values)) {
		if err := f.Set(field, values[field]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Validate runs submit-time validation with the default message catalog.
func Validate(f Form) validator.ValidationResult {
	return validator.ValidateForm(f.Rules())
}

// ValidateWith runs submit-time validation with v.
func ValidateWith(v *validator.Validator, f Form) validator.ValidationResult {
	return v.Form(f.Rules())
}

func unknownField(form, field string) error {
	return fmt.Errorf("%w: %q in %s form", ErrUnknownField, field, form)
}

func hasASCIILetter(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}
