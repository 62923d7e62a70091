package forms

import (
	"log/slog"

	"github.com/dmitrymomot/authforms/pkg/sanitizer"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

// Recovery is the password-recovery form.
type Recovery struct {
	Email string `yaml:"email" json:"email"`
}

func (f *Recovery) FormName() string { return RecoveryForm }

func (f *Recovery) Fields() []string { return []string{FieldEmail} }

func (f *Recovery) Set(field, raw string) error {
	if field != FieldEmail {
		return unknownField(RecoveryForm, field)
	}
	f.Email = raw
	return nil
}

func (f *Recovery) Check(field string) (string, error) {
	if field != FieldEmail {
		return "", unknownField(RecoveryForm, field)
	}
	return checkEmail(f.Email), nil
}

func (f *Recovery) Rules() validator.FormValidation {
	return validator.FormValidation{FieldEmail: emailRule(f.Email)}
}

func (f *Recovery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("form", RecoveryForm),
		slog.String(FieldEmail, sanitizer.MaskEmail(f.Email)),
	)
}
