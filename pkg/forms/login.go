package forms

import (
	"log/slog"
	"unicode/utf8"

	"github.com/dmitrymomot/authforms/pkg/sanitizer"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

// LoginPasswordMinLength is the shortest password the login form accepts.
const LoginPasswordMinLength = 6

const (
	msgLoginPasswordShort  = "A senha deve ter no mínimo 6 caracteres"
	msgLoginPasswordLetter = "A senha deve conter pelo menos uma letra"
)

// Login is the sign-in form. It checks shape only; credentials are
// verified elsewhere.
type Login struct {
	Email    string `yaml:"email" json:"email"`
	Password string `yaml:"password" json:"password"`
}

func (l *Login) FormName() string { return LoginForm }

func (l *Login) Fields() []string { return []string{FieldEmail, FieldPassword} }

func (l *Login) Set(field, raw string) error {
	switch field {
	case FieldEmail:
		l.Email = raw
	case FieldPassword:
		l.Password = raw
	default:
		return unknownField(LoginForm, field)
	}
	return nil
}

func (l *Login) Check(field string) (string, error) {
	switch field {
	case FieldEmail:
		return checkEmail(l.Email), nil
	case FieldPassword:
		switch {
		case l.Password == "":
			return msgFieldRequired, nil
		case utf8.RuneCountInString(l.Password) < LoginPasswordMinLength:
			return msgLoginPasswordShort, nil
		case !hasASCIILetter(l.Password):
			return msgLoginPasswordLetter, nil
		}
		return "", nil
	}
	return "", unknownField(LoginForm, field)
}

func (l *Login) Rules() validator.FormValidation {
	return validator.FormValidation{
		FieldEmail: emailRule(l.Email),
		FieldPassword: {
			Value:         l.Password,
			Required:      true,
			Label:         "senha",
			MinLength:     LoginPasswordMinLength,
			Custom:        hasASCIILetter,
			CustomMessage: msgLoginPasswordLetter,
		},
	}
}

func (l *Login) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("form", LoginForm),
		slog.String(FieldEmail, sanitizer.MaskEmail(l.Email)),
	)
}

func checkEmail(email string) string {
	if email == "" {
		return msgFieldRequired
	}
	if !validator.ValidateEmail(email) {
		return msgEmailInvalid
	}
	return ""
}

func emailRule(email string) validator.FieldRule {
	return validator.FieldRule{
		Value:    email,
		Required: true,
		Pattern:  validator.EmailPattern,
		Kind:     validator.KindEmail,
	}
}
