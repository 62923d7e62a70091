package forms

import (
	"log/slog"
	"unicode/utf8"

	"github.com/dmitrymomot/authforms/pkg/sanitizer"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

const (
	msgEmailMismatch     = "Os emails não correspondem"
	msgPasswordMismatch  = "As senhas não correspondem"
	msgPasswordWeak      = "A senha deve conter pelo menos 8 caracteres, incluindo letras, números e caracteres especiais"
	msgNationalIDFormat  = "CPF deve estar no formato XXX.XXX.XXX-XX"
	msgNationalIDInvalid = "CPF inválido"
	msgPhoneInvalid      = "Por favor, insira um telefone válido"
	msgNameInvalid       = "Por favor, insira um nome válido"
)

// Register is the account registration form.
type Register struct {
	Name            string `yaml:"name" json:"name"`
	Phone           string `yaml:"phone" json:"phone"`
	NationalID      string `yaml:"nationalId" json:"nationalId"`
	Email           string `yaml:"email" json:"email"`
	ConfirmEmail    string `yaml:"confirmEmail" json:"confirmEmail"`
	Password        string `yaml:"password" json:"password"`
	ConfirmPassword string `yaml:"confirmPassword" json:"confirmPassword"`
}

func (r *Register) FormName() string { return RegisterForm }

func (r *Register) Fields() []string {
	return []string{
		FieldName, FieldPhone, FieldNationalID, FieldEmail,
		FieldConfirmEmail, FieldPassword, FieldConfirmPassword,
	}
}

func (r *Register) field(name string) *string {
	switch name {
	case FieldName:
		return &r.Name
	case FieldPhone:
		return &r.Phone
	case FieldNationalID:
		return &r.NationalID
	case FieldEmail:
		return &r.Email
	case FieldConfirmEmail:
		return &r.ConfirmEmail
	case FieldPassword:
		return &r.Password
	case FieldConfirmPassword:
		return &r.ConfirmPassword
	}
	return nil
}

// Set stores raw input. Phone and national ID are re-masked on every call;
// names are composed to NFC so accented letters typed as combining marks
// still match the name pattern.
func (r *Register) Set(field, raw string) error {
	dst := r.field(field)
	if dst == nil {
		return unknownField(RegisterForm, field)
	}

	switch field {
	case FieldPhone:
		raw = sanitizer.FormatPhoneInput(raw)
	case FieldNationalID:
		raw = sanitizer.FormatNationalIDInput(raw)
	case FieldName:
		raw = sanitizer.NFC(raw)
	}
	*dst = raw
	return nil
}

// Check is the on-blur check of a single field.
func (r *Register) Check(field string) (string, error) {
	dst := r.field(field)
	if dst == nil {
		return "", unknownField(RegisterForm, field)
	}

	value := *dst
	if value == "" {
		return msgFieldRequired, nil
	}

	switch field {
	case FieldEmail:
		if !validator.ValidateEmail(value) {
			return msgEmailInvalid, nil
		}
	case FieldConfirmEmail:
		if value != r.Email {
			return msgEmailMismatch, nil
		}
	case FieldPassword:
		if !validator.ValidatePassword(value) {
			return msgPasswordWeak, nil
		}
	case FieldConfirmPassword:
		if value != r.Password {
			return msgPasswordMismatch, nil
		}
	case FieldNationalID:
		// Only the mask length is checked while typing; the checksum runs on submit.
		if utf8.RuneCountInString(value) != sanitizer.NationalIDMaskLength {
			return msgNationalIDFormat, nil
		}
	case FieldPhone:
		if !validator.ValidatePhone(value) {
			return msgPhoneInvalid, nil
		}
	case FieldName:
		if !validator.ValidateName(value) {
			return msgNameInvalid, nil
		}
	}
	return "", nil
}

// Rules describes the registration form. The national ID must match the
// mask and carry valid check digits.
func (r *Register) Rules() validator.FormValidation {
	return validator.FormValidation{
		FieldName: {
			Value:    r.Name,
			Required: true,
			Pattern:  validator.NamePattern,
			Kind:     validator.KindName,
		},
		FieldPhone: {
			Value:    r.Phone,
			Required: true,
			Pattern:  validator.PhonePattern,
			Kind:     validator.KindPhone,
		},
		FieldNationalID: {
			Value:         r.NationalID,
			Required:      true,
			Pattern:       validator.NationalIDPattern,
			Kind:          validator.KindNationalID,
			Custom:        validator.ValidateNationalID,
			CustomMessage: msgNationalIDInvalid,
		},
		FieldEmail: {
			Value:    r.Email,
			Required: true,
			Pattern:  validator.EmailPattern,
			Kind:     validator.KindEmail,
		},
		FieldConfirmEmail: {
			Value:    r.ConfirmEmail,
			Required: true,
			Confirm:  &validator.Confirmation{Value: r.Email, Field: validator.KindEmail},
		},
		FieldPassword: {
			Value:     r.Password,
			Required:  true,
			Pattern:   validator.PasswordPattern,
			Kind:      validator.KindPassword,
			MinLength: 8,
		},
		FieldConfirmPassword: {
			Value:    r.ConfirmPassword,
			Required: true,
			Confirm:  &validator.Confirmation{Value: r.Password, Field: validator.KindPassword},
		},
	}
}

// LogValue masks personal data so the form can be logged.
func (r *Register) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("form", RegisterForm),
		slog.String(FieldEmail, sanitizer.MaskEmail(r.Email)),
		slog.String(FieldPhone, sanitizer.MaskPhone(r.Phone)),
		slog.String(FieldNationalID, sanitizer.MaskNationalID(r.NationalID)),
	)
}
