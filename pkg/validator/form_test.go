package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

func TestValidateForm(t *testing.T) {
	t.Parallel()

	t.Run("mismatched confirmation reports only the confirming field", func(t *testing.T) {
		res := validator.ValidateForm(validator.FormValidation{
			"email": {
				Value:    "user@example.com",
				Required: true,
				Pattern:  validator.EmailPattern,
				Kind:     validator.KindEmail,
			},
			"confirmEmail": {
				Value:    "other@example.com",
				Required: true,
				Confirm:  &validator.Confirmation{Value: "user@example.com", Field: validator.KindEmail},
			},
		})

		assert.False(t, res.Valid)
		assert.Equal(t, map[string]string{
			"confirmEmail": "Os endereços de email não coincidem",
		}, res.Errors)
		assert.Empty(t, res.Error("email"))
	})

	t.Run("every field is evaluated", func(t *testing.T) {
		res := validator.ValidateForm(validator.FormValidation{
			"name":     {Value: "", Required: true},
			"phone":    {Value: "123", Pattern: validator.PhonePattern, Kind: validator.KindPhone},
			"password": {Value: "abc", MinLength: 8},
			"nick":     {Value: "ok"},
		})

		assert.False(t, res.Valid)
		assert.Equal(t, []string{"name", "password", "phone"}, res.Fields())
		assert.Equal(t, "O campo name é obrigatório", res.Error("name"))
		assert.Equal(t, "Por favor, insira um telefone válido ((XX) XXXXX-XXXX)", res.Error("phone"))
		assert.Equal(t, "O campo password deve ter no mínimo 8 caracteres", res.Error("password"))
	})

	t.Run("valid form", func(t *testing.T) {
		res := validator.ValidateForm(validator.FormValidation{
			"name": {Value: "Ana", Required: true, Pattern: validator.NamePattern, Kind: validator.KindName},
		})

		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.NoError(t, res.Err())
	})

	t.Run("empty form is valid", func(t *testing.T) {
		res := validator.ValidateForm(nil)
		assert.True(t, res.Valid)
		assert.NotNil(t, res.Errors)
	})

	t.Run("deterministic", func(t *testing.T) {
		rules := validator.FormValidation{
			"a": {Required: true},
			"b": {Value: "x", MinLength: 2},
		}
		assert.Equal(t, validator.ValidateForm(rules), validator.ValidateForm(rules))
	})
}

func TestValidationResult_Err(t *testing.T) {
	t.Parallel()

	t.Run("carries translation metadata", func(t *testing.T) {
		res := validator.ValidateForm(validator.FormValidation{
			"password":        {Value: "abc", MinLength: 8},
			"confirmPassword": {Value: "x", Confirm: &validator.Confirmation{Value: "abc", Field: validator.KindPassword}},
		})

		err := res.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "confirmPassword", verrs[0].Field)
		assert.Equal(t, "validation.confirmPassword", verrs[0].TranslationKey)
		assert.Equal(t, "password", verrs[1].Field)
		assert.Equal(t, "validation.min_length", verrs[1].TranslationKey)
		assert.Equal(t, 8, verrs[1].TranslationValues["min"])
	})

	t.Run("hand-built result", func(t *testing.T) {
		res := validator.ValidationResult{Errors: map[string]string{"b": "bad b", "a": "bad a"}}

		verrs := validator.ExtractValidationErrors(res.Err())
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"a", "b"}, verrs.Fields())
		assert.Equal(t, "bad a", verrs.Get("a"))
	})
}
