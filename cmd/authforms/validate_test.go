package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authforms/pkg/forms"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

const validRegisterYAML = `
name: "José da Silva"
phone: "11999998888"
nationalId: "52998224725"
email: "jose@example.com"
confirmEmail: "jose@example.com"
password: "abc123$5"
confirmPassword: "abc123$5"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestValidateCommand(t *testing.T) {
	t.Setenv("AUTHFORMS_MESSAGES", "")

	t.Run("valid register form from stdin", func(t *testing.T) {
		out, _, err := execute(t, validRegisterYAML, "validate", forms.RegisterForm)
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("valid login form from file", func(t *testing.T) {
		path := writeFile(t, "login.json", `{"email": "ana@example.com", "password": "secret1"}`)
		out, _, err := execute(t, "", "validate", forms.LoginForm, "--file", path)
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("invalid form prints sorted field errors", func(t *testing.T) {
		out, _, err := execute(t, "email: ana@\npassword: \"123456\"\n", "validate", forms.LoginForm)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Equal(t,
			"email: Por favor, insira um endereço de email válido (exemplo@dominio.com)\n"+
				"password: A senha deve conter pelo menos uma letra\n",
			out)
	})

	t.Run("unknown form", func(t *testing.T) {
		_, _, err := execute(t, "", "validate", "signup")
		assert.ErrorIs(t, err, forms.ErrUnknownForm)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, _, err := execute(t, "cpf: 1\n", "validate", forms.RecoveryForm)
		assert.ErrorIs(t, err, forms.ErrUnknownField)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "", "validate", forms.LoginForm, "-f", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("missing form argument", func(t *testing.T) {
		_, _, err := execute(t, "", "validate")
		require.Error(t, err)
	})
}

func TestValidateCommand_Messages(t *testing.T) {
	catalog := writeFile(t, "messages.yaml", "required: \"{field} is required\"\nkinds:\n  email: bad email\n")

	t.Run("flag", func(t *testing.T) {
		t.Setenv("AUTHFORMS_MESSAGES", "")
		out, _, err := execute(t, "", "validate", forms.RecoveryForm, "--messages", catalog)
		require.Error(t, err)
		assert.Equal(t, "email: email is required\n", out)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("AUTHFORMS_MESSAGES", catalog)
		out, _, err := execute(t, "email: nope\n", "validate", forms.RecoveryForm)
		require.Error(t, err)
		assert.Equal(t, "email: bad email\n", out)
	})

	t.Run("invalid catalog", func(t *testing.T) {
		t.Setenv("AUTHFORMS_MESSAGES", "")
		bad := writeFile(t, "bad.yaml", "kinds:\n  telephone: x\n")
		_, _, err := execute(t, "", "validate", forms.RecoveryForm, "--messages", bad)
		assert.ErrorIs(t, err, validator.ErrInvalidCatalog)
	})

	t.Run("missing catalog", func(t *testing.T) {
		t.Setenv("AUTHFORMS_MESSAGES", "")
		_, _, err := execute(t, "", "validate", forms.RecoveryForm, "--messages", filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
