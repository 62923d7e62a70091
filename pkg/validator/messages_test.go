package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("overrides merge over defaults", func(t *testing.T) {
		src := `
required: "{field} is required"
min_length: "{field} needs {length}+ characters"
kinds:
  email: "invalid email"
confirm:
  confirmPassword: "passwords differ"
`
		cat, err := validator.LoadCatalog(strings.NewReader(src))
		require.NoError(t, err)

		v := validator.New(validator.WithCatalog(cat))
		assert.Equal(t, "email is required", v.Field("email", validator.FieldRule{Required: true}))
		assert.Equal(t, "password needs 8+ characters", v.Field("password", validator.FieldRule{Value: "x", MinLength: 8}))
		assert.Equal(t, "invalid email", v.Field("email", validator.FieldRule{
			Value: "x", Pattern: validator.EmailPattern, Kind: validator.KindEmail,
		}))
		assert.Equal(t, "passwords differ", v.Field("confirmPassword", validator.FieldRule{
			Value: "a", Confirm: &validator.Confirmation{Value: "b", Field: validator.KindPassword},
		}))
		assert.Equal(t, "Os endereços de email não coincidem", v.Field("confirmEmail", validator.FieldRule{
			Value: "a", Confirm: &validator.Confirmation{Value: "b", Field: validator.KindEmail},
		}))
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		cat, err := validator.LoadCatalog(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, validator.DefaultCatalog(), cat)
	})

	t.Run("misspelt kind is rejected", func(t *testing.T) {
		_, err := validator.LoadCatalog(strings.NewReader("kinds:\n  emial: x\n"))
		assert.ErrorIs(t, err, validator.ErrInvalidCatalog)
	})

	t.Run("generic kind is rejected", func(t *testing.T) {
		_, err := validator.LoadCatalog(strings.NewReader("kinds:\n  generic: x\n"))
		assert.ErrorIs(t, err, validator.ErrInvalidCatalog)
	})

	t.Run("misspelt confirmation key is rejected", func(t *testing.T) {
		_, err := validator.LoadCatalog(strings.NewReader("confirm:\n  confirmEmali: x\n"))
		assert.ErrorIs(t, err, validator.ErrInvalidCatalog)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := validator.LoadCatalog(strings.NewReader("kinds: [unclosed"))
		assert.ErrorIs(t, err, validator.ErrInvalidCatalog)
	})
}

func TestCatalog_Merge(t *testing.T) {
	t.Parallel()

	base := validator.DefaultCatalog()
	merged := base.Merge(validator.Catalog{Mismatch: "differ", Kinds: map[validator.FieldKind]string{validator.KindName: ""}})

	assert.Equal(t, "differ", merged.Mismatch)
	assert.Equal(t, base.Kinds[validator.KindName], merged.Kinds[validator.KindName])
	// base is untouched
	assert.Equal(t, "Os campos não coincidem", base.Mismatch)

	merged.Kinds[validator.KindEmail] = "changed"
	assert.NotEqual(t, "changed", validator.DefaultCatalog().Kinds[validator.KindEmail])
}

func TestFieldKind(t *testing.T) {
	t.Parallel()

	for _, kind := range validator.Kinds() {
		parsed, err := validator.ParseFieldKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	assert.Equal(t, "confirmEmail", validator.KindEmail.ConfirmKey())
	assert.Equal(t, "confirmPassword", validator.KindPassword.ConfirmKey())
	assert.Equal(t, "nationalId", validator.KindNationalID.String())
	assert.Equal(t, "FieldKind(42)", validator.FieldKind(42).String())
	assert.Empty(t, validator.FieldKind(42).DisplayName())

	_, err := validator.ParseFieldKind("cpf")
	assert.ErrorIs(t, err, validator.ErrUnknownFieldKind)
}
