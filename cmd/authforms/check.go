package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authforms/pkg/logger"
	"github.com/dmitrymomot/authforms/pkg/validator"
)

var errInvalidValue = errors.New("invalid value")

var checks = []struct {
	use   string
	kind  validator.FieldKind
	short string
}{
	{"email", validator.KindEmail, "Check an email address"},
	{"phone", validator.KindPhone, "Check a masked phone number, (DD) DDDDD-DDDD"},
	{"national-id", validator.KindNationalID, "Check a masked CPF including its check digits"},
	{"password", validator.KindPassword, "Check password strength"},
	{"name", validator.KindName, "Check a person's name"},
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a single value against a built-in pattern",
		Long: `Checks one value and prints "valid" or "invalid".
Exits non-zero when the value is invalid.`,
	}

	for _, c := range checks {
		cmd.AddCommand(&cobra.Command{
			Use:   c.use + " <value>",
			Short: c.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ok := validator.ValidateKind(c.kind, args[0])
				a.log.DebugContext(cmd.Context(), "value checked",
					logger.Field(c.kind.String()),
					logger.Valid(ok),
				)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "invalid")
					return fmt.Errorf("%s: %w", c.use, errInvalidValue)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			},
		})
	}

	return cmd
}
