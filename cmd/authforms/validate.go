package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authforms/pkg/forms"
	"github.com/dmitrymomot/authforms/pkg/logger"
)

func newValidateCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate <form>",
		Short: "Validate form data read from a YAML or JSON document",
		Long: fmt.Sprintf(`Reads a mapping of field name to value and validates it as the
named form would on submit. Phone and CPF values are masked first, the
same way the input fields mask what is typed.

Prints "valid", or one "field: message" line per failing field sorted by
field name and exits non-zero.

Forms: %s`, strings.Join(forms.Names(), ", ")),
		Example: `  authforms validate login --file login.yaml
  echo '{"email": "ana@example.com"}' | authforms validate recovery`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: forms.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0], file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read form data from `path` instead of stdin")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, name, file string) error {
	ctx := cmd.Context()
	start := time.Now()

	var in io.Reader = cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open form data: %w", err)
		}
		defer f.Close()
		in = f
	}

	form, err := forms.Decode(name, in)
	if err != nil {
		a.log.ErrorContext(ctx, "decode form", logger.Form(name), logger.Error(err))
		return err
	}
	a.log.DebugContext(ctx, "form decoded", slog.Any("data", form))

	res := forms.ValidateWith(a.validator, form)
	a.log.InfoContext(ctx, "form validated",
		logger.Form(name),
		logger.Valid(res.Valid),
		logger.FieldErrors(res.Errors),
		logger.Duration(time.Since(start)),
	)

	out := cmd.OutOrStdout()
	if res.Valid {
		fmt.Fprintln(out, "valid")
		return nil
	}
	for _, field := range res.Fields() {
		fmt.Fprintf(out, "%s: %s\n", field, res.Errors[field])
	}
	return fmt.Errorf("%s form: %w", name, res.Err())
}
