package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/authforms/pkg/sanitizer"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Apply an input mask to a raw value",
	}

	cmd.AddCommand(newMaskCmd("phone", "Format digits as (DD) DDDDD-DDDD", sanitizer.FormatPhoneInput))
	cmd.AddCommand(newMaskCmd("national-id", "Format digits as a CPF, DDD.DDD.DDD-DD", sanitizer.FormatNationalIDInput))

	return cmd
}

func newMaskCmd(use, short string, mask func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <raw>",
		Short: short,
		Long: short + `.

Non-digits are dropped and at most 11 digits are kept. Separators appear
only once a digit follows them, so partial input yields a partial mask.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), mask(args[0]))
			return nil
		},
	}
}
