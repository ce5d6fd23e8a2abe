package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the assembled configuration for problems",
		Long: `Check the assembled configuration without changing it.

Exits non-zero when an error is found, or when a warning is found and
--strict is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := render.NewValidateRenderer(cmd.OutOrStdout()).RenderValidation(result); err != nil {
				return err
			}

			if n := result.Count(usecase.SeverityError); n > 0 {
				return fmt.Errorf("configuration has %d error(s)", n)
			}
			if n := result.Count(usecase.SeverityWarning); strict && n > 0 {
				return fmt.Errorf("configuration has %d warning(s)", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")

	return cmd
}
