package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var format string
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the assembled toolchain configuration",
		Long: `Show the toolchain configuration record assembled from the defaults and
the environment, along with which variables took effect.

Credentials are masked unless --reveal is given.

Examples:
  solconf show
  solconf show --format json
  solconf show --reveal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context(), usecase.ShowConfigParams{Reveal: reveal})
			if err != nil {
				return fmt.Errorf("failed to show config: %w", err)
			}

			format := strings.ToLower(format)
			if format == "" || format == "table" {
				return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
			}

			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format '%s' (available: table, json, yaml)", format)
			}
			encoder, err := app.Encoders.Get(format)
			if err != nil {
				return err
			}
			// result.Config is already masked unless revealed
			return encoder.Encode(cmd.OutOrStdout(), result.Config, usecase.EncodeOptions{Reveal: true})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Show credentials unmasked")

	return cmd
}
