package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format string
		output string
		reveal bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configuration for other tools",
		Long: `Encode the assembled configuration in another format.

Formats:
  json     the full record
  yaml     the full record
  foundry  a foundry.toml with the same compiler settings and endpoints
  env      the variables that reproduce the record

Credentials are masked or written as ${VAR} references unless --reveal
is given. Revealed files are written readable by the owner only.

Examples:
  solconf export --format json
  solconf export --format foundry -o foundry.toml
  solconf export --format env --reveal -o .env.backup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
				Format: format,
				Output: output,
				Reveal: reveal,
				Force:  force,
			})
			if err != nil {
				return fmt.Errorf("failed to export config: %w", err)
			}

			return render.NewExportRenderer(cmd.OutOrStdout()).RenderExport(result)
		},
	}

	formats := []string{"env", "foundry", "json", "yaml"}
	cmd.Flags().StringVarP(&format, "format", "f", "json", fmt.Sprintf("Output format (%s)", strings.Join(formats, ", ")))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Write credentials as-is")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
