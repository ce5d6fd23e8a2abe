package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks [name]",
		Short: "List the configured network profiles",
		Long: `List the network profiles of the assembled configuration.

With --check, each remote endpoint is asked for its chain ID.

Examples:
  solconf networks
  solconf networks --check
  solconf networks goerli --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListNetworksParams{Check: check}
			if len(args) > 0 {
				params.Name = args[0]
			}

			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Probe each endpoint for its chain ID")

	return cmd
}
