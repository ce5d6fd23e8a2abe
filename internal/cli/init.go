package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/cli/render"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an env file template for the project",
		Long: `Write an env file listing every variable the configuration reads.

Values already present in the environment become the defaults. Unless
--non-interactive is set, each value is prompted for; secrets are masked
while typed. The file is written readable by the owner only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing env file")

	return cmd
}

// runInit executes the init command
func runInit(cmd *cobra.Command, force bool) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.InitEnv.Run(cmd.Context(), usecase.InitEnvParams{Force: force})
	if err != nil {
		return err
	}

	return render.NewInitRenderer(cmd.OutOrStdout()).RenderInit(result)
}
