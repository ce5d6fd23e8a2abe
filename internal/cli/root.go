package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/solconf/internal/adapters/progress"
	"github.com/trebuchet-org/solconf/internal/app"
	"github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "solconf",
		Short: "Assemble smart-contract toolchain configuration from the environment",
		Long: `solconf builds the toolchain configuration record (compiler, ABI export,
typed bindings, verification, gas reporting and networks) from built-in
defaults and environment variables, then shows, checks or exports it.

Variables are read from the process environment and from the project's
env file. Process values win; empty values fall back to the defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)

			projectRoot := v.GetString("project_root")
			if projectRoot == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				projectRoot = config.FindProjectRoot(cwd)
			}
			if err := config.ReadProjectSettings(v, projectRoot); err != nil {
				return err
			}

			if v.GetBool("no_color") {
				color.NoColor = true
			}

			var sink usecase.ProgressSink = progress.NewNopSink()
			if !v.GetBool("non_interactive") {
				sink = progress.NewSpinnerSink(cmd.ErrOrStderr())
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			appInstance.Logger.Debug("runtime configuration",
				"root", appInstance.Config.ProjectRoot,
				"env_file", appInstance.Config.EnvFile,
				"timeout", appInstance.Config.Timeout)

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("root", "", "Project root (defaults to the nearest directory with a project marker)")
	rootCmd.PersistentFlags().String("env-file", "", "Env file to read variables from (defaults to <root>/.env)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for each RPC probe (default 30s)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "main"
	rootCmd.AddCommand(exportCmd)

	validateCmd := NewValidateCmd()
	validateCmd.GroupID = "main"
	rootCmd.AddCommand(validateCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	initCmd := NewInitCmd()
	initCmd.GroupID = "management"
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
