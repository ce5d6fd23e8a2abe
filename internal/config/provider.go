package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// projectMarkers identify the root of a toolchain project
var projectMarkers = []string{
	"hardhat.config.ts",
	"hardhat.config.js",
	"foundry.toml",
	".env",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		projectRoot = FindProjectRoot(cwd)
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	envFile := v.GetString("env_file")
	if envFile == "" {
		envFile = filepath.Join(absRoot, ".env")
	} else if !filepath.IsAbs(envFile) {
		envFile = filepath.Join(absRoot, envFile)
	}

	return &config.RuntimeConfig{
		ProjectRoot:    absRoot,
		EnvFile:        envFile,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		NoColor:        v.GetBool("no_color"),
		Timeout:        v.GetDuration("timeout"),
	}, nil
}

// FindProjectRoot walks up from dir to the nearest directory holding a
// project marker. Falls back to dir itself when none is found.
func FindProjectRoot(dir string) string {
	current := dir
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(current, marker)); err == nil {
				return current
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("SOLCONF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("no_color", false)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		}
	})

	return v
}

// ReadProjectSettings merges .solconf.yaml from the project root, if any
func ReadProjectSettings(v *viper.Viper, projectRoot string) error {
	v.SetConfigName(".solconf")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read project settings: %w", err)
	}
	return nil
}

// flagKeys maps global flag names to settings keys
var flagKeys = map[string]string{
	"root":            "project_root",
	"env-file":        "env_file",
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"no-color":        "no_color",
	"timeout":         "timeout",
}

// ProvideEnvironment loads the process environment overlaid with the
// runtime env file and exports the file-sourced values to the process
func ProvideEnvironment(cfg *config.RuntimeConfig, logger *slog.Logger) Environment {
	environment := LoadEnvironment(ProcessEnvironment(), cfg.EnvFile, logger)
	if err := environment.Inject(); err != nil {
		logger.Warn("failed to export env file values", "error", err)
	}
	return environment
}

// ProvideToolchainConfig assembles the record for Wire dependency injection
func ProvideToolchainConfig(environment Environment) *config.ToolchainConfig {
	return Assemble(environment)
}
