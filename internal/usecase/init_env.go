package usecase

import (
	"context"
	"fmt"

	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// InitEnvParams contains parameters for writing an env file template
type InitEnvParams struct {
	Force bool
}

// InitEnvResult contains the result of writing the env file
type InitEnvResult struct {
	Path      string
	Variables []VariableSource
}

// InitEnv is a use case for scaffolding the env file the assembler reads
type InitEnv struct {
	runtime  *config.RuntimeConfig
	env      internalconfig.Environment
	store    EnvFileStore
	prompter ValuePrompter
}

// NewInitEnv creates a new InitEnv use case
func NewInitEnv(
	runtime *config.RuntimeConfig,
	env internalconfig.Environment,
	store EnvFileStore,
	prompter ValuePrompter,
) *InitEnv {
	return &InitEnv{
		runtime:  runtime,
		env:      env,
		store:    store,
		prompter: prompter,
	}
}

// Run executes the init use case. Current values, from the process or an
// existing env file, become the template defaults.
func (uc *InitEnv) Run(ctx context.Context, params InitEnvParams) (*InitEnvResult, error) {
	path := uc.runtime.EnvFile
	if uc.store.Exists(path) && !params.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", domain.ErrEnvFileExists, path)
	}

	values := make(map[string]string)
	result := &InitEnvResult{Path: path}

	for _, v := range internalconfig.Variables() {
		value := uc.env.Value(v.Name)

		if !uc.runtime.NonInteractive {
			answer, err := uc.prompter.PromptValue(v.Description, value, v.Secret)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", v.Name, err)
			}
			value = answer
		}

		values[v.Name] = value
		result.Variables = append(result.Variables, VariableSource{
			Name:        v.Name,
			Description: v.Description,
			Set:         value != "",
			Secret:      v.Secret,
		})
	}

	if err := uc.store.Write(ctx, path, values); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return result, nil
}
