package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ShowConfigParams contains parameters for showing the record
type ShowConfigParams struct {
	Reveal bool
}

// VariableSource reports whether a bound variable took effect
type VariableSource struct {
	Name        string
	Description string
	Set         bool
	Secret      bool
}

// SignerInfo describes the signing account of a network profile
type SignerInfo struct {
	Network string
	Key     string // masked unless revealed
	Address common.Address
	Error   error
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config        *config.ToolchainConfig
	EnvFile       string
	EnvFileExists bool
	Variables     []VariableSource
	Signers       []SignerInfo
}

// ShowConfig is a use case for showing the assembled record
type ShowConfig struct {
	runtime   *config.RuntimeConfig
	env       internalconfig.Environment
	toolchain *config.ToolchainConfig
	envFiles  EnvFileStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(
	runtime *config.RuntimeConfig,
	env internalconfig.Environment,
	toolchain *config.ToolchainConfig,
	envFiles EnvFileStore,
) *ShowConfig {
	return &ShowConfig{
		runtime:   runtime,
		env:       env,
		toolchain: toolchain,
		envFiles:  envFiles,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context, params ShowConfigParams) (*ShowConfigResult, error) {
	result := &ShowConfigResult{
		EnvFile:       uc.runtime.EnvFile,
		EnvFileExists: uc.envFiles.Exists(uc.runtime.EnvFile),
	}

	for _, v := range internalconfig.Variables() {
		result.Variables = append(result.Variables, VariableSource{
			Name:        v.Name,
			Description: v.Description,
			Set:         uc.env.IsSet(v.Name),
			Secret:      v.Secret,
		})
	}

	for _, name := range uc.toolchain.RemoteNetworkNames() {
		for _, key := range uc.toolchain.Networks[name].Accounts {
			signer := SignerInfo{Network: name, Key: key}
			if !params.Reveal {
				signer.Key = config.MaskSecret(key)
			}
			signer.Address, signer.Error = AddressFromPrivateKey(key)
			result.Signers = append(result.Signers, signer)
		}
	}

	if params.Reveal {
		result.Config = uc.toolchain.Clone()
	} else {
		result.Config = uc.toolchain.Redacted()
	}

	return result, nil
}

// AddressFromPrivateKey derives the account address of a hex private key
func AddressFromPrivateKey(key string) (common.Address, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(key, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", domain.ErrInvalidPrivateKey, err)
	}
	return crypto.PubkeyToAddress(privateKey.PublicKey), nil
}
