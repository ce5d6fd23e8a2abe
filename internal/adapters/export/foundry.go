package export

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

const foundryProfile = "default"

// FoundryEncoder writes the record as a foundry.toml so Foundry builds the
// same sources with the same compiler settings
type FoundryEncoder struct{}

// NewFoundryEncoder creates a new foundry.toml encoder
func NewFoundryEncoder() *FoundryEncoder {
	return &FoundryEncoder{}
}

func (e *FoundryEncoder) Format() string { return "foundry" }

// Encode writes cfg as TOML. Endpoints and keys are written as ${VAR}
// references unless revealed.
func (e *FoundryEncoder) Encode(w io.Writer, cfg *config.ToolchainConfig, opts usecase.EncodeOptions) error {
	return toml.NewEncoder(w).Encode(ToFoundryConfig(cfg, opts.Reveal))
}

// ToFoundryConfig maps the record onto foundry.toml sections
func ToFoundryConfig(cfg *config.ToolchainConfig, reveal bool) *config.FoundryConfig {
	profile := config.ProfileConfig{
		SrcPath:       "contracts",
		OutPath:       "out",
		SolcVersion:   cfg.Solidity.Version,
		Optimizer:     cfg.Solidity.Optimizer.Enabled,
		OptimizerRuns: cfg.Solidity.Optimizer.Runs,
		ViaIR:         cfg.Solidity.Codegen.ViaIR(),
	}
	if cfg.GasReporter.Enabled {
		profile.GasReports = []string{"*"}
	}

	fc := &config.FoundryConfig{
		Profile:      map[string]config.ProfileConfig{foundryProfile: profile},
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]config.EtherscanEntry),
	}

	apiKey, hasKey := cfg.Etherscan.APIKey.Get()

	for _, n := range internalconfig.RemoteNetworks() {
		network, ok := cfg.Networks[n.Name]
		if !ok {
			continue
		}
		alias := strings.ToLower(n.Name)

		if reveal {
			if network.URL != "" {
				fc.RpcEndpoints[alias] = network.URL
			}
		} else {
			fc.RpcEndpoints[alias] = internalconfig.EnvReference(n.URLVar)
		}

		if hasKey {
			key := internalconfig.EnvReference(internalconfig.EnvEtherscanAPIKey)
			if reveal {
				key = apiKey
			}
			fc.Etherscan[alias] = config.EtherscanEntry{Key: key}
		}
	}

	return fc
}
