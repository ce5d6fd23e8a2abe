package export

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// DotenvEncoder writes the environment that reproduces the record
type DotenvEncoder struct{}

// NewDotenvEncoder creates a new dotenv encoder
func NewDotenvEncoder() *DotenvEncoder {
	return &DotenvEncoder{}
}

func (e *DotenvEncoder) Format() string { return "env" }

// Encode writes every bound variable. Secrets are left empty unless revealed.
func (e *DotenvEncoder) Encode(w io.Writer, cfg *config.ToolchainConfig, opts usecase.EncodeOptions) error {
	values := ToEnvironment(cfg)
	for name := range values {
		if internalconfig.IsSecret(name) && !opts.Reveal {
			values[name] = ""
		}
	}

	content, err := godotenv.Marshal(values)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, content)
	return err
}

// ToEnvironment returns the variable values that assemble into cfg
func ToEnvironment(cfg *config.ToolchainConfig) map[string]string {
	values := make(map[string]string)

	values[internalconfig.EnvEtherscanAPIKey] = cfg.Etherscan.APIKey.OrElse("")

	values[internalconfig.EnvPrivateKey] = ""
	for _, n := range internalconfig.RemoteNetworks() {
		network := cfg.Networks[n.Name]
		values[n.URLVar] = network.URL
		if len(network.Accounts) > 0 && values[internalconfig.EnvPrivateKey] == "" {
			values[internalconfig.EnvPrivateKey] = network.Accounts[0]
		}
	}

	values[internalconfig.EnvCoinmarketcapAPIKey] = ""
	if cfg.GasReporter.CoinmarketcapKey != config.DefaultCoinmarketcapKey {
		values[internalconfig.EnvCoinmarketcapAPIKey] = cfg.GasReporter.CoinmarketcapKey
	}

	return values
}
