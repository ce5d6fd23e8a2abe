package config

import (
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// Environment variable names read during assembly
const (
	EnvEtherscanAPIKey     = "ETHERSCAN_API_KEY"
	EnvPrivateKey          = "PRIVATE_KEY"
	EnvCoinmarketcapAPIKey = "COINMARKETCAP_API_KEY"
)

// credentials holds the environment values that are not tied to a single
// network profile
type credentials struct {
	EtherscanAPIKey     string `env:"ETHERSCAN_API_KEY"`
	PrivateKey          string `env:"PRIVATE_KEY"`
	CoinmarketcapAPIKey string `env:"COINMARKETCAP_API_KEY"`
}

// endpoint holds the variables of one remote network, decoded under the
// network's prefix (GOERLI_URL for Goerli)
type endpoint struct {
	URL string `env:"URL"`
}

// Variable describes one environment variable consumed by the assembler
type Variable struct {
	Name        string
	Description string
	Secret      bool
}

// RemoteNetworks returns the non-local network profiles in declaration order
func RemoteNetworks() []config.RemoteNetwork {
	return []config.RemoteNetwork{
		{Name: "Goerli", URLVar: GenerateEnvVarName("Goerli")},
		{Name: "ETH", URLVar: GenerateEnvVarName("ETH")},
	}
}

// Variables returns every environment variable the assembler reads
func Variables() []Variable {
	vars := []Variable{
		{Name: EnvEtherscanAPIKey, Description: "Explorer API key used for source verification", Secret: true},
	}
	for _, n := range RemoteNetworks() {
		vars = append(vars, Variable{Name: n.URLVar, Description: "RPC endpoint for the " + n.Name + " network"})
	}
	vars = append(vars,
		Variable{Name: EnvPrivateKey, Description: "Signing key shared by all remote networks", Secret: true},
		Variable{Name: EnvCoinmarketcapAPIKey, Description: "Price feed key for the gas reporter", Secret: true},
	)
	return vars
}

// IsSecret reports whether the named variable holds a credential
func IsSecret(name string) bool {
	return slices.ContainsFunc(Variables(), func(v Variable) bool {
		return v.Name == name && v.Secret
	})
}

// Assemble builds the toolchain configuration record from the literal
// defaults and environment. A variable only takes effect when it is defined
// with a non-empty value; otherwise its literal default stays in place.
// Assemble never fails.
func Assemble(environment Environment) *config.ToolchainConfig {
	cfg := config.DefaultToolchainConfig()
	creds := parseCredentials(environment)

	if creds.EtherscanAPIKey != "" {
		cfg.Etherscan.APIKey = config.Some(creds.EtherscanAPIKey)
	}
	if creds.CoinmarketcapAPIKey != "" {
		cfg.GasReporter.CoinmarketcapKey = creds.CoinmarketcapAPIKey
	}

	accounts := []string{}
	if creds.PrivateKey != "" {
		accounts = []string{creds.PrivateKey}
	}

	for _, n := range RemoteNetworks() {
		cfg.Networks[n.Name] = config.NetworkProfile{
			URL:      parseEndpoint(environment, n.Name).URL,
			Accounts: slices.Clone(accounts),
		}
	}

	return cfg
}

// parseCredentials decodes the credential variables. Only string fields are
// decoded, so parsing can't fail on a value; an error leaves the zero value.
func parseCredentials(environment Environment) credentials {
	var creds credentials
	if err := env.ParseWithOptions(&creds, envOptions(environment, "")); err != nil {
		return credentials{}
	}
	return creds
}

// parseEndpoint decodes the variables of the named remote network
func parseEndpoint(environment Environment, network string) endpoint {
	var ep endpoint
	if err := env.ParseWithOptions(&ep, envOptions(environment, envVarPrefix(network))); err != nil {
		return endpoint{}
	}
	return ep
}

func envOptions(environment Environment, prefix string) env.Options {
	values := map[string]string(environment)
	if values == nil {
		// a nil map makes the decoder fall back to os.Environ
		values = map[string]string{}
	}
	return env.Options{Environment: values, Prefix: prefix}
}
