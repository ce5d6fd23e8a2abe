package usecase

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"golang.org/x/text/currency"
)

// Severity ranks a validation issue
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single validation finding
type Issue struct {
	Severity Severity
	Field    string
	Message  string
}

// ValidateConfigResult contains the findings over the record
type ValidateConfigResult struct {
	Issues []Issue
}

// HasErrors reports whether any issue is an error
func (r *ValidateConfigResult) HasErrors() bool {
	return lo.SomeBy(r.Issues, func(i Issue) bool { return i.Severity == SeverityError })
}

// Count returns the number of issues with the given severity
func (r *ValidateConfigResult) Count(severity Severity) int {
	return lo.CountBy(r.Issues, func(i Issue) bool { return i.Severity == severity })
}

var (
	// experimentalIR matches compilers whose IR pipeline is still experimental
	experimentalIR = lo.Must(semver.NewConstraint("< 0.8.13"))

	// deprecatedNetworks maps retired testnets to their replacement
	deprecatedNetworks = map[string]string{
		"goerli":  "sepolia",
		"rinkeby": "sepolia",
		"ropsten": "sepolia",
		"kovan":   "sepolia",
	}
)

// ValidateConfig is a use case for diagnosing the record before it is
// handed to the toolchain. It never changes the record.
type ValidateConfig struct {
	toolchain *config.ToolchainConfig
}

// NewValidateConfig creates a new ValidateConfig use case
func NewValidateConfig(toolchain *config.ToolchainConfig) *ValidateConfig {
	return &ValidateConfig{toolchain: toolchain}
}

// Run executes the validate use case
func (uc *ValidateConfig) Run(ctx context.Context) (*ValidateConfigResult, error) {
	v := &validator{}
	cfg := uc.toolchain

	v.checkSolidity(cfg.Solidity)
	v.checkOutputs(cfg)
	v.checkNetworks(cfg)

	if !cfg.Etherscan.APIKey.IsSet() {
		v.add(SeverityWarning, "etherscan.apiKey",
			fmt.Sprintf("%s is not set, source verification requests will be unauthenticated", internalconfig.EnvEtherscanAPIKey))
	}

	if cfg.GasReporter.Enabled {
		if _, err := currency.ParseISO(cfg.GasReporter.Currency); err != nil {
			v.add(SeverityError, "gasReporter.currency",
				fmt.Sprintf("'%s' is not an ISO 4217 currency code", cfg.GasReporter.Currency))
		}
		if cfg.GasReporter.CoinmarketcapKey == "" {
			v.add(SeverityWarning, "gasReporter.coinmarketcap", "no price feed key, costs are reported in gas only")
		}
	}

	return &ValidateConfigResult{Issues: v.issues}, nil
}

type validator struct {
	issues []Issue
}

func (v *validator) add(severity Severity, field, message string) {
	v.issues = append(v.issues, Issue{Severity: severity, Field: field, Message: message})
}

func (v *validator) checkSolidity(solidity config.SolidityConfig) {
	version, err := semver.StrictNewVersion(solidity.Version)
	if err != nil || version.Prerelease() != "" || version.Metadata() != "" {
		v.add(SeverityError, "solidity.version", fmt.Sprintf("'%s' is not a MAJOR.MINOR.PATCH compiler version", solidity.Version))
	} else if solidity.Codegen.ViaIR() && experimentalIR.Check(version) {
		v.add(SeverityWarning, "solidity.codegen", "the IR pipeline is experimental before compiler 0.8.13")
	}

	if solidity.Optimizer.Runs < 0 {
		v.add(SeverityError, "solidity.optimizer.runs", "optimizer runs must not be negative")
	}

	if solidity.Codegen != config.CodegenLegacy && solidity.Codegen != config.CodegenViaIR {
		v.add(SeverityError, "solidity.codegen", fmt.Sprintf("unknown code generation mode '%s'", solidity.Codegen))
	}
}

func (v *validator) checkOutputs(cfg *config.ToolchainConfig) {
	if cfg.ABIExporter.Path == "" {
		v.add(SeverityError, "abiExporter.path", "output path is empty")
	}
	if cfg.ABIExporter.Spacing < 0 {
		v.add(SeverityError, "abiExporter.spacing", "indentation must not be negative")
	}
	if cfg.Typechain.OutDir == "" {
		v.add(SeverityError, "typechain.outDir", "output directory is empty")
	}
	if !slices.Contains(config.ValidTypechainTargets(), cfg.Typechain.Target) {
		v.add(SeverityError, "typechain.target", fmt.Sprintf("unknown target '%s'", cfg.Typechain.Target))
	}
}

func (v *validator) checkNetworks(cfg *config.ToolchainConfig) {
	urlVars := lo.SliceToMap(internalconfig.RemoteNetworks(), func(n config.RemoteNetwork) (string, string) {
		return n.Name, n.URLVar
	})
	keyUsers := map[string][]string{}

	for _, name := range cfg.RemoteNetworkNames() {
		profile := cfg.Networks[name]
		field := "networks." + name

		if replacement, ok := deprecatedNetworks[strings.ToLower(name)]; ok {
			v.add(SeverityInfo, field, fmt.Sprintf("%s is a deprecated testnet, consider %s", name, replacement))
		}

		v.checkURL(field+".url", profile.URL, urlVars[name])

		if len(profile.Accounts) == 0 {
			v.add(SeverityWarning, field+".accounts",
				fmt.Sprintf("no signing account, set %s to send transactions", internalconfig.EnvPrivateKey))
		}
		for _, key := range profile.Accounts {
			if _, err := AddressFromPrivateKey(key); err != nil {
				v.add(SeverityError, field+".accounts", "account key is not a valid secp256k1 private key")
				continue
			}
			keyUsers[key] = append(keyUsers[key], name)
		}
	}

	for _, key := range slices.Sorted(maps.Keys(keyUsers)) {
		if users := keyUsers[key]; len(users) > 1 {
			slices.Sort(users)
			v.add(SeverityWarning, "networks",
				fmt.Sprintf("%s is shared by %s, a mainnet and a testnet should not share a signing key",
					internalconfig.EnvPrivateKey, strings.Join(users, ", ")))
		}
	}
}

func (v *validator) checkURL(field, raw, envVar string) {
	if raw == "" {
		hint := "set the network's RPC URL"
		if envVar != "" {
			hint = "set " + envVar
		}
		v.add(SeverityWarning, field, "no RPC endpoint, "+hint)
		return
	}

	if ref, ok := internalconfig.DetectEnvVar(raw); ok {
		v.add(SeverityError, field, fmt.Sprintf("endpoint is an unexpanded reference to %s", ref))
		return
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		v.add(SeverityError, field, fmt.Sprintf("invalid URL: %v", err))
		return
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		v.add(SeverityError, field, fmt.Sprintf("unsupported URL scheme '%s'", parsed.Scheme))
		return
	}
	if parsed.Host == "" {
		v.add(SeverityError, field, "URL has no host")
	}
}
