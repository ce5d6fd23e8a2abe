package config

import (
	"encoding/json"
	"maps"
	"slices"
)

// ToolchainConfig is the assembled configuration record handed to the
// external build, compile and deploy toolchain.
type ToolchainConfig struct {
	Solidity    SolidityConfig            `json:"solidity" yaml:"solidity"`
	ABIExporter ABIExporterConfig         `json:"abiExporter" yaml:"abiExporter"`
	Typechain   TypechainConfig           `json:"typechain" yaml:"typechain"`
	Etherscan   EtherscanConfig           `json:"etherscan" yaml:"etherscan"`
	GasReporter GasReporterConfig         `json:"gasReporter" yaml:"gasReporter"`
	Networks    map[string]NetworkProfile `json:"networks" yaml:"networks"`
	Plugins     []string                  `json:"plugins" yaml:"plugins"`
}

// SolidityConfig holds compiler settings
type SolidityConfig struct {
	Version   string          `json:"version" yaml:"version"`
	Optimizer OptimizerConfig `json:"optimizer" yaml:"optimizer"`
	Codegen   CodegenMode     `json:"codegen" yaml:"codegen"`
}

// OptimizerConfig holds optimizer settings. Runs is never negative.
type OptimizerConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs"`
}

// CodegenMode selects the compiler code generation pipeline
type CodegenMode string

const (
	CodegenLegacy CodegenMode = "legacy"
	CodegenViaIR  CodegenMode = "via-ir"
)

// ViaIR reports whether the intermediate-representation pipeline is used
func (m CodegenMode) ViaIR() bool {
	return m == CodegenViaIR
}

// ABIExporterConfig controls how interface descriptions are written out
type ABIExporterConfig struct {
	Path         string `json:"path" yaml:"path"`
	RunOnCompile bool   `json:"runOnCompile" yaml:"runOnCompile"`
	Clear        bool   `json:"clear" yaml:"clear"`
	Flat         bool   `json:"flat" yaml:"flat"`
	Spacing      int    `json:"spacing" yaml:"spacing"`
	Pretty       bool   `json:"pretty" yaml:"pretty"`
}

// TypechainTarget names the client library type bindings are generated for
type TypechainTarget string

const (
	TypechainEthersV5  TypechainTarget = "ethers-v5"
	TypechainEthersV6  TypechainTarget = "ethers-v6"
	TypechainWeb3V1    TypechainTarget = "web3-v1"
	TypechainTruffleV5 TypechainTarget = "truffle-v5"
)

// ValidTypechainTargets returns all known type binding targets
func ValidTypechainTargets() []TypechainTarget {
	return []TypechainTarget{
		TypechainEthersV5,
		TypechainEthersV6,
		TypechainWeb3V1,
		TypechainTruffleV5,
	}
}

// TypechainConfig controls type binding generation
type TypechainConfig struct {
	OutDir string          `json:"outDir" yaml:"outDir"`
	Target TypechainTarget `json:"target" yaml:"target"`
}

// EtherscanConfig holds the explorer credential used for source verification
type EtherscanConfig struct {
	APIKey Optional[string] `json:"apiKey" yaml:"apiKey"`
}

// GasReporterConfig controls gas cost reporting
type GasReporterConfig struct {
	Enabled          bool   `json:"enabled" yaml:"enabled"`
	Currency         string `json:"currency" yaml:"currency"`
	CoinmarketcapKey string `json:"coinmarketcap" yaml:"coinmarketcap"`
}

// NetworkProfile is a named set of connection and credential parameters
type NetworkProfile struct {
	URL      string          `json:"url" yaml:"url"`
	Accounts []string        `json:"accounts" yaml:"accounts"`
	Limits   *ResourceLimits `json:"limits,omitempty" yaml:"limits,omitempty"`

	// Local marks the in-process development network, which takes no
	// endpoint or credentials.
	Local bool `json:"local,omitempty" yaml:"local,omitempty"`
}

// localNetworkProfile is the encoded form of a local profile, which has no
// endpoint to report
type localNetworkProfile struct {
	Accounts []string        `json:"accounts" yaml:"accounts"`
	Limits   *ResourceLimits `json:"limits,omitempty" yaml:"limits,omitempty"`
	Local    bool            `json:"local" yaml:"local"`
}

// encoded returns the value to serialize for p. Remote profiles always carry
// their url, even when it is empty.
func (p NetworkProfile) encoded() any {
	if p.Local {
		return localNetworkProfile{Accounts: p.Accounts, Limits: p.Limits, Local: true}
	}
	type plain NetworkProfile
	return plain(p)
}

func (p NetworkProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.encoded())
}

func (p NetworkProfile) MarshalYAML() (any, error) {
	return p.encoded(), nil
}

// ResourceLimits caps gas for a network profile
type ResourceLimits struct {
	BlockGasLimit uint64 `json:"blockGasLimit" yaml:"blockGasLimit"`
	Gas           uint64 `json:"gas" yaml:"gas"`
}

// NetworkNames returns the profile names in sorted order
func (c *ToolchainConfig) NetworkNames() []string {
	return slices.Sorted(maps.Keys(c.Networks))
}

// RemoteNetworkNames returns the sorted names of all non-local profiles
func (c *ToolchainConfig) RemoteNetworkNames() []string {
	var names []string
	for _, name := range c.NetworkNames() {
		if !c.Networks[name].Local {
			names = append(names, name)
		}
	}
	return names
}

// Clone returns a deep copy of the record
func (c *ToolchainConfig) Clone() *ToolchainConfig {
	out := *c
	out.Plugins = slices.Clone(c.Plugins)
	out.Networks = make(map[string]NetworkProfile, len(c.Networks))
	for name, profile := range c.Networks {
		p := profile
		p.Accounts = slices.Clone(profile.Accounts)
		if p.Accounts == nil {
			p.Accounts = []string{}
		}
		if profile.Limits != nil {
			limits := *profile.Limits
			p.Limits = &limits
		}
		out.Networks[name] = p
	}
	return &out
}
