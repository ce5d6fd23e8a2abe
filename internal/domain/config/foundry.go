package config

// FoundryConfig represents the foundry.toml view of the toolchain record
type FoundryConfig struct {
	Profile      map[string]ProfileConfig  `toml:"profile"`
	RpcEndpoints map[string]string         `toml:"rpc_endpoints,omitempty"`
	Etherscan    map[string]EtherscanEntry `toml:"etherscan,omitempty"`
}

// EtherscanEntry represents Etherscan configuration for a network
// This matches Foundry's expected structure
type EtherscanEntry struct {
	Key string `toml:"key,omitempty"` // API key for verification
	URL string `toml:"url,omitempty"` // API URL (for custom explorers)
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	SrcPath       string   `toml:"src,omitempty"`
	OutPath       string   `toml:"out,omitempty"`
	SolcVersion   string   `toml:"solc_version,omitempty"`
	Optimizer     bool     `toml:"optimizer"`
	OptimizerRuns int      `toml:"optimizer_runs"`
	ViaIR         bool     `toml:"via_ir"`
	GasReports    []string `toml:"gas_reports,omitempty"`
}
