package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	EnvFile     string // dotenv file read before assembly, may not exist

	// Execution settings
	Debug          bool
	NonInteractive bool
	NoColor        bool
	Timeout        time.Duration // bound on network probes
}

// Network represents a resolved network as seen from its RPC endpoint
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}
