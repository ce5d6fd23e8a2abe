package config

// Literal defaults of the toolchain configuration record
const (
	DefaultSolcVersion      = "0.8.17"
	DefaultOptimizerRuns    = 20
	DefaultABIPath          = "./ABI"
	DefaultABISpacing       = 2
	DefaultTypechainOutDir  = "types"
	DefaultGasCurrency      = "USD"
	DefaultCoinmarketcapKey = "10ff6b76-b425-4a67-8878-ac1e33c59407"

	LocalNetworkName   = "hardhat"
	LocalBlockGasLimit = 100_000_000
	LocalGasLimit      = 100_000_000
)

// DefaultPlugins lists the toolchain plugins the record is written for
var DefaultPlugins = []string{
	"@nomicfoundation/hardhat-toolbox",
	"@nomicfoundation/hardhat-foundry",
	"hardhat-abi-exporter",
}

// RemoteNetwork describes a non-local network profile that takes its
// endpoint from the environment
type RemoteNetwork struct {
	Name   string
	URLVar string
}

// DefaultToolchainConfig returns the record with every literal default and
// no environment applied
func DefaultToolchainConfig() *ToolchainConfig {
	return &ToolchainConfig{
		Solidity: SolidityConfig{
			Version: DefaultSolcVersion,
			Optimizer: OptimizerConfig{
				Enabled: true,
				Runs:    DefaultOptimizerRuns,
			},
			Codegen: CodegenViaIR,
		},
		ABIExporter: ABIExporterConfig{
			Path:         DefaultABIPath,
			RunOnCompile: true,
			Clear:        true,
			Flat:         true,
			Spacing:      DefaultABISpacing,
			Pretty:       true,
		},
		Typechain: TypechainConfig{
			OutDir: DefaultTypechainOutDir,
			Target: TypechainEthersV5,
		},
		Etherscan: EtherscanConfig{
			APIKey: None[string](),
		},
		GasReporter: GasReporterConfig{
			Enabled:          true,
			Currency:         DefaultGasCurrency,
			CoinmarketcapKey: DefaultCoinmarketcapKey,
		},
		Networks: map[string]NetworkProfile{
			LocalNetworkName: {
				Accounts: []string{},
				Limits: &ResourceLimits{
					BlockGasLimit: LocalBlockGasLimit,
					Gas:           LocalGasLimit,
				},
				Local: true,
			},
		},
		Plugins: append([]string(nil), DefaultPlugins...),
	}
}
