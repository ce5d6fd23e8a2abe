package network

import (
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// knownNetworks are the chains the prober can name without asking the node
var knownNetworks = []config.Network{
	{ChainID: 1, Name: "mainnet", ExplorerURL: "https://etherscan.io"},
	{ChainID: 5, Name: "goerli", ExplorerURL: "https://goerli.etherscan.io"},
	{ChainID: 11155111, Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io"},
	{ChainID: 17000, Name: "holesky", ExplorerURL: "https://holesky.etherscan.io"},
	{ChainID: 10, Name: "optimism", ExplorerURL: "https://optimistic.etherscan.io"},
	{ChainID: 42161, Name: "arbitrum", ExplorerURL: "https://arbiscan.io"},
	{ChainID: 137, Name: "polygon", ExplorerURL: "https://polygonscan.com"},
	{ChainID: 8453, Name: "base", ExplorerURL: "https://basescan.org"},
	{ChainID: 43114, Name: "avalanche", ExplorerURL: "https://snowtrace.io"},
	{ChainID: 56, Name: "bsc", ExplorerURL: "https://bscscan.com"},
	{ChainID: 31337, Name: "hardhat", RPCURL: "http://localhost:8545"},
}

var byChainID = func() map[uint64]config.Network {
	m := make(map[uint64]config.Network, len(knownNetworks))
	for _, n := range knownNetworks {
		m[n.ChainID] = n
	}
	return m
}()

// LookupChain returns the well-known network with the given chain ID
func LookupChain(chainID uint64) (config.Network, bool) {
	n, ok := byChainID[chainID]
	return n, ok
}
