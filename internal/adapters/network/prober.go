package network

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// Prober implements ChainProber using ethclient
type Prober struct{}

// NewProber creates a new chain prober
func NewProber() *Prober {
	return &Prober{}
}

// ChainID dials rpcURL and asks the node for its chain ID
func (p *Prober) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// ExplorerURL returns the block explorer of a well-known chain, or ""
func (p *Prober) ExplorerURL(chainID uint64) string {
	n, _ := LookupChain(chainID)
	return n.ExplorerURL
}

var _ usecase.ChainProber = (*Prober)(nil)
