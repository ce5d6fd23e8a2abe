package network

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRPCServer(t *testing.T, chainID string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.Method != "eth_chainId" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": -32601, "message": "method not found"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  chainID,
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestProberChainID(t *testing.T) {
	server := newRPCServer(t, "0x5")

	chainID, err := NewProber().ChainID(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), chainID)
}

func TestProberUnreachable(t *testing.T) {
	server := newRPCServer(t, "0x1")
	url := server.URL
	server.Close()

	_, err := NewProber().ChainID(context.Background(), url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain ID")
}

func TestProberExplorerURL(t *testing.T) {
	p := NewProber()
	assert.Equal(t, "https://etherscan.io", p.ExplorerURL(1))
	assert.Equal(t, "https://goerli.etherscan.io", p.ExplorerURL(5))
	assert.Equal(t, "", p.ExplorerURL(31337))
	assert.Equal(t, "", p.ExplorerURL(999999))
}

func TestLookupChain(t *testing.T) {
	n, ok := LookupChain(11155111)
	require.True(t, ok)
	assert.Equal(t, "sepolia", n.Name)

	_, ok = LookupChain(0)
	assert.False(t, ok)
}
