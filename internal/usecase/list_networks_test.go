package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	internalconfig "github.com/trebuchet-org/solconf/internal/config"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func TestListNetworks(t *testing.T) {
	ctx := context.Background()
	runtime := &config.RuntimeConfig{Timeout: time.Second}
	toolchain := internalconfig.Assemble(internalconfig.Environment{
		"ETH_URL":     "https://mainnet.example/rpc",
		"PRIVATE_KEY": testKey,
	})

	t.Run("lists all profiles without probing", func(t *testing.T) {
		prober := &MockChainProber{}
		uc := usecase.NewListNetworks(runtime, toolchain, prober, &MockNameMatcher{}, nopProgress{})

		result, err := uc.Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)

		require.Len(t, result.Networks, 3)
		assert.False(t, result.Checked)
		assert.Equal(t, "ETH", result.Networks[0].Name)
		assert.Equal(t, 1, result.Networks[0].Accounts)
		assert.Equal(t, "Goerli", result.Networks[1].Name)
		assert.Equal(t, "hardhat", result.Networks[2].Name)
		assert.True(t, result.Networks[2].Local)
		assert.Equal(t, uint64(100_000_000), result.Networks[2].Limits.BlockGasLimit)
		prober.AssertNotCalled(t, "ChainID", mock.Anything, mock.Anything)
	})

	t.Run("checks remote profiles", func(t *testing.T) {
		prober := &MockChainProber{}
		prober.On("ChainID", mock.Anything, "https://mainnet.example/rpc").Return(uint64(1), nil)
		prober.On("ExplorerURL", uint64(1)).Return("https://etherscan.io")
		sink := &MockProgressSink{}

		uc := usecase.NewListNetworks(runtime, toolchain, prober, &MockNameMatcher{}, sink)
		result, err := uc.Run(ctx, usecase.ListNetworksParams{Check: true})
		require.NoError(t, err)

		assert.True(t, result.Checked)
		eth := result.Networks[0]
		assert.NoError(t, eth.Error)
		assert.Equal(t, uint64(1), eth.ChainID)
		assert.Equal(t, "https://etherscan.io", eth.ExplorerURL)

		goerli := result.Networks[1]
		assert.ErrorIs(t, goerli.Error, domain.ErrEmptyRPCURL)

		hardhat := result.Networks[2]
		assert.NoError(t, hardhat.Error)
		assert.Zero(t, hardhat.ChainID)

		prober.AssertExpectations(t)
		require.NotEmpty(t, sink.events)
		assert.False(t, sink.events[len(sink.events)-1].Spinner)
		require.Len(t, sink.errors, 1)
		assert.Contains(t, sink.errors[0], "Goerli: ")
		assert.Equal(t, []string{"1 of 2 remote networks reachable"}, sink.infos)
	})

	t.Run("unreachable endpoint is reported per network", func(t *testing.T) {
		prober := &MockChainProber{}
		prober.On("ChainID", mock.Anything, mock.Anything).Return(uint64(0), errors.New("connection refused"))
		sink := &MockProgressSink{}

		uc := usecase.NewListNetworks(runtime, toolchain, prober, &MockNameMatcher{}, sink)
		result, err := uc.Run(ctx, usecase.ListNetworksParams{Name: "ETH", Check: true})
		require.NoError(t, err)

		require.Len(t, result.Networks, 1)
		assert.EqualError(t, result.Networks[0].Error, "connection refused")
		assert.Equal(t, []string{"ETH: connection refused"}, sink.errors)
		assert.Equal(t, []string{"0 of 1 remote networks reachable"}, sink.infos)
	})

	t.Run("listing without checks reports nothing", func(t *testing.T) {
		sink := &MockProgressSink{}
		uc := usecase.NewListNetworks(runtime, toolchain, &MockChainProber{}, &MockNameMatcher{}, sink)
		_, err := uc.Run(ctx, usecase.ListNetworksParams{})
		require.NoError(t, err)

		assert.Empty(t, sink.events)
		assert.Empty(t, sink.errors)
		assert.Empty(t, sink.infos)
	})

	t.Run("resolves case-insensitive name", func(t *testing.T) {
		uc := usecase.NewListNetworks(runtime, toolchain, &MockChainProber{}, &MockNameMatcher{}, nopProgress{})
		result, err := uc.Run(ctx, usecase.ListNetworksParams{Name: "goerli"})
		require.NoError(t, err)
		require.Len(t, result.Networks, 1)
		assert.Equal(t, "Goerli", result.Networks[0].Name)
	})

	t.Run("unknown name suggests matches", func(t *testing.T) {
		matcher := &MockNameMatcher{}
		matcher.On("Suggest", "mainnet", []string{"ETH", "Goerli", "hardhat"}).Return([]string{"ETH"})

		uc := usecase.NewListNetworks(runtime, toolchain, &MockChainProber{}, matcher, nopProgress{})
		_, err := uc.Run(ctx, usecase.ListNetworksParams{Name: "mainnet"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)

		var notFound domain.NetworkNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{"ETH"}, notFound.Suggestions)
	})
}
