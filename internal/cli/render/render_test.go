package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func init() {
	color.NoColor = true
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "❌ Boom", FormatError("failed to load: boom"))
	assert.Equal(t, "✅ done", FormatSuccess("done"))
	assert.Equal(t, "⚠️  careful", FormatWarning("careful"))
	assert.Equal(t, "Gas Reporter", Title("gas reporter"))
}

func TestConfigRenderer(t *testing.T) {
	cfg := config.DefaultToolchainConfig()
	cfg.Networks["ETH"] = config.NetworkProfile{URL: "https://mainnet.example/rpc", Accounts: []string{"ac0974…ff80"}}

	var buf bytes.Buffer
	err := NewConfigRenderer(&buf).RenderConfig(&usecase.ShowConfigResult{
		Config:  cfg,
		EnvFile: "/nonexistent/.env",
		Variables: []usecase.VariableSource{
			{Name: "ETH_URL", Description: "RPC endpoint for the ETH network", Set: true},
			{Name: "GOERLI_URL", Description: "RPC endpoint for the Goerli network"},
		},
		Signers: []usecase.SignerInfo{{Network: "ETH", Key: "ac0974…ff80", Error: errors.New("bad")}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "(missing)")
	assert.Contains(t, out, "0.8.17")
	assert.Contains(t, out, "enabled (20 runs)")
	assert.Contains(t, out, "via-ir")
	assert.Contains(t, out, "./ABI")
	assert.Contains(t, out, "ethers-v5")
	assert.Contains(t, out, "https://mainnet.example/rpc")
	assert.Contains(t, out, "100000000")
	assert.Contains(t, out, "invalid key")
	assert.Contains(t, out, "ETH_URL")
	assert.Contains(t, out, "hardhat-abi-exporter")
}

func TestNetworksRenderer(t *testing.T) {
	t.Run("checked", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{
			Checked: true,
			Networks: []usecase.NetworkStatus{
				{Name: "ETH", URL: "https://mainnet.example/rpc", ChainID: 1, ExplorerURL: "https://etherscan.io"},
				{Name: "Goerli", Error: errors.New("empty RPC URL")},
				{Name: "hardhat", Local: true},
			},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "✅ 1")
		assert.Contains(t, out, "https://etherscan.io")
		assert.Contains(t, out, "empty RPC URL")
		assert.Contains(t, out, "(in-process)")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf).RenderNetworksList(&usecase.ListNetworksResult{}))
		assert.Equal(t, "No networks configured\n", buf.String())
	})
}

func TestValidateRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewValidateRenderer(&buf).RenderValidation(&usecase.ValidateConfigResult{}))
	assert.Contains(t, buf.String(), "Configuration is valid")

	buf.Reset()
	err := NewValidateRenderer(&buf).RenderValidation(&usecase.ValidateConfigResult{Issues: []usecase.Issue{
		{Severity: usecase.SeverityError, Field: "networks.ETH.url", Message: "URL has no host"},
		{Severity: usecase.SeverityWarning, Field: "etherscan.apiKey", Message: "not set"},
	}})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "networks.ETH.url URL has no host")
	assert.Contains(t, out, "1 error(s), 1 warning(s), 0 info")
}

func TestExportRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewExportRenderer(&buf).RenderExport(&usecase.ExportConfigResult{Format: "json", Content: []byte("{}\n")}))
	assert.Equal(t, "{}\n", buf.String())

	buf.Reset()
	require.NoError(t, NewExportRenderer(&buf).RenderExport(&usecase.ExportConfigResult{Format: "foundry", Path: "/tmp/out/foundry.toml"}))
	assert.Contains(t, buf.String(), "Wrote foundry config to")
}

func TestInitRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewInitRenderer(&buf).RenderInit(&usecase.InitEnvResult{
		Path: "/tmp/project/.env",
		Variables: []usecase.VariableSource{
			{Name: "ETH_URL", Set: true},
			{Name: "PRIVATE_KEY"},
		},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "✓ ETH_URL")
	assert.Contains(t, out, "PRIVATE_KEY (empty)")
	assert.Contains(t, out, "fall back to built-in defaults")
}
