package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// ConfigRenderer renders the assembled record for humans
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the record, the env file and the variable sources
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	cfg := result.Config

	envFile := getRelativePath(result.EnvFile)
	if !result.EnvFileExists {
		envFile += faintColor.Sprint(" (missing)")
	}
	fmt.Fprintf(r.out, "📁 Env file: %s\n\n", envFile)

	codegen := string(cfg.Solidity.Codegen)
	renderSection(r.out, "Solidity", [][2]string{
		{"Version", cfg.Solidity.Version},
		{"Optimizer", fmt.Sprintf("%s (%d runs)", enabled(cfg.Solidity.Optimizer.Enabled), cfg.Solidity.Optimizer.Runs)},
		{"Codegen", codegen},
	})

	renderSection(r.out, "ABI Exporter", [][2]string{
		{"Path", cfg.ABIExporter.Path},
		{"Run on compile", yesNo(cfg.ABIExporter.RunOnCompile)},
		{"Clear", yesNo(cfg.ABIExporter.Clear)},
		{"Flat", yesNo(cfg.ABIExporter.Flat)},
		{"Format", fmt.Sprintf("pretty=%s spacing=%d", yesNo(cfg.ABIExporter.Pretty), cfg.ABIExporter.Spacing)},
	})

	renderSection(r.out, "Typechain", [][2]string{
		{"Out dir", cfg.Typechain.OutDir},
		{"Target", string(cfg.Typechain.Target)},
	})

	renderSection(r.out, "Verification", [][2]string{
		{"API key", orNotSet(cfg.Etherscan.APIKey.OrElse(""))},
	})

	renderSection(r.out, "Gas Reporter", [][2]string{
		{"Enabled", yesNo(cfg.GasReporter.Enabled)},
		{"Currency", cfg.GasReporter.Currency},
		{"Price feed key", orNotSet(cfg.GasReporter.CoinmarketcapKey)},
	})

	headerColor.Fprintln(r.out, "Networks")
	r.renderNetworks(cfg)
	fmt.Fprintln(r.out)

	if len(result.Signers) > 0 {
		headerColor.Fprintln(r.out, "Signers")
		t := newTable(r.out)
		t.AppendHeader(table.Row{"Network", "Key", "Address"})
		for _, s := range result.Signers {
			address := s.Address.Hex()
			if s.Error != nil {
				address = errColor.Sprint("invalid key")
			}
			t.AppendRow(table.Row{s.Network, s.Key, address})
		}
		t.Render()
		fmt.Fprintln(r.out)
	}

	headerColor.Fprintln(r.out, "Environment")
	t := newTable(r.out)
	t.AppendHeader(table.Row{"Variable", "Status", "Description"})
	for _, v := range result.Variables {
		status := faintColor.Sprint("default")
		if v.Set {
			status = okColor.Sprint("set")
		}
		t.AppendRow(table.Row{v.Name, status, v.Description})
	}
	t.Render()

	if len(cfg.Plugins) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "🔌 Plugins: %s\n", strings.Join(cfg.Plugins, ", "))
	}

	return nil
}

func (r *ConfigRenderer) renderNetworks(cfg *config.ToolchainConfig) {
	t := newTable(r.out)
	t.AppendHeader(table.Row{"Name", "URL", "Accounts", "Block Gas Limit", "Gas"})
	for _, name := range cfg.NetworkNames() {
		n := cfg.Networks[name]
		url := orNotSet(n.URL)
		if n.Local {
			url = faintColor.Sprint("(in-process)")
		}
		blockGas, gas := "-", "-"
		if n.Limits != nil {
			blockGas = strconv.FormatUint(n.Limits.BlockGasLimit, 10)
			gas = strconv.FormatUint(n.Limits.Gas, 10)
		}
		t.AppendRow(table.Row{name, url, len(n.Accounts), blockGas, gas})
	}
	t.Render()
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
