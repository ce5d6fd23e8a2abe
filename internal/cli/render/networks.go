package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders the network profiles, with chain IDs when the
// endpoints were probed
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable(r.out)
	header := table.Row{"Name", "URL", "Accounts"}
	if result.Checked {
		header = append(header, "Chain ID", "Explorer")
	}
	t.AppendHeader(header)

	for _, n := range result.Networks {
		url := orNotSet(n.URL)
		if n.Local {
			url = faintColor.Sprint("(in-process)")
		}
		row := table.Row{n.Name, url, n.Accounts}

		if result.Checked {
			switch {
			case n.Local:
				row = append(row, faintColor.Sprint("-"), "")
			case n.Error != nil:
				row = append(row, errColor.Sprintf("❌ %v", n.Error), "")
			default:
				row = append(row, okColor.Sprintf("✅ %s", strconv.FormatUint(n.ChainID, 10)), n.ExplorerURL)
			}
		}
		t.AppendRow(row)
	}
	t.Render()

	return nil
}
