package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	Name  string // optional, restricts the listing to one profile
	Check bool   // probe each endpoint for its chain ID
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Checked  bool
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name        string
	URL         string
	Local       bool
	Accounts    int
	Limits      *config.ResourceLimits
	ChainID     uint64
	ExplorerURL string
	Error       error
}

// ListNetworks is a use case for listing the record's network profiles
type ListNetworks struct {
	runtime   *config.RuntimeConfig
	toolchain *config.ToolchainConfig
	prober    ChainProber
	matcher   NameMatcher
	progress  ProgressSink
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(
	runtime *config.RuntimeConfig,
	toolchain *config.ToolchainConfig,
	prober ChainProber,
	matcher NameMatcher,
	progress ProgressSink,
) *ListNetworks {
	return &ListNetworks{
		runtime:   runtime,
		toolchain: toolchain,
		prober:    prober,
		matcher:   matcher,
		progress:  progress,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.toolchain.NetworkNames()
	if params.Name != "" {
		name, err := uc.resolveName(params.Name)
		if err != nil {
			return nil, err
		}
		names = []string{name}
	}

	networks := make([]NetworkStatus, 0, len(names))
	var probed, reachable int
	for i, name := range names {
		profile := uc.toolchain.Networks[name]
		status := NetworkStatus{
			Name:     name,
			URL:      profile.URL,
			Local:    profile.Local,
			Accounts: len(profile.Accounts),
			Limits:   profile.Limits,
		}

		if params.Check && !profile.Local {
			uc.progress.OnProgress(ctx, ProgressEvent{
				Stage:   "probe",
				Current: i + 1,
				Total:   len(names),
				Message: fmt.Sprintf("Checking %s...", name),
				Spinner: true,
			})
			uc.probe(ctx, &status)
			probed++
			if status.Error != nil {
				uc.progress.Error(fmt.Sprintf("%s: %v", name, status.Error))
			} else {
				reachable++
			}
		}

		networks = append(networks, status)
	}

	if params.Check {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "probe", Current: len(names), Total: len(names)})
		if probed > 0 {
			uc.progress.Info(fmt.Sprintf("%d of %d remote networks reachable", reachable, probed))
		}
	}

	return &ListNetworksResult{
		Networks: networks,
		Checked:  params.Check,
	}, nil
}

// probe fetches the chain ID of a single profile within the runtime timeout
func (uc *ListNetworks) probe(ctx context.Context, status *NetworkStatus) {
	if status.URL == "" {
		status.Error = domain.ErrEmptyRPCURL
		return
	}

	timeout := uc.runtime.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chainID, err := uc.prober.ChainID(ctx, status.URL)
	if err != nil {
		status.Error = err
		return
	}
	status.ChainID = chainID
	status.ExplorerURL = uc.prober.ExplorerURL(chainID)
}

// resolveName finds a profile by exact name, then by a unique
// case-insensitive match
func (uc *ListNetworks) resolveName(name string) (string, error) {
	if _, ok := uc.toolchain.Networks[name]; ok {
		return name, nil
	}

	candidates := uc.toolchain.NetworkNames()
	var folded []string
	for _, candidate := range candidates {
		if strings.EqualFold(candidate, name) {
			folded = append(folded, candidate)
		}
	}
	if len(folded) == 1 {
		return folded[0], nil
	}

	return "", domain.NetworkNotFoundError{
		Name:        name,
		Suggestions: uc.matcher.Suggest(name, candidates),
	}
}
