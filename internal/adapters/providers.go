package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/solconf/internal/adapters/export"
	"github.com/trebuchet-org/solconf/internal/adapters/fs"
	"github.com/trebuchet-org/solconf/internal/adapters/interactive"
	"github.com/trebuchet-org/solconf/internal/adapters/network"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewEnvFileStoreAdapter,
	wire.Bind(new(usecase.EnvFileStore), new(*fs.EnvFileStoreAdapter)),
)

// ExportSet provides the record encoders
var ExportSet = wire.NewSet(
	export.NewRegistry,
	wire.Bind(new(usecase.EncoderRegistry), new(*export.Registry)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompter,
	wire.Bind(new(usecase.ValuePrompter), new(*interactive.Prompter)),

	interactive.NewFuzzyMatcher,
	wire.Bind(new(usecase.NameMatcher), new(*interactive.FuzzyMatcher)),
)

// NetworkSet provides RPC-backed implementations
var NetworkSet = wire.NewSet(
	network.NewProber,
	wire.Bind(new(usecase.ChainProber), new(*network.Prober)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ExportSet,
	InteractiveSet,
	NetworkSet,
)
