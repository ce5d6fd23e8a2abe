package usecase

import (
	"context"
	"io"

	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ChainProber queries a network's RPC endpoint
type ChainProber interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
	ExplorerURL(chainID uint64) string
}

// EncodeOptions controls how a record is encoded
type EncodeOptions struct {
	// Reveal writes credentials as-is instead of masking or referencing them
	Reveal bool
}

// ConfigEncoder writes the toolchain record in one output format
type ConfigEncoder interface {
	Format() string
	Encode(w io.Writer, cfg *config.ToolchainConfig, opts EncodeOptions) error
}

// EncoderRegistry looks up encoders by format name
type EncoderRegistry interface {
	Get(format string) (ConfigEncoder, error)
	Formats() []string
}

// FileWriter handles file system writes
type FileWriter interface {
	FileExists(ctx context.Context, path string) (bool, error)
	WriteFile(ctx context.Context, path string, data []byte, perm uint32) error
}

// EnvFileStore writes dotenv files
type EnvFileStore interface {
	Exists(path string) bool
	Write(ctx context.Context, path string, values map[string]string) error
}

// ValuePrompter asks the user for a variable value
type ValuePrompter interface {
	PromptValue(label string, current string, secret bool) (string, error)
}

// NameMatcher suggests close matches for a mistyped name
type NameMatcher interface {
	Suggest(name string, candidates []string) []string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
