package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/solconf/internal/domain/config"
)

// ExportConfigParams contains parameters for exporting the record
type ExportConfigParams struct {
	Format string
	Output string // file path; empty means return the content
	Reveal bool
	Force  bool
}

// ExportConfigResult contains the result of an export
type ExportConfigResult struct {
	Format  string
	Path    string // empty when not written to a file
	Content []byte
}

// ExportConfig is a use case for encoding the record for external tooling
type ExportConfig struct {
	runtime   *config.RuntimeConfig
	toolchain *config.ToolchainConfig
	encoders  EncoderRegistry
	writer    FileWriter
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(
	runtime *config.RuntimeConfig,
	toolchain *config.ToolchainConfig,
	encoders EncoderRegistry,
	writer FileWriter,
) *ExportConfig {
	return &ExportConfig{
		runtime:   runtime,
		toolchain: toolchain,
		encoders:  encoders,
		writer:    writer,
	}
}

// Run executes the export use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	encoder, err := uc.encoders.Get(params.Format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encoder.Encode(&buf, uc.toolchain, EncodeOptions{Reveal: params.Reveal}); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", encoder.Format(), err)
	}

	result := &ExportConfigResult{
		Format:  encoder.Format(),
		Content: buf.Bytes(),
	}

	if params.Output == "" {
		return result, nil
	}

	path := params.Output
	if !filepath.IsAbs(path) {
		path = filepath.Join(uc.runtime.ProjectRoot, path)
	}

	exists, err := uc.writer.FileExists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists && !params.Force {
		return nil, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	// revealed output carries credentials
	perm := uint32(0644)
	if params.Reveal {
		perm = 0600
	}
	if err := uc.writer.WriteFile(ctx, path, result.Content, perm); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	result.Path = path

	return result, nil
}
