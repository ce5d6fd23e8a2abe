package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func TestExportConfig(t *testing.T) {
	ctx := context.Background()
	runtime := &config.RuntimeConfig{ProjectRoot: "/project"}
	toolchain := config.DefaultToolchainConfig()

	t.Run("returns content without output", func(t *testing.T) {
		encoder := &stubEncoder{format: "json"}
		writer := &MockFileWriter{}
		uc := usecase.NewExportConfig(runtime, toolchain, &stubRegistry{encoder: encoder}, writer)

		result, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "json"})
		require.NoError(t, err)
		assert.Equal(t, "json", result.Format)
		assert.Equal(t, "json:0.8.17", string(result.Content))
		assert.Empty(t, result.Path)
		assert.False(t, encoder.opts.Reveal)
		writer.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("writes relative output under the project root", func(t *testing.T) {
		writer := &MockFileWriter{}
		writer.On("FileExists", ctx, "/project/foundry.toml").Return(false, nil)
		writer.On("WriteFile", ctx, "/project/foundry.toml", []byte("foundry:0.8.17"), uint32(0644)).Return(nil)

		uc := usecase.NewExportConfig(runtime, toolchain, &stubRegistry{encoder: &stubEncoder{format: "foundry"}}, writer)
		result, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "foundry", Output: "foundry.toml"})
		require.NoError(t, err)
		assert.Equal(t, "/project/foundry.toml", result.Path)
		writer.AssertExpectations(t)
	})

	t.Run("revealed output is owner-only", func(t *testing.T) {
		encoder := &stubEncoder{format: "env"}
		writer := &MockFileWriter{}
		writer.On("FileExists", ctx, "/tmp/out.env").Return(false, nil)
		writer.On("WriteFile", ctx, "/tmp/out.env", mock.Anything, uint32(0600)).Return(nil)

		uc := usecase.NewExportConfig(runtime, toolchain, &stubRegistry{encoder: encoder}, writer)
		_, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "env", Output: "/tmp/out.env", Reveal: true})
		require.NoError(t, err)
		assert.True(t, encoder.opts.Reveal)
		writer.AssertExpectations(t)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		writer := &MockFileWriter{}
		writer.On("FileExists", ctx, "/project/out.json").Return(true, nil)

		uc := usecase.NewExportConfig(runtime, toolchain, &stubRegistry{encoder: &stubEncoder{format: "json"}}, writer)
		_, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "json", Output: "out.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		writer.On("WriteFile", ctx, "/project/out.json", mock.Anything, uint32(0644)).Return(nil)
		_, err = uc.Run(ctx, usecase.ExportConfigParams{Format: "json", Output: "out.json", Force: true})
		require.NoError(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		registry := &stubRegistry{encoder: &stubEncoder{format: "json"}, err: domain.ErrUnsupportedFormat}
		uc := usecase.NewExportConfig(runtime, toolchain, registry, &MockFileWriter{})
		_, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "xml"})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("write failure", func(t *testing.T) {
		writer := &MockFileWriter{}
		writer.On("FileExists", ctx, "/project/out.json").Return(false, nil)
		writer.On("WriteFile", ctx, "/project/out.json", mock.Anything, uint32(0644)).Return(errors.New("disk full"))

		uc := usecase.NewExportConfig(runtime, toolchain, &stubRegistry{encoder: &stubEncoder{format: "json"}}, writer)
		_, err := uc.Run(ctx, usecase.ExportConfigParams{Format: "json", Output: "out.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
