package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/solconf/internal/usecase"
)

// FileWriterAdapter handles file system writes for exports
type FileWriterAdapter struct{}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// FileExists checks if a file exists
func (f *FileWriterAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteFile writes data to path, creating parent directories
func (f *FileWriterAdapter) WriteFile(ctx context.Context, path string, data []byte, perm uint32) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, os.FileMode(perm)); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file
	return os.Chmod(path, os.FileMode(perm))
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
