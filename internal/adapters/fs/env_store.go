package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

const envFileHeader = "# Generated by solconf. Empty values fall back to built-in defaults.\n"

// EnvFileStoreAdapter implements EnvFileStore using the file system
type EnvFileStoreAdapter struct{}

// NewEnvFileStoreAdapter creates a new EnvFileStoreAdapter
func NewEnvFileStoreAdapter() *EnvFileStoreAdapter {
	return &EnvFileStoreAdapter{}
}

// Exists checks if the env file exists
func (s *EnvFileStoreAdapter) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Write saves values as a dotenv file readable only by the owner
func (s *EnvFileStoreAdapter) Write(ctx context.Context, path string, values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode env file: %w", err)
	}

	if err := os.WriteFile(path, []byte(envFileHeader+content+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}
	return os.Chmod(path, 0600)
}

var _ usecase.EnvFileStore = (*EnvFileStoreAdapter)(nil)
