package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/trebuchet-org/solconf/internal/domain"
)

// Environment is an explicit snapshot of environment variables. Assembly
// reads only from an Environment, never from the process directly.
type Environment map[string]string

// ProcessEnvironment snapshots the current process environment
func ProcessEnvironment() Environment {
	return ParseEnviron(os.Environ())
}

// ParseEnviron builds an Environment from KEY=VALUE pairs as returned by
// os.Environ. Entries without '=' are ignored.
func ParseEnviron(pairs []string) Environment {
	env := make(Environment, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Lookup returns the value of name and whether it is defined
func (e Environment) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}

// Value returns the value of name, or "" when undefined
func (e Environment) Value(name string) string {
	return e[name]
}

// IsSet reports whether name is defined with a non-empty value
func (e Environment) IsSet(name string) bool {
	return e[name] != ""
}

// WithDefaults returns a new Environment holding e overlaid on defaults.
// Names already defined in e keep their value, even when empty.
func (e Environment) WithDefaults(defaults Environment) Environment {
	merged := make(Environment, len(e)+len(defaults))
	maps.Copy(merged, defaults)
	maps.Copy(merged, e)
	return merged
}

// ReadEnvFile parses a dotenv file without touching the process environment
func ReadEnvFile(path string) (Environment, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEnvFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Environment(values), nil
}

// LoadEnvironment returns base overlaid on the values of the env file at
// path. Reading the file is best-effort: a missing file is skipped silently
// and an unreadable one is skipped with a warning.
func LoadEnvironment(base Environment, path string, logger *slog.Logger) Environment {
	if path == "" {
		return base.WithDefaults(nil)
	}

	fileEnv, err := ReadEnvFile(path)
	if err != nil {
		if errors.Is(err, domain.ErrEnvFileNotFound) {
			logger.Debug("env file not found, using process environment only", "path", path)
		} else {
			logger.Warn("ignoring env file", "path", path, "error", err)
		}
		return base.WithDefaults(nil)
	}

	logger.Debug("loaded env file", "path", path, "vars", len(fileEnv))
	return base.WithDefaults(fileEnv)
}

// Inject exports the values of e into the process environment so child
// toolchain processes see them. Names already defined in the process are
// left untouched.
func (e Environment) Inject() error {
	for name, value := range e {
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			return fmt.Errorf("failed to export %s: %w", name, err)
		}
	}
	return nil
}
