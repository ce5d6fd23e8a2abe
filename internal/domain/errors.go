package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNetworkNotFound is returned when a network profile doesn't exist
	ErrNetworkNotFound = errors.New("network not found")

	// ErrEnvFileNotFound is returned when the env file to read doesn't exist
	ErrEnvFileNotFound = errors.New("env file not found")

	// ErrEnvFileExists is returned when refusing to overwrite an env file
	ErrEnvFileExists = errors.New("env file already exists")

	// ErrUnsupportedFormat is returned for an unknown output format
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrEmptyRPCURL is returned when probing a network without an endpoint
	ErrEmptyRPCURL = errors.New("rpc url is empty")

	// ErrInvalidPrivateKey is returned when a signing key can't be parsed
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// NetworkNotFoundError reports an unknown network profile name together
// with close matches
type NetworkNotFoundError struct {
	Name        string
	Suggestions []string
}

func (e NetworkNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' not found", e.Name)
	}
	return fmt.Sprintf("network '%s' not found, did you mean: %s?",
		e.Name, strings.Join(e.Suggestions, ", "))
}

func (e NetworkNotFoundError) Unwrap() error {
	return ErrNetworkNotFound
}
