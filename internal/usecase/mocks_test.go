package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

const (
	testKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// MockChainProber is a mock implementation of ChainProber
type MockChainProber struct {
	mock.Mock
}

func (m *MockChainProber) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainProber) ExplorerURL(chainID uint64) string {
	args := m.Called(chainID)
	return args.String(0)
}

// MockNameMatcher is a mock implementation of NameMatcher
type MockNameMatcher struct {
	mock.Mock
}

func (m *MockNameMatcher) Suggest(name string, candidates []string) []string {
	args := m.Called(name, candidates)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, data []byte, perm uint32) error {
	args := m.Called(ctx, path, data, perm)
	return args.Error(0)
}

// MockEnvFileStore is a mock implementation of EnvFileStore
type MockEnvFileStore struct {
	mock.Mock
}

func (m *MockEnvFileStore) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockEnvFileStore) Write(ctx context.Context, path string, values map[string]string) error {
	args := m.Called(ctx, path, values)
	return args.Error(0)
}

// MockValuePrompter is a mock implementation of ValuePrompter
type MockValuePrompter struct {
	mock.Mock
}

func (m *MockValuePrompter) PromptValue(label, current string, secret bool) (string, error) {
	args := m.Called(label, current, secret)
	return args.String(0), args.Error(1)
}

// nopProgress discards all progress output
type nopProgress struct{}

func (nopProgress) OnProgress(context.Context, usecase.ProgressEvent) {}
func (nopProgress) Info(string)                                       {}
func (nopProgress) Error(string)                                      {}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

// stubEncoder writes a fixed marker so tests can tell encoders apart
type stubEncoder struct {
	format string
	opts   *usecase.EncodeOptions
}

func (e *stubEncoder) Format() string { return e.format }

func (e *stubEncoder) Encode(w io.Writer, cfg *config.ToolchainConfig, opts usecase.EncodeOptions) error {
	e.opts = &opts
	_, err := io.WriteString(w, e.format+":"+cfg.Solidity.Version)
	return err
}

// stubRegistry serves a single encoder
type stubRegistry struct {
	encoder *stubEncoder
	err     error
}

func (r *stubRegistry) Get(format string) (usecase.ConfigEncoder, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.encoder, nil
}

func (r *stubRegistry) Formats() []string { return []string{r.encoder.format} }
