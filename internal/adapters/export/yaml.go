package export

import (
	"io"

	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
	"gopkg.in/yaml.v3"
)

// YAMLEncoder writes the record as YAML
type YAMLEncoder struct{}

// NewYAMLEncoder creates a new YAML encoder
func NewYAMLEncoder() *YAMLEncoder {
	return &YAMLEncoder{}
}

func (e *YAMLEncoder) Format() string { return "yaml" }

// Encode writes cfg, masking credentials unless revealed
func (e *YAMLEncoder) Encode(w io.Writer, cfg *config.ToolchainConfig, opts usecase.EncodeOptions) error {
	if !opts.Reveal {
		cfg = cfg.Redacted()
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
