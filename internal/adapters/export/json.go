package export

import (
	"encoding/json"
	"io"

	"github.com/trebuchet-org/solconf/internal/domain/config"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// JSONEncoder writes the record as indented JSON
type JSONEncoder struct{}

// NewJSONEncoder creates a new JSON encoder
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

func (e *JSONEncoder) Format() string { return "json" }

// Encode writes cfg, masking credentials unless revealed
func (e *JSONEncoder) Encode(w io.Writer, cfg *config.ToolchainConfig, opts usecase.EncodeOptions) error {
	if !opts.Reveal {
		cfg = cfg.Redacted()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(cfg)
}
