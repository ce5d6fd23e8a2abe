package export

import (
	"fmt"
	"slices"
	"strings"

	"github.com/trebuchet-org/solconf/internal/domain"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// Registry holds the available record encoders keyed by format
type Registry struct {
	encoders map[string]usecase.ConfigEncoder
}

// NewRegistry creates a registry with every built-in encoder
func NewRegistry() *Registry {
	r := &Registry{encoders: make(map[string]usecase.ConfigEncoder)}
	for _, enc := range []usecase.ConfigEncoder{
		NewJSONEncoder(),
		NewYAMLEncoder(),
		NewFoundryEncoder(),
		NewDotenvEncoder(),
	} {
		r.encoders[enc.Format()] = enc
	}
	return r
}

// Get returns the encoder for format
func (r *Registry) Get(format string) (usecase.ConfigEncoder, error) {
	enc, ok := r.encoders[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w '%s' (available: %s)",
			domain.ErrUnsupportedFormat, format, strings.Join(r.Formats(), ", "))
	}
	return enc, nil
}

// Formats returns the supported format names in sorted order
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.encoders))
	for format := range r.encoders {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}

// Ensure the registry implements the interface
var _ usecase.EncoderRegistry = (*Registry)(nil)
