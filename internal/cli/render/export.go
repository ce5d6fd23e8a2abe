package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/solconf/internal/usecase"
)

// ExportRenderer renders export results
type ExportRenderer struct {
	out io.Writer
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer) *ExportRenderer {
	return &ExportRenderer{out: out}
}

// RenderExport prints the encoded content, or a confirmation when it was
// written to a file
func (r *ExportRenderer) RenderExport(result *usecase.ExportConfigResult) error {
	if result.Path == "" {
		_, err := r.out.Write(result.Content)
		return err
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %s config to %s", result.Format, getRelativePath(result.Path))))
	return nil
}
