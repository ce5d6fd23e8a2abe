package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/solconf/internal/usecase"
)

// InitRenderer renders the result of scaffolding an env file
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{out: out}
}

// RenderInit lists the variables written and which were left empty
func (r *InitRenderer) RenderInit(result *usecase.InitEnvResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Wrote %s", getRelativePath(result.Path))))
	fmt.Fprintln(r.out)

	var empty int
	for _, v := range result.Variables {
		if v.Set {
			fmt.Fprintf(r.out, "  %s %s\n", okColor.Sprint("✓"), v.Name)
			continue
		}
		empty++
		fmt.Fprintf(r.out, "  %s %s %s\n", faintColor.Sprint("·"), v.Name, faintColor.Sprint("(empty)"))
	}

	if empty > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "Empty variables fall back to built-in defaults. Edit %s to fill them in.\n",
			getRelativePath(result.Path))
	}
	return nil
}
