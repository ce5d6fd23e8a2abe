package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/solconf/internal/usecase"
)

// ValidateRenderer renders validation findings
type ValidateRenderer struct {
	out io.Writer
}

// NewValidateRenderer creates a new validate renderer
func NewValidateRenderer(out io.Writer) *ValidateRenderer {
	return &ValidateRenderer{out: out}
}

// RenderValidation prints each issue followed by a summary line
func (r *ValidateRenderer) RenderValidation(result *usecase.ValidateConfigResult) error {
	if len(result.Issues) == 0 {
		fmt.Fprintln(r.out, FormatSuccess("Configuration is valid"))
		return nil
	}

	for _, issue := range result.Issues {
		label := fmt.Sprintf("%-7s", Title(string(issue.Severity)))
		var icon string
		switch issue.Severity {
		case usecase.SeverityError:
			icon = errColor.Sprint("❌ " + label)
		case usecase.SeverityWarning:
			icon = warnColor.Sprint("⚠️  " + label)
		default:
			icon = headerColor.Sprint("ℹ️  " + label)
		}
		fmt.Fprintf(r.out, "%s %s %s\n", icon, labelColor.Sprint(issue.Field), issue.Message)
	}

	fmt.Fprintln(r.out)
	summary := fmt.Sprintf("%d error(s), %d warning(s), %d info",
		result.Count(usecase.SeverityError),
		result.Count(usecase.SeverityWarning),
		result.Count(usecase.SeverityInfo))
	if result.HasErrors() {
		fmt.Fprintln(r.out, FormatError(summary))
	} else {
		fmt.Fprintln(r.out, FormatWarning(summary))
	}
	return nil
}
