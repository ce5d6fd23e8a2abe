package interactive

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// Prompter asks for variable values on the terminal
type Prompter struct{}

// NewPrompter creates a new terminal prompter
func NewPrompter() *Prompter {
	return &Prompter{}
}

// PromptValue asks for a value, offering current as the default. Secrets
// are masked while typed.
func (p *Prompter) PromptValue(label, current string, secret bool) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | cyan }}: ",
		Success: "{{ . | green }}: ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Default:   current,
		AllowEdit: !secret,
		Templates: templates,
	}
	if secret {
		prompt.Mask = '*'
		if current != "" {
			prompt.Label = label + color.New(color.Faint).Sprint(" (enter keeps current)")
		}
	}

	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

var _ usecase.ValuePrompter = (*Prompter)(nil)
