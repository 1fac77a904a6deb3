package cmdline

import "io"

// Prompt is printed at the start of every line. Parts are written in order,
// followed by a single space.
type Prompt struct {
	Parts []string
}

// NewPrompt builds a prompt from its parts.
func NewPrompt(parts ...string) Prompt {
	return Prompt{Parts: parts}
}

// Render moves to a fresh line and prints the prompt.
func (p Prompt) Render(w io.Writer) error {
	if _, err := io.WriteString(w, "\r"); err != nil {
		return err
	}
	for _, part := range p.Parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " ")
	return err
}
