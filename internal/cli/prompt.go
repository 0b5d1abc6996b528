package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akiselev/datasheet/internal/tui"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes")
	Accepted bool
	// Cancelled is true if reading input failed (e.g., Ctrl+C closed stdin)
	Cancelled bool
}

// Confirm asks a yes/no question and reads one line of input. It returns
// immediately with Accepted=false in non-interactive (non-TTY) environments,
// so destructive commands abort unless --force is given.
//
// The prompt defaults to "No" when the user presses Enter without input.
// Valid inputs: "y", "Y", "yes", "Yes", "YES" for acceptance; anything else
// declines.
func Confirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	if !tui.IsTTY() {
		return PromptResult{Accepted: false}
	}

	fmt.Fprintf(writer, "? %s [y/N] ", question)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		// EOF or error; an explicit error means the read was interrupted
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		return PromptResult{Accepted: false}
	}

	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(input) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
