package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akiselev/datasheet/internal/tui"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// Source labels attached to rows that mix results from both distributors.
const (
	sourceMouser  = "mouser"
	sourceDigikey = "digikey"
)

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// filenameSanitizer maps characters that are unsafe in filenames to '_'.
var filenameSanitizer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// sanitizeFilename makes a part number safe to use as a filename.
func sanitizeFilename(name string) string {
	return filenameSanitizer.Replace(name)
}

// datasheetPath picks the destination for a downloaded datasheet: the
// --output path verbatim when given, otherwise <part number>.pdf inside
// --dir. The directory is created when it does not exist.
func datasheetPath(output, dir, partNumber string) (string, error) {
	if output != "" {
		return output, nil
	}

	filename := sanitizeFilename(partNumber) + ".pdf"
	if dir == "" {
		return filename, nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return filepath.Join(dir, filename), nil
}

// runPicker starts the interactive part picker over items and returns the
// selected row index. The boolean is false when the user cancelled.
func runPicker(title string, items []tui.PickItem) (int, bool, error) {
	if !tui.IsTTY() {
		return 0, false, errors.New("--pick requires an interactive terminal")
	}

	program := tea.NewProgram(tui.NewPickerModel(title, items))
	finalModel, err := program.Run()
	if err != nil {
		return 0, false, fmt.Errorf("failed to run part picker: %w", err)
	}

	model, ok := finalModel.(tui.PickerModel)
	if !ok {
		return 0, false, errors.New("unexpected picker model type")
	}

	idx, selected := model.SelectionIndex()
	return idx, selected, nil
}
