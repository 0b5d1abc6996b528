package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all terminal views.
const (
	ColorHeader    = lipgloss.Color("81")  // Section and view headings.
	ColorLabel     = lipgloss.Color("245") // Field labels and captions.
	ColorValue     = lipgloss.Color("252") // Field values.
	ColorMuted     = lipgloss.Color("241") // Help text and secondary information.
	ColorOK        = lipgloss.Color("42")  // Success and confirmation.
	ColorWarning   = lipgloss.Color("214") // Warnings and empty states.
	ColorBorder    = lipgloss.Color("240") // Table and box borders.
	ColorHighlight = lipgloss.Color("212") // Selected rows and focused elements.
)

// Shared styles built from the palette.
var (
	// HeaderStyle renders view titles.
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	// LabelStyle renders field labels and captions.
	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue)

	// SubtleStyle renders help text and secondary information.
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// WarningStyle renders warnings and empty-result notices.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)

	// TableHeaderStyle renders table column headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)

	// TableSelectedStyle renders the selected table row.
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
)
