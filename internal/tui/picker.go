package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column width constants for the part picker table.
const (
	pickerColWidthPartNumber   = 22
	pickerColWidthManufacturer = 20
	pickerColWidthDescription  = 36
	pickerColWidthAvailability = 14
	pickerColWidthPrice        = 10
	pickerColWidthSource       = 8

	// pickerDescTruncateLen is the maximum description length in table rows.
	pickerDescTruncateLen = 33

	// pickerMaxVisibleRows caps the table height before scrolling kicks in.
	pickerMaxVisibleRows = 12

	// pickerChromeHeight is the vertical space consumed by title, header, and help.
	pickerChromeHeight = 6
)

// Keyboard shortcuts recognized by the picker.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// noSelection marks a picker that has not confirmed a row.
const noSelection = -1

// PickItem is one selectable part in the picker table.
type PickItem struct {
	PartNumber   string // Manufacturer part number.
	Manufacturer string // Manufacturer display name.
	Description  string // Short product description.
	Availability string // Stock summary, e.g. "1500 In Stock".
	Price        string // Unit price at the lowest break, e.g. "$1.23".
	Source       string // Distributor that returned the part, e.g. "mouser".
}

// PickerModel is the Bubble Tea model for interactive part selection.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type PickerModel struct {
	// Content
	title string     // Heading shown above the table.
	items []PickItem // Candidate parts in display order.

	// Interactive components
	table table.Model

	// Selection state
	choice   int  // Index into items once confirmed, noSelection otherwise.
	quitting bool // True once the user confirmed or cancelled.

	// Layout
	width  int
	height int
}

// NewPickerModel creates a picker over the given parts. The title is shown
// above the table and should describe the search that produced the items.
func NewPickerModel(title string, items []PickItem) PickerModel {
	return PickerModel{
		title:  title,
		items:  items,
		table:  buildPickerTable(items, tableHeight(len(items), 0)),
		choice: noSelection,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input and terminal resizes.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(tableHeight(len(m.items), msg.Height))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyQuit, keyEsc, keyCtrlC:
			m.choice = noSelection
			m.quitting = true
			return m, tea.Quit
		case keyEnter:
			if len(m.items) > 0 {
				m.choice = m.table.Cursor()
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with title and keyboard help.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(WarningStyle.Render("No matching parts."))
		b.WriteString("\n\n")
		b.WriteString(SubtleStyle.Render("q: Quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%d of %d", m.table.Cursor()+1, len(m.items))))
	b.WriteString("\n")
	b.WriteString(renderPickerHelp())
	b.WriteString("\n")
	return b.String()
}

// Selection returns the confirmed part. The second return is false when the
// user cancelled or the picker has not finished.
func (m PickerModel) Selection() (PickItem, bool) {
	if m.choice == noSelection || m.choice >= len(m.items) {
		return PickItem{}, false
	}
	return m.items[m.choice], true
}

// SelectionIndex returns the confirmed row index into the original items
// slice. The second return is false when the user cancelled.
func (m PickerModel) SelectionIndex() (int, bool) {
	if m.choice == noSelection || m.choice >= len(m.items) {
		return 0, false
	}
	return m.choice, true
}

// RenderSelection formats a confirmation line for the chosen part.
func RenderSelection(item PickItem) string {
	okStyle := lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	return fmt.Sprintf("%s %s %s",
		okStyle.Render("Selected:"),
		ValueStyle.Render(item.PartNumber),
		SubtleStyle.Render("("+item.Source+")"),
	)
}

// buildPickerTable creates the table model with one row per part.
func buildPickerTable(items []PickItem, height int) table.Model {
	columns := []table.Column{
		{Title: "Part Number", Width: pickerColWidthPartNumber},
		{Title: "Manufacturer", Width: pickerColWidthManufacturer},
		{Title: "Description", Width: pickerColWidthDescription},
		{Title: "Availability", Width: pickerColWidthAvailability},
		{Title: "Price", Width: pickerColWidthPrice},
		{Title: "Source", Width: pickerColWidthSource},
	}

	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = table.Row{
			item.PartNumber,
			item.Manufacturer,
			truncateDescription(item.Description),
			item.Availability,
			item.Price,
			item.Source,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// tableHeight picks a table height for the given row count. A zero terminal
// height means the size is not yet known and only the row cap applies.
func tableHeight(rows, termHeight int) int {
	height := rows
	if height > pickerMaxVisibleRows {
		height = pickerMaxVisibleRows
	}
	if height < 1 {
		height = 1
	}
	if termHeight > 0 {
		available := termHeight - pickerChromeHeight
		if available < 1 {
			available = 1
		}
		if height > available {
			height = available
		}
	}
	return height
}

// truncateDescription shortens a description to fit its column.
func truncateDescription(desc string) string {
	if len(desc) <= pickerDescTruncateLen {
		return desc
	}
	return desc[:pickerDescTruncateLen] + "..."
}

func renderPickerHelp() string {
	shortcuts := []string{
		"↑/↓: Navigate",
		"Enter: Select",
		"Esc: Cancel",
	}
	return SubtleStyle.Render(strings.Join(shortcuts, " | "))
}
