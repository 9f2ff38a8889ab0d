package render

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"parseit/internal/parse"
)

const maxColumnWidth = 40

var viewerStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

// viewerModel wraps a bubbles table for read-only browsing of a batch.
type viewerModel struct {
	table table.Model
}

func (m viewerModel) Init() tea.Cmd { return nil }

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Height > 4 {
			m.table.SetHeight(msg.Height - 4)
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	return viewerStyle.Render(m.table.View()) + "\n  q to quit\n"
}

// Interactive opens a scrollable terminal viewer over the batch.
func Interactive(batch *parse.RowBatch) error {
	columns := make([]table.Column, len(batch.Headers))
	for i, h := range batch.Headers {
		columns[i] = table.Column{Title: h, Width: columnWidth(batch, i, h)}
	}

	rows := make([]table.Row, len(batch.Records))
	for i, record := range batch.Records {
		rows[i] = table.Row(pad(record, len(batch.Headers)))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	_, err := tea.NewProgram(viewerModel{table: t}, tea.WithAltScreen()).Run()
	return err
}

// columnWidth sizes a column to its widest cell, capped to keep wide batches
// navigable. Widths count characters, not bytes: values decoded from
// Windows-1252 may hold multi-byte runes.
func columnWidth(batch *parse.RowBatch, col int, header string) int {
	width := utf8.RuneCountInString(header)
	for _, record := range batch.Records {
		if col < len(record) {
			if n := utf8.RuneCountInString(record[col]); n > width {
				width = n
			}
		}
	}
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	return width
}
