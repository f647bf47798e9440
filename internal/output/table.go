package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Table struct {
	Headers []string
	Rows    [][]string
}

func NewTable(headers []string) *Table {
	return &Table{Headers: headers}
}

func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

func (t *Table) String() string {
	rendered := table.New().Headers(t.Headers...)
	rendered = rendered.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Padding(0, 1)
		}
		return lipgloss.NewStyle().Padding(0, 1)
	})
	for _, row := range t.Rows {
		rendered.Row(row...)
	}
	return rendered.String()
}
