package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/vonsh/internal/menu"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	captionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	editStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// RenderMenu draws m as a centered box. Consecutive table rows are shown
// as one table.
func RenderMenu(m *menu.Menu, width, height int) string {
	var lines []string
	lines = append(lines, titleStyle.Render(m.Title))

	items := m.Items()
	for i := 0; i < len(items); i++ {
		if _, ok := items[i].(menu.TableRow); ok {
			j := i
			for j < len(items) {
				if _, ok := items[j].(menu.TableRow); !ok {
					break
				}
				j++
			}
			lines = append(lines, renderTable(items[i:j]), "")
			i = j - 1
			continue
		}
		lines = append(lines, renderItem(m, i))
	}

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderItem(m *menu.Menu, i int) string {
	text := m.ItemText(i)
	it := m.Items()[i]
	switch {
	case i == m.Cursor() && m.Editing():
		return editStyle.Render("> " + text + " <")
	case i == m.Cursor():
		return selectedStyle.Render("> " + text + " <")
	case isCaption(it):
		return captionStyle.Render(text)
	case !it.Selectable():
		return disabledStyle.Render(text)
	}
	return itemStyle.Render(text)
}

func isCaption(it menu.Item) bool {
	l, ok := it.(menu.Label)
	return ok && l.Caption
}

// renderTable shows table rows with bubbles/table. A header row, if
// present, supplies the column titles.
func renderTable(rows []menu.Item) string {
	var header []string
	var body []table.Row
	for _, it := range rows {
		r := it.(menu.TableRow)
		if r.Header && header == nil {
			header = r.Cells
			continue
		}
		body = append(body, table.Row(r.Cells))
	}

	cols := 0
	for _, r := range body {
		cols = max(cols, len(r))
	}
	cols = max(cols, len(header))

	widths := make([]int, cols)
	for i, h := range header {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, r := range body {
		for i, c := range r {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	columns := make([]table.Column, cols)
	for i := range columns {
		title := ""
		if i < len(header) {
			title = header[i]
		}
		columns[i] = table.Column{Title: title, Width: widths[i] + 1}
	}
	for i, r := range body {
		if len(r) < cols {
			body[i] = append(r, make([]string, cols-len(r))...)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(body),
		table.WithFocused(false),
		table.WithHeight(len(body)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Rows are not selectable; keep the first one unhighlighted.
	s.Selected = s.Cell
	t.SetStyles(s)
	return t.View()
}
