// Package render formats task lists as terminal tables.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fvilers/taskgo/internal/task"
)

// Options controls table styling.
type Options struct {
	DoneGlyph    string
	PendingGlyph string
	NoColor      bool
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	pendingStyle = lipgloss.NewStyle()
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	plainStyle   = lipgloss.NewStyle()
)

// Table renders tasks as a bordered table with ID, TASK, and STATUS
// columns. Done rows are dimmed and struck through. An empty list
// renders the header row only.
func Table(tasks task.List, opts Options) string {
	header := headerStyle
	border := borderStyle
	if opts.NoColor {
		header = plainStyle
		border = plainStyle
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.Description,
			statusCell(t.Done, opts),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("ID", "TASK", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			if opts.NoColor {
				return plainStyle.Padding(0, 1)
			}
			if row >= 0 && row < len(tasks) && tasks[row].Done {
				return doneStyle.Padding(0, 1)
			}
			return pendingStyle.Padding(0, 1)
		})

	return tbl.String()
}

// statusCell returns the checkbox glyph plus a word, so status stays
// readable without color support.
func statusCell(done bool, opts Options) string {
	if done {
		return opts.DoneGlyph + " done"
	}
	return opts.PendingGlyph + " todo"
}
