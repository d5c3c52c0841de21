// Package ui provides the optional interactive terminal view.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fvilers/taskgo/internal/config"
	"github.com/fvilers/taskgo/internal/task"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	cursorStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Run starts the interactive view with the given config.
func Run(ctx context.Context, cfg *config.Config) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("ui requires a TTY")
	}

	model := newModel(cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*uiModel); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}

type uiModel struct {
	cfg       *config.Config
	store     *task.Store
	tasks     task.List
	cursor    int
	statusErr error
	fatalErr  error
}

func newModel(cfg *config.Config) *uiModel {
	return &uiModel{
		cfg:   cfg,
		store: task.NewStore(cfg.TasksFile),
	}
}

func (m *uiModel) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil
		case " ", "enter":
			m.toggleDone()
			return m, nil
		case "d", "x":
			m.deleteCurrent()
			return m, nil
		case "r", "f5":
			m.reload()
			return m, nil
		}
	}
	return m, nil
}

func (m *uiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Taskgo") + "\n\n")

	if m.fatalErr != nil {
		b.WriteString(errorStyle.Render("Error: "+m.fatalErr.Error()) + "\n\n")
		b.WriteString(footer())
		return b.String()
	}

	if len(m.tasks) == 0 {
		b.WriteString("  No tasks. Add one with: taskgo add <description>\n\n")
	}

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		glyph := m.cfg.PendingGlyph
		line := fmt.Sprintf("%d %s %s", t.ID, glyph, t.Description)
		if t.Done {
			line = fmt.Sprintf("%d %s %s", t.ID, m.cfg.DoneGlyph, t.Description)
			line = doneStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n")

	if m.statusErr != nil {
		b.WriteString(errorStyle.Render("Error: "+m.statusErr.Error()) + "\n\n")
	}

	b.WriteString(footer())
	return b.String()
}

func footer() string {
	return footerStyle.Render("space toggle | d delete | r reload | q quit") + "\n"
}

// reload re-reads the task file. A load failure ends the program with
// the error so the process exit code reflects it.
func (m *uiModel) reload() {
	list, err := m.store.Load()
	if err != nil {
		m.fatalErr = err
		return
	}
	list.SortByID()
	m.tasks = list
	m.clampCursor()
	m.statusErr = nil
}

func (m *uiModel) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// toggleDone flips the done flag of the task under the cursor and
// writes through to the store.
func (m *uiModel) toggleDone() {
	if m.cursor >= len(m.tasks) {
		return
	}
	t := m.tasks[m.cursor]
	if err := m.tasks.SetDone(t.ID, !t.Done); err != nil {
		m.statusErr = err
		return
	}
	m.save()
}

// deleteCurrent removes the task under the cursor and writes through.
func (m *uiModel) deleteCurrent() {
	if m.cursor >= len(m.tasks) {
		return
	}
	t := m.tasks[m.cursor]
	if err := m.tasks.Remove(t.ID); err != nil {
		m.statusErr = err
		return
	}
	m.clampCursor()
	m.save()
}

func (m *uiModel) save() {
	if err := m.store.Save(m.tasks); err != nil {
		m.statusErr = err
		return
	}
	m.statusErr = nil
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
