package dialog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"skillhub/internal/logging"
	"skillhub/internal/render"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const parentEntry = ".."

// dirItem is one row of the directory list.
type dirItem struct {
	name string
	path string
}

func (i dirItem) Title() string       { return i.name + "/" }
func (i dirItem) Description() string { return i.path }
func (i dirItem) FilterValue() string { return i.name }

type dirLoadedMsg struct {
	dir   string
	items []list.Item
	err   error
}

func loadDir(dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return dirLoadedMsg{dir: dir, err: err}
		}

		items := make([]list.Item, 0, len(entries)+1)
		if parent := filepath.Dir(dir); parent != dir {
			items = append(items, dirItem{name: parentEntry, path: parent})
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				items = append(items, dirItem{name: e.Name(), path: path})
			}
		}
		return dirLoadedMsg{dir: dir, items: items}
	}
}

// dirModel browses directories: enter opens the highlighted directory, s
// selects the directory being shown and q, esc or ctrl+c cancels.
type dirModel struct {
	dir       string
	list      list.Model
	selected  string
	cancelled bool
	err       error
	logger    *logging.AppLogger
}

func newDirModel(start string, logger *logging.AppLogger) *dirModel {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(nil, delegate, 80, 20)
	l.Title = start
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return &dirModel{dir: start, list: l, logger: logger}
}

func (m *dirModel) Init() tea.Cmd {
	return loadDir(m.dir)
}

func (m *dirModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logger.LogMessage(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case dirLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.dir = msg.dir
		m.list.Title = msg.dir
		m.list.ResetSelected()
		return m, m.list.SetItems(msg.items)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "s":
			m.selected = m.dir
			m.logger.LogUserAction("directory_selected", m.dir)
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(dirItem); ok {
				return m, loadDir(item.path)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *dirModel) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	if m.err != nil {
		b.WriteString("\n" + render.ErrorStyle.Render(fmt.Sprintf("Cannot open directory: %v", m.err)))
	}
	b.WriteString(render.HelpStyle.Render("enter: open • s: select this folder • q: cancel"))
	return b.String()
}

// TerminalPicker browses directories inside the terminal, for sessions
// without a desktop dialog.
type TerminalPicker struct {
	Start  string
	Input  io.Reader
	Output io.Writer
	Logger *logging.AppLogger
}

// PickDirectory runs the browser until the user selects or cancels.
func (p *TerminalPicker) PickDirectory(ctx context.Context) (string, bool) {
	start := p.Start
	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		}
	}
	logger := p.Logger
	if logger == nil {
		logger = logging.GetDefault()
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.Input != nil {
		opts = append(opts, tea.WithInput(p.Input))
	}
	if p.Output != nil {
		opts = append(opts, tea.WithOutput(p.Output))
	}

	final, err := tea.NewProgram(newDirModel(start, logger), opts...).Run()
	if err != nil {
		logger.Warn("Terminal picker stopped", "error", err)
		return "", false
	}

	m, ok := final.(*dirModel)
	if !ok || m.selected == "" {
		return "", false
	}
	return m.selected, true
}
