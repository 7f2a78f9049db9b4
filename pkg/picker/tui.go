package picker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mutedGray  = lipgloss.Color("#6B7280")
)

// fileItem is one candidate in the list.
type fileItem struct {
	path string
	desc string
}

func newFileItem(path string) fileItem {
	desc := filepath.Dir(path)
	if info, err := os.Stat(path); err == nil {
		desc = fmt.Sprintf("%s · %s", info.ModTime().Format("02/01/2006 15:04"), humanSize(info.Size()))
	}
	return fileItem{path: path, desc: desc}
}

func (i fileItem) FilterValue() string { return filepath.Base(i.path) }
func (i fileItem) Title() string       { return filepath.Base(i.path) }
func (i fileItem) Description() string { return i.desc }

func newDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(salmonPink).
		BorderForeground(salmonPink)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(mutedGray).
		BorderForeground(salmonPink)
	return d
}

// model is the bubbletea model behind RunTUI.
type model struct {
	list      list.Model
	chosen    string
	cancelled bool
}

func newModel(candidates []string) *model {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = newFileItem(c)
	}

	l := list.New(items, newDelegate(), 0, 0)
	l.Title = "🔐 Conversations à sauvegarder"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(salmonPink).
		Bold(true).
		Padding(0, 1)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "save"),
			),
			key.NewBinding(
				key.WithKeys("esc", "q"),
				key.WithHelp("esc/q", "cancel"),
			),
		}
	}

	return &model{list: l}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(fileItem); ok {
				m.chosen = item.path
				return m, tea.Quit
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(salmonPink).
		Padding(1, 2).
		Render(m.list.View())
}

// result converts the final model state into RunTUI's return values.
func (m *model) result() (string, error) {
	if m.cancelled || m.chosen == "" {
		return "", ErrCancelled
	}
	return m.chosen, nil
}

// RunTUI shows an interactive list of candidates and returns the chosen path.
func RunTUI(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no candidate files", ErrInvalidSelection)
	}

	final, err := tea.NewProgram(newModel(candidates), tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(*model)
	if !ok {
		return "", ErrCancelled
	}
	return m.result()
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
