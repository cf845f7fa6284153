// Package tui provides terminal user interface components for bender-config
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bender-renderfarm/bender-config/internal/config"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionApply
	ActionShow
	ActionDelete
	ActionQuit
)

// PickerResult holds the result of the profile picker
type PickerResult struct {
	Action  Action
	Profile string
}

// ProfileInfo describes one selectable profile
type ProfileInfo struct {
	Name   string
	Server string
}

// profileItem implements list.Item for profile display
type profileItem struct {
	info ProfileInfo
}

func (i profileItem) Title() string { return i.info.Name }

func (i profileItem) Description() string {
	if i.info.Server == "" {
		return "unreadable profile"
	}
	return "server " + i.info.Server
}

func (i profileItem) FilterValue() string { return i.info.Name }

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the profile picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new profile picker
func NewPicker(profiles []ProfileInfo) Model {
	items := make([]list.Item, len(profiles))
	for i, p := range profiles {
		items[i] = profileItem{info: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "Bender - Select Profile"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(profileItem); ok {
				m.result = PickerResult{
					Action:  ActionApply,
					Profile: item.info.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "s":
			if item, ok := m.list.SelectedItem().(profileItem); ok {
				m.result = PickerResult{
					Action:  ActionShow,
					Profile: item.info.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "d":
			if item, ok := m.list.SelectedItem().(profileItem); ok {
				m.result = PickerResult{
					Action:  ActionDelete,
					Profile: item.info.Name,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Apply  [s] Show  [d] Delete  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive profile picker
func RunPicker(profiles []ProfileInfo) (PickerResult, error) {
	if len(profiles) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(profiles)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// LoadProfileInfos collects picker display data for all profiles in dir.
func LoadProfileInfos(dir string) ([]ProfileInfo, error) {
	names, err := config.ListProfiles(dir)
	if err != nil {
		return nil, err
	}

	infos := make([]ProfileInfo, 0, len(names))
	for _, name := range names {
		info := ProfileInfo{Name: name}
		if cfg, err := config.LoadProfile(dir, name); err == nil {
			info.Server = cfg.Server.Addr()
		}
		infos = append(infos, info)
	}
	return infos, nil
}
