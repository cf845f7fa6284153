package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bender-renderfarm/bender-config/internal/config"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepServer wizardStep = iota
	stepPaths
	stepLimits
	stepConfirm
)

// serverField identifies a field in the server step.
type serverField int

const (
	srvHost serverField = iota
	srvPort
	srvFieldCount
)

// pathField identifies a field in the paths step.
type pathField int

const (
	pathConfig pathField = iota
	pathPrivate
	pathUpload
	pathFieldCount
)

// limitField identifies a field in the limits step.
type limitField int

const (
	limUpload limitField = iota
	limMaxWorkers
	limFieldCount
)

// wizardModel drives the multi-step configuration wizard.
type wizardModel struct {
	step wizardStep
	base *config.Config

	// Step 1: server
	srvCursor serverField
	hostInput textinput.Model
	portInput textinput.Model

	// Step 2: paths
	pathCursor   pathField
	configInput  textinput.Model
	privateInput textinput.Model
	uploadInput  textinput.Model

	// Step 3: limits
	limCursor       limitField
	limitInput      textinput.Model
	maxWorkersInput textinput.Model

	// Validation failure from the last confirm attempt
	errMsg string

	width  int
	height int
}

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

func newInput(placeholder, value string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	ti.SetValue(value)
	return ti
}

// newWizardModel builds a wizard prefilled from base. Base values come
// from the existing configuration when one exists, or from defaults.
func newWizardModel(base *config.Config) wizardModel {
	m := wizardModel{
		step:            stepServer,
		base:            base,
		hostInput:       newInput("localhost", base.Server.Host, 256, 50),
		portInput:       newInput("5556", fmt.Sprintf("%d", base.Server.Port), 5, 10),
		configInput:     newInput(config.DefaultConfigPath, base.Paths.Config, 256, 60),
		privateInput:    newInput("./private", base.Paths.Private, 256, 60),
		uploadInput:     newInput("/data", base.Paths.Upload, 256, 60),
		limitInput:      newInput("2", fmt.Sprintf("%d", base.Limits.Upload), 5, 10),
		maxWorkersInput: newInput("4", fmt.Sprintf("%d", base.Limits.MaxWorkers), 5, 10),
	}
	m.hostInput.Focus()
	return m
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, result, cmd).
// done=true with a non-nil result means the wizard completed and the
// result is a validated configuration. done=true with nil means the
// wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepServer:
		return w.updateServer(msg)
	case stepPaths:
		return w.updatePaths(msg)
	case stepLimits:
		return w.updateLimits(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *config.Config, tea.Cmd) {
	w.errMsg = ""
	switch w.step {
	case stepServer:
		// Esc at first step cancels the wizard
		return true, nil, nil
	case stepPaths:
		w.step = stepServer
		w.blurAll()
		return false, nil, w.focusServerField()
	case stepLimits:
		w.step = stepPaths
		w.blurAll()
		return false, nil, w.focusPathField()
	case stepConfirm:
		w.step = stepLimits
		w.blurAll()
		return false, nil, w.focusLimitField()
	}
	return false, nil, nil
}

func (w *wizardModel) blurAll() {
	w.hostInput.Blur()
	w.portInput.Blur()
	w.configInput.Blur()
	w.privateInput.Blur()
	w.uploadInput.Blur()
	w.limitInput.Blur()
	w.maxWorkersInput.Blur()
}

func (w *wizardModel) focusServerField() tea.Cmd {
	w.blurAll()
	switch w.srvCursor {
	case srvHost:
		w.hostInput.Focus()
	case srvPort:
		w.portInput.Focus()
	}
	return textinput.Blink
}

func (w *wizardModel) focusPathField() tea.Cmd {
	w.blurAll()
	switch w.pathCursor {
	case pathConfig:
		w.configInput.Focus()
	case pathPrivate:
		w.privateInput.Focus()
	case pathUpload:
		w.uploadInput.Focus()
	}
	return textinput.Blink
}

func (w *wizardModel) focusLimitField() tea.Cmd {
	w.blurAll()
	switch w.limCursor {
	case limUpload:
		w.limitInput.Focus()
	case limMaxWorkers:
		w.maxWorkersInput.Focus()
	}
	return textinput.Blink
}

func (w *wizardModel) activeServerInput() *textinput.Model {
	if w.srvCursor == srvHost {
		return &w.hostInput
	}
	return &w.portInput
}

func (w *wizardModel) activePathInput() *textinput.Model {
	switch w.pathCursor {
	case pathPrivate:
		return &w.privateInput
	case pathUpload:
		return &w.uploadInput
	}
	return &w.configInput
}

func (w *wizardModel) activeLimitInput() *textinput.Model {
	if w.limCursor == limMaxWorkers {
		return &w.maxWorkersInput
	}
	return &w.limitInput
}

func (w *wizardModel) updateServer(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			w.errMsg = ""
			w.step = stepPaths
			return false, nil, w.focusPathField()
		case tea.KeyUp:
			w.srvCursor = (w.srvCursor - 1 + srvFieldCount) % srvFieldCount
			return false, nil, w.focusServerField()
		case tea.KeyDown, tea.KeyTab:
			w.srvCursor = (w.srvCursor + 1) % srvFieldCount
			return false, nil, w.focusServerField()
		}
	}

	var cmd tea.Cmd
	ti := w.activeServerInput()
	*ti, cmd = ti.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updatePaths(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			w.errMsg = ""
			w.step = stepLimits
			return false, nil, w.focusLimitField()
		case tea.KeyUp:
			w.pathCursor = (w.pathCursor - 1 + pathFieldCount) % pathFieldCount
			return false, nil, w.focusPathField()
		case tea.KeyDown, tea.KeyTab:
			w.pathCursor = (w.pathCursor + 1) % pathFieldCount
			return false, nil, w.focusPathField()
		}
	}

	var cmd tea.Cmd
	ti := w.activePathInput()
	*ti, cmd = ti.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateLimits(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			w.errMsg = ""
			w.step = stepConfirm
			w.blurAll()
			return false, nil, nil
		case tea.KeyUp:
			w.limCursor = (w.limCursor - 1 + limFieldCount) % limFieldCount
			return false, nil, w.focusLimitField()
		case tea.KeyDown, tea.KeyTab:
			w.limCursor = (w.limCursor + 1) % limFieldCount
			return false, nil, w.focusLimitField()
		}
	}

	var cmd tea.Cmd
	ti := w.activeLimitInput()
	*ti, cmd = ti.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *config.Config, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			cfg, err := w.buildConfig()
			if err != nil {
				w.errMsg = err.Error()
				return false, nil, nil
			}
			return true, cfg, nil
		case "n":
			// Restart from the first step, keeping current values
			w.errMsg = ""
			w.step = stepServer
			w.srvCursor = srvHost
			return false, nil, w.focusServerField()
		}
	}
	return false, nil, nil
}

// buildConfig assembles the final configuration from the inputs. Every
// value goes through the field registry so the domain checks match the
// non-interactive `set` command exactly.
func (w *wizardModel) buildConfig() (*config.Config, error) {
	cfg := *w.base
	values := []struct {
		key   string
		value string
	}{
		{"server.host", strings.TrimSpace(w.hostInput.Value())},
		{"server.port", strings.TrimSpace(w.portInput.Value())},
		{"paths.config", strings.TrimSpace(w.configInput.Value())},
		{"paths.private", strings.TrimSpace(w.privateInput.Value())},
		{"paths.upload", strings.TrimSpace(w.uploadInput.Value())},
		{"limits.upload", strings.TrimSpace(w.limitInput.Value())},
		{"limits.max_workers", strings.TrimSpace(w.maxWorkersInput.Value())},
	}
	for _, v := range values {
		if err := cfg.Set(v.key, v.value); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Bender Configuration"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepServer:
		b.WriteString(wizardLabelStyle.Render("Server:"))
		b.WriteString("\n")
		b.WriteString(w.renderInput(w.srvCursor == srvHost, "Host", "Hostname of the bender server", &w.hostInput))
		b.WriteString("\n")
		b.WriteString(w.renderInput(w.srvCursor == srvPort, "Port", "Port the bender server listens on", &w.portInput))
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Up/Down to move, Enter to continue, Esc to cancel."))
	case stepPaths:
		b.WriteString(wizardLabelStyle.Render("Paths:"))
		b.WriteString("\n")
		b.WriteString(w.renderInput(w.pathCursor == pathConfig, "Config", "Location of this configuration file", &w.configInput))
		b.WriteString("\n")
		b.WriteString(w.renderInput(w.pathCursor == pathPrivate, "Private", "Directory for keys and credentials", &w.privateInput))
		b.WriteString("\n")
		b.WriteString(w.renderInput(w.pathCursor == pathUpload, "Upload", "Directory render jobs are uploaded to", &w.uploadInput))
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Up/Down to move, Enter to continue, Esc to go back."))
	case stepLimits:
		b.WriteString(wizardLabelStyle.Render("Limits:"))
		b.WriteString("\n")
		b.WriteString(w.renderInput(w.limCursor == limUpload, "Upload (GiB)", "Maximum size of a single upload", &w.limitInput))
		b.WriteString("\n")
		b.WriteString(w.renderInput(w.limCursor == limMaxWorkers, "Max workers", "Render processes allowed per node", &w.maxWorkersInput))
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Up/Down to move, Enter to continue, Esc to go back."))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Host:        %s\n", wizardValueStyle.Render(strings.TrimSpace(w.hostInput.Value()))))
		b.WriteString(fmt.Sprintf("  Port:        %s\n", wizardValueStyle.Render(strings.TrimSpace(w.portInput.Value()))))
		b.WriteString(fmt.Sprintf("  Config:      %s\n", wizardValueStyle.Render(strings.TrimSpace(w.configInput.Value()))))
		b.WriteString(fmt.Sprintf("  Private:     %s\n", wizardValueStyle.Render(strings.TrimSpace(w.privateInput.Value()))))
		b.WriteString(fmt.Sprintf("  Upload:      %s\n", wizardValueStyle.Render(strings.TrimSpace(w.uploadInput.Value()))))
		b.WriteString(fmt.Sprintf("  Upload GiB:  %s\n", wizardValueStyle.Render(strings.TrimSpace(w.limitInput.Value()))))
		b.WriteString(fmt.Sprintf("  Max workers: %s\n", wizardValueStyle.Render(strings.TrimSpace(w.maxWorkersInput.Value()))))
		if w.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(wizardErrorStyle.Render("  " + w.errMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to save, n to start over, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Server"},
		{2, "Paths"},
		{3, "Limits"},
		{4, "Confirm"},
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == int(w.step)+1 {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

func (w *wizardModel) renderInput(active bool, name, desc string, ti *textinput.Model) string {
	cursor := " "
	if active {
		cursor = ">"
	}

	line := fmt.Sprintf("  %s %s: %s", cursor, name, ti.View())
	if active {
		return selectedStyle.Render(line) + "\n" + wizardDimStyle.Render("      "+desc)
	}
	return line + "\n" + wizardDimStyle.Render("      "+desc)
}

// wizardProgram adapts wizardModel to the tea.Model interface.
type wizardProgram struct {
	model     wizardModel
	result    *config.Config
	cancelled bool
}

func (p wizardProgram) Init() tea.Cmd {
	return p.model.Init()
}

func (p wizardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		p.model.width = sizeMsg.Width
		p.model.height = sizeMsg.Height
		return p, nil
	}

	done, cfg, cmd := p.model.Update(msg)
	if done {
		p.result = cfg
		p.cancelled = cfg == nil
		return p, tea.Quit
	}
	return p, cmd
}

func (p wizardProgram) View() string {
	if p.result != nil || p.cancelled {
		return ""
	}
	return p.model.View()
}

// RunWizard runs the interactive configuration wizard seeded with base.
// It returns the resulting configuration, or nil when the user
// cancelled.
func RunWizard(base *config.Config) (*config.Config, error) {
	p := tea.NewProgram(wizardProgram{model: newWizardModel(base)}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(wizardProgram).result, nil
}
