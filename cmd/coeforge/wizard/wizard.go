package wizard

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/coeforge/cmd/coeforge/wizard/components"
	"github.com/mrsinham/coeforge/cmd/coeforge/wizard/screens"
	"github.com/mrsinham/coeforge/internal/generator"
)

// Phase represents the current screen of the wizard.
type Phase int

const (
	PhaseSettings Phase = iota
	PhaseGenerating
	PhaseComplete
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state    *WizardState
	settings *screens.Settings
	phase    Phase

	settingsScreen   *screens.SettingsScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *WizardState) *Wizard {
	if state == nil {
		state = NewDefaultState()
	}

	w := &Wizard{
		state: state,
		phase: PhaseSettings,
		settings: &screens.Settings{
			Output:     state.Output,
			Dimensions: state.Dimensions,
			Radix:      state.Radix,
			Seed:       state.Seed,
			Overwrite:  state.Overwrite,
			Preview:    state.Preview,
			DICOM:      state.DICOM,
		},
	}
	w.settingsScreen = screens.NewSettingsScreen(w.settings)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.settingsScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch w.phase {
	case PhaseSettings:
		return w.updateSettings(msg)
	case PhaseGenerating:
		return w.updateGenerating(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseSettings:
		return w.settingsScreen.View()
	case PhaseGenerating:
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("COEFORGE WIZARD"),
			fmt.Sprintf("Generating %s ...", w.state.Output),
		)
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// updateSettings handles updates while the settings form is shown.
func (w *Wizard) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.settingsScreen.Update(msg)

	if w.settingsScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.settingsScreen.Done() {
		w.applySettings()
		return w.startGeneration()
	}

	return w, cmd
}

// applySettings copies the form result back into the wizard state.
func (w *Wizard) applySettings() {
	s := w.settings
	w.state.Output = s.Output
	w.state.Dimensions = s.Dimensions
	w.state.Radix = s.Radix
	w.state.Seed = s.Seed
	w.state.Overwrite = s.Overwrite
	w.state.Preview = s.Preview
	w.state.DICOM = s.DICOM
}

// startGeneration runs the generator and, on success, saves the config
// with the seed that was actually used.
func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	w.phase = PhaseGenerating
	state := *w.state
	configPath := w.settings.SaveConfig

	return w, func() tea.Msg {
		start := time.Now()

		opts, err := ToGeneratorOptions(&state)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}
		opts.Quiet = true

		result, err := generator.Generate(opts)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		if configPath != "" {
			state.Seed = result.Seed
			if err := SaveToYAML(&state, configPath); err != nil {
				return screens.ErrorMsg{Error: err}
			}
		}

		return screens.CompletionMsg{
			OutputPath:  result.OutputPath,
			Samples:     len(result.Samples),
			Seed:        result.Seed,
			Checksum:    result.Checksum,
			PreviewPath: result.PreviewPath,
			DICOMPath:   result.DICOMPath,
			ConfigPath:  configPath,
			Duration:    time.Since(start),
		}
	}
}

// updateGenerating waits for the generation result.
func (w *Wizard) updateGenerating(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.CompletionMsg:
		w.phase = PhaseComplete
		w.completionScreen = screens.NewCompletionScreen(msg)
		return w, nil
	case screens.ErrorMsg:
		w.phase = PhaseError
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen(msg.Error)
		return w, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.cancelled = true
			return w, tea.Quit
		}
	}
	return w, nil
}

// updateComplete handles updates in the complete phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.completionScreen.Update(msg)
	if w.completionScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}
	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := w.errorScreen.Update(msg)
	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}
	return w, cmd
}

// Run starts the interactive wizard.
// If fromConfig is provided, it loads the configuration from that YAML file.
func Run(fromConfig string) error {
	var state *WizardState

	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		state = loaded
	}

	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
