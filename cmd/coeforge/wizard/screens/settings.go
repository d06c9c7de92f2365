package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/coeforge/cmd/coeforge/wizard/components"
	"github.com/mrsinham/coeforge/internal/coe"
	"github.com/mrsinham/coeforge/internal/util"
)

// Settings is the data edited by the settings screen.
type Settings struct {
	Output     string
	Dimensions string
	Radix      int
	Seed       uint64
	Overwrite  bool
	Preview    string
	DICOM      string
	SaveConfig string
}

// SettingsScreen is the wizard form for all generation settings
type SettingsScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	settings  *Settings
	done      bool
	cancelled bool

	// huh binds to strings
	seedStr string
}

// NewSettingsScreen creates a new settings screen bound to settings
func NewSettingsScreen(settings *Settings) *SettingsScreen {
	s := &SettingsScreen{
		helpPanel: components.NewHelpPanel(),
		settings:  settings,
		seedStr:   strconv.FormatUint(settings.Seed, 10),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("output").
				Title("Output File").
				Value(&settings.Output).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("output file is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("dimensions").
				Title("Dimensions").
				Placeholder("e.g., 128x128").
				Value(&settings.Dimensions).
				Validate(validateDimensions),

			huh.NewSelect[int]().
				Key("radix").
				Title("Radix").
				Options(
					huh.NewOption("16 - Hexadecimal", 16),
					huh.NewOption("10 - Decimal", 10),
					huh.NewOption("2 - Binary", 2),
				).
				Value(&settings.Radix),

			huh.NewInput().
				Key("seed").
				Title("Seed").
				Value(&s.seedStr).
				Validate(validateSeed),

			huh.NewConfirm().
				Key("overwrite").
				Title("Overwrite existing file?").
				Value(&settings.Overwrite),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("preview").
				Title("PNG Preview (optional)").
				Placeholder("e.g., image_data.png").
				Value(&settings.Preview),

			huh.NewInput().
				Key("dicom").
				Title("DICOM Export (optional)").
				Placeholder("e.g., image_data.dcm").
				Value(&settings.DICOM),

			huh.NewInput().
				Key("save_config").
				Title("Save Config (optional)").
				Placeholder("e.g., coeforge.yaml").
				Value(&settings.SaveConfig),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateDimensions(v string) error {
	_, err := util.ParseDimensions(v)
	return err
}

func validateSeed(v string) error {
	if _, err := strconv.ParseUint(v, 10, 64); err != nil {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

// Init implements tea.Model
func (s *SettingsScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SettingsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.helpPanel.SetWidth(msg.Width / 2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}
	s.helpPanel.SetRadix(coe.Radix(s.settings.Radix))

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncSettingsFromForm()
	}

	return s, cmd
}

// syncSettingsFromForm parses string-bound values back into settings
func (s *SettingsScreen) syncSettingsFromForm() {
	if n, err := strconv.ParseUint(s.seedStr, 10, 64); err == nil {
		s.settings.Seed = n
	}
	s.settings.Output = strings.TrimSpace(s.settings.Output)
	s.settings.Preview = strings.TrimSpace(s.settings.Preview)
	s.settings.DICOM = strings.TrimSpace(s.settings.DICOM)
	s.settings.SaveConfig = strings.TrimSpace(s.settings.SaveConfig)
}

// View implements tea.Model
func (s *SettingsScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("COEFORGE WIZARD - Settings")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.HintStyle.Render("Tab: Next field | Enter: Submit | Esc: Cancel"),
	)
}

// Done returns true if the form was completed
func (s *SettingsScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SettingsScreen) Cancelled() bool {
	return s.cancelled
}
