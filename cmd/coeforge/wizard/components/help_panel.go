package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/coeforge/cmd/coeforge/wizard/help"
	"github.com/mrsinham/coeforge/internal/coe"
)

// exampleSample is rendered in the panel to show how a token looks in the
// selected radix.
const exampleSample byte = 0xA5

var (
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	panelHeading = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	panelBody    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	panelMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	panelToken   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// HelpPanel shows the help text of the focused form field next to the form.
type HelpPanel struct {
	key   string
	radix coe.Radix
	width int
}

// NewHelpPanel creates a help panel that renders tokens in the default radix.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{radix: coe.DefaultRadix, width: 60}
}

// SetField selects the form field by its huh key.
func (h *HelpPanel) SetField(key string) {
	h.key = key
}

// SetRadix updates the radix used for the token example.
func (h *HelpPanel) SetRadix(r coe.Radix) {
	if r.Valid() {
		h.radix = r
	}
}

// SetWidth sets the outer width. Widths too narrow for the border are ignored.
func (h *HelpPanel) SetWidth(width int) {
	if width > 20 {
		h.width = width
	}
}

// View renders the panel.
func (h *HelpPanel) View() string {
	box := panelBorder.Width(h.width - 4)

	text, ok := help.Texts[h.key]
	if !ok {
		return box.Render(panelMuted.Render("Move to a field to see its help"))
	}

	parts := []string{
		panelHeading.Render(text.Title),
		panelBody.Render(text.Description),
		panelMuted.Render(text.Details),
	}
	if h.key == "radix" {
		parts = append(parts, h.tokenExample())
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, joinBlank(parts)...))
}

// tokenExample shows one sample as it will appear in the COE vector.
func (h *HelpPanel) tokenExample() string {
	return panelMuted.Render(fmt.Sprintf("sample %d in radix %d: ", exampleSample, h.radix)) +
		panelToken.Render(h.radix.Format(exampleSample)+",")
}

func joinBlank(parts []string) []string {
	out := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, p)
	}
	return out
}
