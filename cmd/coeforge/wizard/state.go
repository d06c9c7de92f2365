// Package wizard provides an interactive TUI for configuring COE generation.
package wizard

import (
	"github.com/mrsinham/coeforge/internal/coe"
	"github.com/mrsinham/coeforge/internal/samples"
	"github.com/mrsinham/coeforge/internal/util"
)

// WizardState holds every setting the wizard edits.
type WizardState struct {
	Output     string
	Dimensions string // "WxH"
	Radix      int
	Seed       uint64 // 0 = auto-generate
	Overwrite  bool
	Preview    string // PNG preview path, empty = none
	DICOM      string // DICOM export path, empty = none
}

// NewDefaultState returns the settings of a plain `coeforge` run.
func NewDefaultState() *WizardState {
	return &WizardState{
		Output:     coe.DefaultFilename,
		Dimensions: util.Dimensions{Width: samples.DefaultWidth, Height: samples.DefaultHeight}.String(),
		Radix:      int(coe.DefaultRadix),
		Overwrite:  true,
	}
}
