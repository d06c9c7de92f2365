package wizard

import (
	"fmt"

	"github.com/mrsinham/coeforge/internal/coe"
	"github.com/mrsinham/coeforge/internal/generator"
	"github.com/mrsinham/coeforge/internal/util"
)

// ToGeneratorOptions converts WizardState to generator.Options.
func ToGeneratorOptions(s *WizardState) (generator.Options, error) {
	opts := generator.DefaultOptions()

	if s.Output != "" {
		opts.OutputPath = s.Output
	}

	if s.Dimensions != "" {
		dims, err := util.ParseDimensions(s.Dimensions)
		if err != nil {
			return generator.Options{}, err
		}
		opts.Dimensions = dims
	}

	if s.Radix != 0 {
		radix := coe.Radix(s.Radix)
		if !radix.Valid() {
			return generator.Options{}, fmt.Errorf("invalid radix %d (valid: 2, 10, 16)", s.Radix)
		}
		opts.Radix = radix
	}

	opts.Seed = s.Seed
	opts.Overwrite = s.Overwrite
	opts.PreviewPath = s.Preview
	opts.DICOMPath = s.DICOM
	return opts, nil
}

// FromGeneratorOptions creates a WizardState from generator.Options.
// Used for --save-config to export CLI options as YAML.
func FromGeneratorOptions(opts generator.Options) *WizardState {
	return &WizardState{
		Output:     opts.OutputPath,
		Dimensions: opts.Dimensions.String(),
		Radix:      int(opts.Radix),
		Seed:       opts.Seed,
		Overwrite:  opts.Overwrite,
		Preview:    opts.PreviewPath,
		DICOM:      opts.DICOMPath,
	}
}
